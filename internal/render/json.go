package render

import (
	"encoding/json"
	"io"

	"go.trai.ch/strata/internal/core/domain"
)

// packageDoc is the JSON shape of a package artifact.
type packageDoc struct {
	Name          string            `json:"name"`
	Version       string            `json:"version"`
	Source        string            `json:"source"`
	Identity      string            `json:"identity"`
	Description   string            `json:"description,omitempty"`
	BuildInputs   []string          `json:"buildInputs,omitempty"`
	RuntimeInputs []string          `json:"runtimeInputs,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// environmentDoc is the JSON shape of an environment artifact.
type environmentDoc struct {
	ID       string       `json:"id"`
	Packages []packageDoc `json:"packages"`
}

// platformDoc groups artifacts by category for one platform.
type platformDoc struct {
	Packages     map[string]packageDoc     `json:"packages"`
	Environments map[string]environmentDoc `json:"environments"`
}

// treeDoc is the JSON shape of a full evaluation.
type treeDoc struct {
	Platforms map[string]platformDoc `json:"platforms"`
}

// EncodeJSON writes the tree to w as indented JSON. Map keys are emitted in
// sorted order, so the encoding is deterministic.
func EncodeJSON(w io.Writer, tree *domain.OutputTree) error {
	return encode(w, treeDocFor(tree))
}

// EncodePackageJSON writes a single package artifact to w as indented JSON.
func EncodePackageJSON(w io.Writer, pkg domain.PackageDefinition) error {
	return encode(w, packageDocFor(pkg))
}

// EncodeEnvironmentJSON writes a single environment artifact to w as
// indented JSON.
func EncodeEnvironmentJSON(w io.Writer, env domain.EnvironmentDescriptor) error {
	return encode(w, environmentDocFor(env))
}

func encode(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func treeDocFor(tree *domain.OutputTree) treeDoc {
	doc := treeDoc{Platforms: make(map[string]platformDoc, len(tree.Packages))}
	for _, platform := range tree.Platforms() {
		pd := platformDoc{
			Packages:     make(map[string]packageDoc, len(tree.Packages[platform])),
			Environments: make(map[string]environmentDoc, len(tree.Environments[platform])),
		}
		for name, pkg := range tree.Packages[platform] {
			pd.Packages[name] = packageDocFor(pkg)
		}
		for name, env := range tree.Environments[platform] {
			pd.Environments[name] = environmentDocFor(env)
		}
		doc.Platforms[platform.String()] = pd
	}
	return doc
}

func packageDocFor(pkg domain.PackageDefinition) packageDoc {
	return packageDoc{
		Name:          pkg.Name,
		Version:       pkg.Version,
		Source:        pkg.Source,
		Identity:      pkg.Identity().String(),
		Description:   pkg.Description,
		BuildInputs:   pkg.BuildInputs,
		RuntimeInputs: pkg.RuntimeInputs,
		Metadata:      pkg.Metadata,
	}
}

func environmentDocFor(env domain.EnvironmentDescriptor) environmentDoc {
	packages := make([]packageDoc, 0, len(env.Packages))
	for _, pkg := range env.Packages {
		packages = append(packages, packageDocFor(pkg))
	}
	return environmentDoc{ID: env.ID(), Packages: packages}
}
