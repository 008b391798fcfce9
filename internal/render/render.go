// Package render serializes evaluated output trees for human and machine
// consumption.
package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/ui/style"
)

// Renderer writes an output tree as an indented text listing. Platforms and
// artifact names are sorted so the listing is deterministic regardless of the
// order platforms finished evaluating.
type Renderer struct {
	color bool
}

// NewRenderer creates a text renderer. Styling is applied only when color is
// enabled.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

// Render writes the full tree to w.
func (r *Renderer) Render(w io.Writer, tree *domain.OutputTree) error {
	platforms := tree.Platforms()
	slices.Sort(platforms)

	for i, platform := range platforms {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := r.renderPlatform(w, tree, platform); err != nil {
			return err
		}
	}
	return nil
}

// RenderPackage writes a single package artifact to w. The name is the
// artifact's output-tree name, which can differ from the definition's own
// package name when the manifest derives under a new name.
func (r *Renderer) RenderPackage(w io.Writer, name string, pkg domain.PackageDefinition) error {
	if _, err := fmt.Fprintf(w, "%s\n", r.header(name)); err != nil {
		return err
	}
	lines := []struct{ label, value string }{
		{"identity", pkg.Identity().String()},
		{"version", pkg.Version},
		{"source", pkg.Source},
		{"description", pkg.Description},
		{"build inputs", strings.Join(pkg.BuildInputs, ", ")},
		{"runtime inputs", strings.Join(pkg.RuntimeInputs, ", ")},
	}
	for _, line := range lines {
		if line.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %-16s%s\n", line.label, line.value); err != nil {
			return err
		}
	}
	for _, key := range sortedKeys(pkg.Metadata) {
		if _, err := fmt.Fprintf(w, "  %-16s%s\n", "meta."+key, pkg.Metadata[key]); err != nil {
			return err
		}
	}
	return nil
}

// RenderEnvironment writes a single environment artifact to w.
func (r *Renderer) RenderEnvironment(w io.Writer, name string, env domain.EnvironmentDescriptor) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", r.header(name), r.muted("id "+shortID(env.ID()))); err != nil {
		return err
	}
	for _, pkg := range env.Packages {
		if _, err := fmt.Fprintf(w, "  %s %s\n", style.Dot, pkg.Identity().String()); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderPlatform(w io.Writer, tree *domain.OutputTree, platform domain.Platform) error {
	if _, err := fmt.Fprintf(w, "%s\n", r.header(platform.String())); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "  %s\n", string(domain.CategoryPackages)); err != nil {
		return err
	}
	packages := tree.Packages[platform]
	for _, name := range sortedKeys(packages) {
		pkg := packages[name]
		if _, err := fmt.Fprintf(w, "    %-20s%s\n", name, r.muted(pkg.Identity().String())); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "  %s\n", string(domain.CategoryEnvironments)); err != nil {
		return err
	}
	environments := tree.Environments[platform]
	for _, name := range sortedKeys(environments) {
		env := environments[name]
		detail := fmt.Sprintf("%d packages, id %s", len(env.Packages), shortID(env.ID()))
		if _, err := fmt.Fprintf(w, "    %-20s%s\n", name, r.muted(detail)); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) header(s string) string {
	if !r.color {
		return s
	}
	return style.Header.Render(s)
}

func (r *Renderer) muted(s string) string {
	if !r.color {
		return s
	}
	return style.Muted.Render(s)
}

// shortID truncates an environment ID for display. The full ID is available
// in the JSON rendering.
func shortID(id string) string {
	const width = 12
	if len(id) <= width {
		return id
	}
	return id[:width]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
