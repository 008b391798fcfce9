package manifest

import "github.com/hashicorp/hcl/v2"

// manifestFile is the top-level HCL structure of strata.hcl.
type manifestFile struct {
	Platforms    []string            `hcl:"platforms"`
	Packages     []*packageBlock     `hcl:"package,block"`
	Environments []*environmentBlock `hcl:"environment,block"`
}

// packageBlock derives a named package from an upstream base.
type packageBlock struct {
	Name     string         `hcl:"name,label"`
	Base     string         `hcl:"base"`
	Override *overrideBlock `hcl:"override,block"`
}

// overrideBlock captures arbitrary field overrides. The body is decoded
// generically so field validation happens in the override engine, which owns
// the package schema, rather than in the HCL layer.
type overrideBlock struct {
	Remain hcl.Body `hcl:",remain"`
}

// environmentBlock composes a named environment.
type environmentBlock struct {
	Name       string   `hcl:"name,label"`
	InputsFrom []string `hcl:"inputs_from,optional"`
	Extras     []string `hcl:"extras,optional"`
}
