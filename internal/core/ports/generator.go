package ports

import "go.trai.ch/strata/internal/core/domain"

// Generator produces the per-platform outputs for one platform. The matrix
// resolver calls it exactly once per platform, possibly concurrently, so
// implementations must be pure: no captured mutable state, no reliance on
// evaluation order, all external data reached through the supplied lookup.
//
//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type Generator interface {
	// Generate evaluates one platform against the bound registry view.
	Generate(platform domain.Platform, lookup LookupFunc) (domain.PerPlatformOutputs, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(platform domain.Platform, lookup LookupFunc) (domain.PerPlatformOutputs, error)

// Generate calls the wrapped function.
func (f GeneratorFunc) Generate(platform domain.Platform, lookup LookupFunc) (domain.PerPlatformOutputs, error) {
	return f(platform, lookup)
}
