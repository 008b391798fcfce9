// Package resolver evaluates the platform matrix: it maps a generator over
// every target platform and assembles the per-platform results into the
// final output tree.
package resolver

import (
	"context"
	"errors"
	"runtime"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/engine/assemble"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Resolver maps a generator over a set of platforms.
type Resolver struct {
	parallelism int
}

// New creates a Resolver that evaluates up to parallelism platforms
// concurrently. A non-positive value defaults to the number of CPUs.
func New(parallelism int) *Resolver {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	return &Resolver{parallelism: parallelism}
}

// Resolve calls the generator exactly once per distinct platform and merges
// the results into an output tree.
//
// Platform evaluations are mutually independent pure computations and run in
// parallel; no ordering is guaranteed between platforms. Each evaluation
// writes into its own slot, so results never cross platform boundaries.
// Failures do not abort the remaining platforms: every per-platform error is
// collected and the joined set is returned, each annotated with the
// offending platform.
func (r *Resolver) Resolve(
	ctx context.Context,
	platforms []domain.Platform,
	generator ports.Generator,
	registry ports.PackageRegistry,
) (*domain.OutputTree, error) {
	if err := domain.ValidatePlatforms(platforms); err != nil {
		return nil, err
	}

	type slot struct {
		outputs domain.PerPlatformOutputs
		err     error
	}
	slots := make([]slot, len(platforms))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for i, platform := range platforms {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				slots[i].err = err
				return nil
			}

			if !registry.HasPlatform(platform) {
				slots[i].err = zerr.With(domain.ErrUnknownPlatform, "platform", platform.String())
				return nil
			}

			lookup := bindLookup(registry, platform)
			outputs, err := generator.Generate(platform, lookup)
			if err != nil {
				wrapped := zerr.Wrap(err, domain.ErrGeneratorFailed.Error())
				slots[i].err = zerr.With(wrapped, "platform", platform.String())
				return nil
			}

			slots[i].outputs = outputs
			return nil
		})
	}

	// Workers never return errors, so Wait only propagates context failure.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var errs error
	results := make(map[domain.Platform]domain.PerPlatformOutputs, len(platforms))
	for i, platform := range platforms {
		if err := slots[i].err; err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		results[platform] = slots[i].outputs
	}
	if errs != nil {
		return nil, errs
	}

	return assemble.Assemble(results)
}

// bindLookup narrows the registry to a single platform so generators cannot
// reach across platform boundaries.
func bindLookup(registry ports.PackageRegistry, platform domain.Platform) ports.LookupFunc {
	return func(name string) (domain.PackageDefinition, error) {
		return registry.Lookup(name, platform)
	}
}
