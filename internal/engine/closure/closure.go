// Package closure computes transitive dependency closures and composes them
// into environment descriptors.
package closure

import (
	"strings"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Composer walks package dependency edges through a platform-bound registry
// view. A Composer is cheap; construct one per platform evaluation.
type Composer struct {
	lookup ports.LookupFunc
}

// New creates a Composer over the given lookup.
func New(lookup ports.LookupFunc) *Composer {
	return &Composer{lookup: lookup}
}

// Compose builds an environment descriptor from the transitive inputs of the
// seed definitions plus an explicit extras list.
//
// The traversal is breadth-first over build-input then runtime-input edges,
// seed order preserved, deduplicated by identity in first-visit order. The
// seeds themselves are not part of the result; their inputs are. Extras are
// appended after the traversal, again deduplicated, so an extra already
// pulled in transitively is a no-op. Identical inputs produce identical
// output order, which is what makes environment snapshots reproducible.
func (c *Composer) Compose(seeds, extras []domain.PackageDefinition) (domain.EnvironmentDescriptor, error) {
	for _, seed := range seeds {
		if err := c.detectCycles(seed); err != nil {
			return domain.EnvironmentDescriptor{}, err
		}
	}

	var env domain.EnvironmentDescriptor
	seen := make(map[domain.Identity]bool)
	visited := make(map[string]bool)

	queue := make([]string, 0, len(seeds)*2)
	for _, seed := range seeds {
		queue = append(queue, seed.Inputs()...)
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		if visited[name] {
			continue
		}
		visited[name] = true

		pkg, err := c.lookup(name)
		if err != nil {
			return domain.EnvironmentDescriptor{}, err
		}

		if id := pkg.Identity(); !seen[id] {
			seen[id] = true
			env.Packages = append(env.Packages, pkg)
		}

		queue = append(queue, pkg.Inputs()...)
	}

	for _, extra := range extras {
		if id := extra.Identity(); !seen[id] {
			seen[id] = true
			env.Packages = append(env.Packages, extra)
		}
	}

	return env, nil
}

// detectCycles runs a depth-first walk from the seed's inputs, tracking the
// active path separately from completed nodes so a revisit within the path
// is reported as a cycle rather than looping or overflowing the stack.
func (c *Composer) detectCycles(seed domain.PackageDefinition) error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)

	state := make(map[string]int)
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		state[name] = visiting
		path = append(path, name)

		pkg, err := c.lookup(name)
		if err != nil {
			return err
		}

		for _, dep := range pkg.Inputs() {
			switch state[dep] {
			case visiting:
				return cycleError(path, dep)
			case unvisited:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		state[name] = done
		path = path[:len(path)-1]
		return nil
	}

	for _, name := range seed.Inputs() {
		if state[name] == unvisited {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// cycleError constructs an error carrying the cycle path as metadata.
func cycleError(path []string, dep string) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}

	var builder strings.Builder
	for _, node := range path[start:] {
		builder.WriteString(node)
		builder.WriteString(" -> ")
	}
	builder.WriteString(dep)

	return zerr.With(domain.ErrCyclicDependency, "cycle", builder.String())
}
