// Package assemble merges per-platform evaluation results into the final
// output tree.
package assemble

import (
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/zerr"
)

// Assemble reshapes per-platform results into the nested
// category -> platform -> name namespace. It is a pure merge: the only
// validation is a structural shape check that every required category is
// present. Every platform in the input appears under both categories, even
// when it holds no entries.
func Assemble(results map[domain.Platform]domain.PerPlatformOutputs) (*domain.OutputTree, error) {
	tree := domain.NewOutputTree()

	for platform, outputs := range results {
		if outputs.Packages == nil {
			return nil, malformed(platform, domain.CategoryPackages)
		}
		if outputs.Environments == nil {
			return nil, malformed(platform, domain.CategoryEnvironments)
		}

		tree.Packages[platform] = outputs.Packages
		tree.Environments[platform] = outputs.Environments
	}

	return tree, nil
}

func malformed(platform domain.Platform, missing domain.Category) error {
	err := zerr.With(domain.ErrMalformedOutput, "platform", platform.String())
	return zerr.With(err, "missing_category", string(missing))
}
