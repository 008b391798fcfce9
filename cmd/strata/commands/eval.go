package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/strata/internal/app"
)

func (c *CLI) newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the manifest across its platform matrix",
		Long: `Evaluate discovers the nearest strata.hcl, derives every declared package
from its registry base, composes every environment, and prints the resulting
output tree for each target platform.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			platforms, _ := cmd.Flags().GetStringSlice("platform")
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			jsonOut, _ := cmd.Flags().GetBool("json")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Eval(cmd.Context(), cmd.OutOrStdout(), app.EvalOptions{
				Platforms:   platforms,
				Parallelism: parallelism,
				JSON:        jsonOut,
				Color:       colorEnabled() && !jsonOut,
				Watch:       watch,
			})
		},
	}
	cmd.Flags().StringSliceP("platform", "p", nil, "Restrict evaluation to the given platforms (default: all manifest platforms)")
	cmd.Flags().Int("parallelism", 0, "Maximum concurrent platform evaluations (default: number of CPUs)")
	cmd.Flags().Bool("json", false, "Emit the output tree as JSON")
	cmd.Flags().BoolP("watch", "w", false, "Re-evaluate whenever the manifest or registry changes")
	return cmd
}
