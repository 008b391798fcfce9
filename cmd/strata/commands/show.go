package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/strata/internal/app"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <category> <name>",
		Short: "Show a single evaluated artifact",
		Long: `Show evaluates the manifest and prints one artifact from the output tree,
addressed as <category> <name>. Category is "packages" or "environments".
The platform defaults to the host platform.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, _ := cmd.Flags().GetString("platform")
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			jsonOut, _ := cmd.Flags().GetBool("json")

			return c.app.Show(cmd.Context(), cmd.OutOrStdout(), app.ShowOptions{
				Category:    args[0],
				Name:        args[1],
				Platform:    platform,
				Parallelism: parallelism,
				JSON:        jsonOut,
				Color:       colorEnabled() && !jsonOut,
			})
		},
	}
	cmd.Flags().StringP("platform", "p", "", "Platform to show the artifact for (default: host platform)")
	cmd.Flags().Int("parallelism", 0, "Maximum concurrent platform evaluations (default: number of CPUs)")
	cmd.Flags().Bool("json", false, "Emit the artifact as JSON")
	return cmd
}
