package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ngpack/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove stored package records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.packageOptions(cmd, &flags)
			if err != nil {
				return err
			}
			all, _ := cmd.Flags().GetBool("all")
			return c.app.Clean(cmd.Context(), app.CleanOptions{PackageOptions: opts, All: all})
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolP("all", "a", false, "Also remove the output root")
	return cmd
}
