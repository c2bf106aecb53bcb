package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "package",
		Short: "Assemble the package directory once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.packageOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return c.app.Package(cmd.Context(), opts)
		},
	}
	flags.bind(cmd)
	return cmd
}
