package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ngpack/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Repackage whenever the inputs change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.packageOptions(cmd, &flags)
			if err != nil {
				return err
			}
			debounce, _ := cmd.Flags().GetDuration("debounce")
			return c.app.Watch(cmd.Context(), app.WatchOptions{PackageOptions: opts, Debounce: debounce})
		},
	}
	flags.bind(cmd)
	cmd.Flags().Duration("debounce", 0, "Quiet period before repackaging (default NGPACK_DEBOUNCE)")
	return cmd
}
