// Package commands implements the CLI commands for ngpack.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.trai.ch/ngpack/internal/app"
	"go.trai.ch/ngpack/internal/build"
)

// CLI represents the command line interface for ngpack.
type CLI struct {
	app     Application
	fs      afero.Fs
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Package(ctx context.Context, opts app.PackageOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	EnableJSONLogs()
}

// New creates a new CLI instance. Params files are read from fsys.
func New(a Application, fsys afero.Fs) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ngpack",
		Short:         "Assemble an Angular package directory from build outputs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json-log", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().String("progress", "auto", "Progress output: auto, tui, linear, or quiet")
	rootCmd.PersistentFlags().StringP("manifest", "m", "", "Path to an ngpack.yaml manifest")

	c := &CLI{
		app:     a,
		fs:      fsys,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonLog, _ := cmd.Flags().GetBool("json-log"); jsonLog {
			c.app.EnableJSONLogs()
		}
	}

	rootCmd.AddCommand(c.newPackageCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
