// Package commands implements the CLI commands for pacaudit.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pacaudit/internal/app"
	"go.trai.ch/pacaudit/internal/build"
	"go.trai.ch/pacaudit/internal/core/domain"
)

// CLI represents the command line interface for pacaudit.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	args    []string
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (*domain.AuditResult, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "pacaudit",
		Short: "Find foreign packages with unresolved shared libraries",
		Long: "pacaudit checks every foreign package for executables and shared objects\n" +
			"whose libraries cannot be resolved, reports which packages need a rebuild,\n" +
			"lists packages stuck in stale interpreter directories and broken enabled\n" +
			"service links.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: c.runAudit,
	}

	// Registered ahead of the default version flag so -v stays with verbose.
	rootCmd.Flags().StringP("config", "c", "", "Path to the configuration file")
	rootCmd.Flags().BoolP("verbose", "v", false, "Dump the library and package maps")
	rootCmd.Flags().String("json", "", "Write the audit result as JSON to this path")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.AddCommand(c.newVersionCmd())

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runAudit(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonPath, _ := cmd.Flags().GetString("json")

	_, err := c.app.Run(cmd.Context(), app.RunOptions{
		ConfigPath: configPath,
		Verbose:    verbose || domain.VerboseRequested(c.args),
		JSONPath:   jsonPath,
	})
	return err
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.args = args
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
