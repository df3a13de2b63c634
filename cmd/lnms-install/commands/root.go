// Package commands implements the CLI commands for the LibreNMS client installer.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lnms-install/internal/app"
	"go.trai.ch/lnms-install/internal/build"
	"go.trai.ch/lnms-install/internal/core/domain"
)

// CLI represents the command line interface for lnms-install.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.Options
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "lnms-install",
		Short:         "LibreNMS client install script",
		Long:          "Plan the installation of the LibreNMS monitoring agent on this host.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          noPositionalArgs,
		RunE:          c.run,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("%s {{.Version}}\n", build.Name))
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	c.bindFlags(rootCmd)

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show this help message and exit"

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringVar(&c.opts.Name, "name", "", "Name of the person to greet")
	flags.StringVar(&c.opts.OperatingSystem, "operating-system", "", "Host operating system")
	flags.BoolVar(&c.opts.Systemd, "systemd", false, "Prefer systemd")
	flags.BoolVar(&c.opts.Collectd, "collectd", false, "Install and configure collectd")
	flags.BoolVar(&c.opts.CheckMK, "check_mk", false, "Install check_mk")
	flags.StringSliceVar(&c.opts.Modules, "modules", nil, "List of modules to install for monitoring")
	flags.Var(newPackageManagerValue(&c.opts.PackageManager), "package-manager", "Package manager to use instead of the operating system's")
	flags.StringVar(&c.opts.Server, "server", "", "LibreNMS server or polling node to attach to")
	flags.StringVar(&c.opts.SnmpdExtendDir, "snmpd-extend-dir", domain.DefaultSnmpdExtendDir, "Directory for snmpd extension scripts")
	flags.StringVarP(&c.opts.LogFile, "log-file", "l", "", "File to append log output to")
	flags.BoolVarP(&c.opts.Debug, "debug", "d", false, "Enable debug messages and dump program state")
	flags.StringVar(&c.opts.Descriptor, "descriptor", domain.DefaultDescriptorURL, "Operating system descriptor: a URL, a file or builtin:<name>")
}

func (c *CLI) run(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().NFlag() == 0 {
		return cmd.Help()
	}
	return c.app.Run(cmd.Context(), c.opts)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
