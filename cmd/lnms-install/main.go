// Package main is the entry point for the LibreNMS client installer.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/lnms-install/cmd/lnms-install/commands"
	"go.trai.ch/lnms-install/internal/app"
	_ "go.trai.ch/lnms-install/internal/wiring"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Interface - CLI
	application := &lazyApp{provide: provider}
	cli := commands.New(application)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 2. Execution
	if err := cli.Execute(ctx); err != nil {
		if commands.IsUsageError(err) {
			_, _ = fmt.Fprintf(stderr, "Error: %s\nRun 'lnms-install --help' for usage.\n", err)
			return exitUsage
		}
		if application.components == nil {
			// Logger is not available yet if initialization failed
			_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
			return exitError
		}
		application.components.Logger.Error(err)
		return exitError
	}
	return exitOK
}

// lazyApp builds the application components on the first Run, after flags are parsed.
type lazyApp struct {
	provide    ComponentProvider
	components *app.Components
}

func (l *lazyApp) Run(ctx context.Context, opts app.Options) error {
	components, err := l.provide(ctx)
	if err != nil {
		return err
	}
	l.components = components
	return components.App.Run(ctx, opts)
}
