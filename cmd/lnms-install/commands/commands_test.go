package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lnms-install/cmd/lnms-install/commands"
	"go.trai.ch/lnms-install/internal/app"
	"go.trai.ch/lnms-install/internal/build"
	"go.trai.ch/lnms-install/internal/core/domain"
)

type mockApp struct {
	runFunc func(ctx context.Context, opts app.Options) error
}

func (m *mockApp) Run(ctx context.Context, opts app.Options) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func newCLI(a commands.Application, args ...string) (*commands.CLI, *bytes.Buffer) {
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	return cli, buf
}

func TestCommands_NoArgsShowsHelp(t *testing.T) {
	cli, buf := newCLI(&mockApp{
		runFunc: func(context.Context, app.Options) error {
			panic("should not be called")
		},
	})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "Usage:")
	assert.Contains(t, buf.String(), "--operating-system")
	assert.Contains(t, buf.String(), "--package-manager")
}

func TestCommands_WiresFlags(t *testing.T) {
	var captured app.Options
	cli, _ := newCLI(&mockApp{
		runFunc: func(_ context.Context, opts app.Options) error {
			captured = opts
			return nil
		},
	},
		"--name", "Gorian",
		"--operating-system", "debian",
		"--systemd", "--collectd", "--check_mk",
		"--modules", "nginx,mysql",
		"--package-manager", "yum",
		"--server", "nms.example.com",
		"--snmpd-extend-dir", "/opt/extends",
		"-l", "/tmp/install.log",
		"-d",
		"--descriptor", "builtin:os",
	)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.Options{
		Name:            "Gorian",
		OperatingSystem: "debian",
		Systemd:         true,
		Collectd:        true,
		CheckMK:         true,
		Modules:         []string{"nginx", "mysql"},
		PackageManager:  domain.PackageManagerYum,
		Server:          "nms.example.com",
		SnmpdExtendDir:  "/opt/extends",
		LogFile:         "/tmp/install.log",
		Debug:           true,
		Descriptor:      "builtin:os",
	}, captured)
}

func TestCommands_Defaults(t *testing.T) {
	var captured app.Options
	cli, _ := newCLI(&mockApp{
		runFunc: func(_ context.Context, opts app.Options) error {
			captured = opts
			return nil
		},
	}, "--name", "Murrant")

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, domain.DefaultSnmpdExtendDir, captured.SnmpdExtendDir)
	assert.Equal(t, domain.DefaultDescriptorURL, captured.Descriptor)
	assert.Empty(t, captured.PackageManager)
	assert.False(t, captured.Debug)
}

func TestCommands_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unsupported package manager", args: []string{"--package-manager", "pacman"}},
		{name: "unknown flag", args: []string{"--frobnicate"}},
		{name: "missing flag value", args: []string{"--server"}},
		{name: "positional argument", args: []string{"debian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := newCLI(&mockApp{
				runFunc: func(context.Context, app.Options) error {
					panic("should not be called")
				},
			}, tt.args...)

			err := cli.Execute(context.Background())
			require.Error(t, err)
			assert.True(t, commands.IsUsageError(err), "got %v", err)
		})
	}
}

func TestCommands_PackageManagerErrorKeepsCause(t *testing.T) {
	cli, _ := newCLI(&mockApp{}, "--package-manager", "pacman")

	err := cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnsupportedPackageManager)
}

func TestCommands_RunFailureIsNotUsage(t *testing.T) {
	cli, _ := newCLI(&mockApp{
		runFunc: func(context.Context, app.Options) error {
			return errors.New("simulated error")
		},
	}, "--name", "Gorian")

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.False(t, commands.IsUsageError(err))
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_Version(t *testing.T) {
	t.Run("subcommand", func(t *testing.T) {
		cli, buf := newCLI(&mockApp{}, "version")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "lnms-install version "+build.Version+"\n", buf.String())
	})

	t.Run("flag", func(t *testing.T) {
		cli, buf := newCLI(&mockApp{}, "-v")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, build.Name+" "+build.Version+"\n", buf.String())
	})
}
