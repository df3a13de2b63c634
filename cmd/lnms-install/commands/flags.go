package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/lnms-install/internal/core/domain"
)

// usageError marks errors caused by invalid command line input.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// IsUsageError reports whether err was caused by invalid command line input.
func IsUsageError(err error) bool {
	var u *usageError
	return errors.As(err, &u)
}

func noPositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &usageError{err: fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
	}
	return nil
}

// packageManagerValue is a pflag.Value accepting only supported package managers.
type packageManagerValue struct {
	target *domain.PackageManager
}

var _ pflag.Value = (*packageManagerValue)(nil)

func newPackageManagerValue(target *domain.PackageManager) *packageManagerValue {
	return &packageManagerValue{target: target}
}

func (v *packageManagerValue) String() string {
	return v.target.String()
}

func (v *packageManagerValue) Set(s string) error {
	pm, err := domain.ParsePackageManager(s)
	if err != nil {
		return err
	}
	*v.target = pm
	return nil
}

func (v *packageManagerValue) Type() string {
	names := make([]string, 0, len(domain.SupportedPackageManagers()))
	for _, pm := range domain.SupportedPackageManagers() {
		names = append(names, pm.String())
	}
	return strings.Join(names, "|")
}
