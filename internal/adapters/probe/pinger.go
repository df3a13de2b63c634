// Package probe checks that the monitoring server answers before anything is planned.
package probe

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/zerr"
)

// Pinger implements ports.Prober by sending a single ICMP echo with the system ping binary.
type Pinger struct {
	command []string
}

// NewPinger creates a Pinger that runs "ping -c 1 <host>".
func NewPinger() *Pinger {
	return &Pinger{command: []string{"ping", "-c", "1"}}
}

// Probe sends one echo request to host. Any failure, including an empty host,
// is reported as domain.ErrUnreachableServer.
func (p *Pinger) Probe(ctx context.Context, host string) error {
	host = strings.TrimSpace(host)
	if host == "" || strings.HasPrefix(host, "-") {
		return domain.Annotate(domain.ErrUnreachableServer, "server", host)
	}

	args := append(append([]string{}, p.command[1:]...), host)
	//nolint:gosec // host is passed as a single argument, never through a shell
	cmd := exec.CommandContext(ctx, p.command[0], args...)

	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	probeErr := domain.Annotate(domain.ErrUnreachableServer, "server", host)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		probeErr = zerr.With(probeErr, "exit_code", exitErr.ExitCode())
		if output := strings.TrimSpace(string(out)); output != "" {
			probeErr = zerr.With(probeErr, "output", output)
		}
		return probeErr
	}
	return zerr.With(probeErr, "cause", err.Error())
}
