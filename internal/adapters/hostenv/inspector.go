// Package hostenv reads the facts about the local host that the installer reports.
package hostenv

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/lnms-install/internal/build"
	"go.trai.ch/lnms-install/internal/core/domain"
)

// Inspector implements ports.HostInspector.
type Inspector struct {
	hostname   func() (string, error)
	homeDir    func() (string, error)
	getenv     func(string) string
	now        func() time.Time
	lookupFQDN func(host string) (string, bool)
	executable string
}

// NewInspector creates an Inspector backed by the operating system and resolver.
func NewInspector() *Inspector {
	return &Inspector{
		hostname:   os.Hostname,
		homeDir:    os.UserHomeDir,
		getenv:     os.Getenv,
		now:        time.Now,
		lookupFQDN: lookupFQDN,
		executable: filepath.Base(os.Args[0]),
	}
}

// Inspect gathers the host facts once. Lookups that fail leave sensible fallbacks
// in place rather than failing the run.
func (i *Inspector) Inspect() domain.Settings {
	hostname, err := i.hostname()
	if err != nil {
		hostname = "localhost"
	}

	fqdn := hostname
	if name, ok := i.lookupFQDN(hostname); ok {
		fqdn = name
	}

	home, err := i.homeDir()
	if err != nil {
		home = "~"
	}

	return domain.Settings{
		ScriptName:     build.Name,
		Version:        build.Version,
		Executable:     i.executable,
		Hostname:       hostname,
		FQDN:           fqdn,
		HomeDirectory:  home,
		Today:          i.now(),
		Columns:        parseColumns(i.getenv("COLUMNS")),
		FormatWidth:    domain.DefaultFormatWidth,
		SnmpdExtendDir: domain.DefaultSnmpdExtendDir,
		AgentDir:       domain.DefaultAgentDir,
		DescriptorURL:  domain.DefaultDescriptorURL,
	}
}

// parseColumns returns the terminal width from COLUMNS, or the default when unset or invalid.
func parseColumns(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return domain.DefaultColumns
	}
	return n
}

// lookupFQDN resolves the fully qualified name of host through its addresses.
func lookupFQDN(host string) (string, bool) {
	if cname, err := net.LookupCNAME(host); err == nil {
		if name := strings.TrimSuffix(cname, "."); strings.Contains(name, ".") {
			return name, true
		}
	}

	addrs, err := net.LookupHost(host)
	if err != nil {
		return "", false
	}
	for _, addr := range addrs {
		names, err := net.LookupAddr(addr)
		if err != nil {
			continue
		}
		for _, name := range names {
			if name = strings.TrimSuffix(name, "."); strings.Contains(name, ".") {
				return name, true
			}
		}
	}
	return "", false
}
