package hostenv

import "time"

// Fakes replaces the host lookups used by an Inspector.
type Fakes struct {
	Hostname   func() (string, error)
	HomeDir    func() (string, error)
	Getenv     func(string) string
	Now        func() time.Time
	LookupFQDN func(string) (string, bool)
	Executable string
}

// NewInspectorWithFakes creates an Inspector that reads from fakes.
func NewInspectorWithFakes(f Fakes) *Inspector {
	return &Inspector{
		hostname:   f.Hostname,
		homeDir:    f.HomeDir,
		getenv:     f.Getenv,
		now:        f.Now,
		lookupFQDN: f.LookupFQDN,
		executable: f.Executable,
	}
}

// ParseColumns exposes parseColumns for testing.
var ParseColumns = parseColumns
