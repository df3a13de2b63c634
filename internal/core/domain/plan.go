package domain

import "strings"

// StepKind identifies the action an install step would perform.
type StepKind string

const (
	// StepInstallPackages installs packages with the host package manager.
	StepInstallPackages StepKind = "install-packages"
	// StepCreateDirectory creates a directory.
	StepCreateDirectory StepKind = "create-directory"
	// StepInstallModule places a monitoring module's extend script.
	StepInstallModule StepKind = "install-module"
	// StepWriteFile writes a configuration or unit file.
	StepWriteFile StepKind = "write-file"
)

// Step is one planned installation action. Plans are never executed by the installer.
type Step struct {
	Kind    StepKind
	Command []string
	Path    string
	Content string
}

// Describe renders the step as a single line.
func (s Step) Describe() string {
	switch s.Kind {
	case StepInstallPackages:
		return strings.Join(s.Command, " ")
	default:
		return s.Path
	}
}

// Plan is the ordered list of steps needed to provision a host.
type Plan struct {
	Steps []Step
}

// Add appends a step.
func (p *Plan) Add(step Step) {
	p.Steps = append(p.Steps, step)
}

// Len returns the number of steps.
func (p *Plan) Len() int {
	return len(p.Steps)
}

// InstallRequest carries the installer flags that shape a Plan.
type InstallRequest struct {
	Systemd        bool
	Collectd       bool
	CheckMK        bool
	Modules        []string
	PackageManager PackageManager
	SnmpdExtendDir string
	AgentDir       string
}
