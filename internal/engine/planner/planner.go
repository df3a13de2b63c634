// Package planner derives the steps needed to provision a host for monitoring.
// Plans are reported, never executed.
package planner

import (
	"path"
	"slices"
	"strings"

	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/lnms-install/internal/core/ports"
	"go.trai.ch/zerr"
)

// Paths of the service definitions written for the check_mk agent.
const (
	SocketUnitPath  = "/etc/systemd/system/check_mk.socket"
	ServiceUnitPath = "/etc/systemd/system/check_mk@.service"
	XinetdPath      = "/etc/xinetd.d/check_mk"
	CollectdPackage = "collectd"
)

// Planner builds install plans.
type Planner struct {
	units ports.UnitRenderer
}

// New creates a Planner that renders agent service definitions with units.
func New(units ports.UnitRenderer) *Planner {
	return &Planner{units: units}
}

// Plan returns the steps that would install the monitoring agent on a host running osRecord.
func (p *Planner) Plan(osRecord *domain.OperatingSystem, req domain.InstallRequest) (*domain.Plan, error) {
	pm := osRecord.PackageManager
	if req.PackageManager != "" {
		pm = req.PackageManager
	}
	if _, err := domain.ParsePackageManager(pm.String()); err != nil {
		return nil, zerr.With(err, "entry", osRecord.Name)
	}

	extendDir := req.SnmpdExtendDir
	if extendDir == "" {
		extendDir = domain.DefaultSnmpdExtendDir
	}
	agentDir := req.AgentDir
	if agentDir == "" {
		agentDir = domain.DefaultAgentDir
	}

	plan := &domain.Plan{}

	packages := slices.Clone(osRecord.SnmpdPackages)
	if req.CheckMK && !req.Systemd {
		packages = append(packages, osRecord.XinetdPackages...)
	}
	if req.Collectd {
		packages = append(packages, CollectdPackage)
	}
	if packages = dedupe(packages); len(packages) > 0 {
		plan.Add(domain.Step{Kind: domain.StepInstallPackages, Command: pm.InstallCommand(packages)})
	}

	plan.Add(domain.Step{Kind: domain.StepCreateDirectory, Path: extendDir})

	for _, module := range req.Modules {
		if err := checkModule(module); err != nil {
			return nil, err
		}
		plan.Add(domain.Step{Kind: domain.StepInstallModule, Path: path.Join(extendDir, module)})
	}

	if req.CheckMK {
		if err := p.planAgent(plan, agentDir, req.Systemd); err != nil {
			return nil, err
		}
	}

	return plan, nil
}

func (p *Planner) planAgent(plan *domain.Plan, agentDir string, systemd bool) error {
	plan.Add(domain.Step{Kind: domain.StepCreateDirectory, Path: agentDir})

	if !systemd {
		stanza, err := p.units.XinetdService(domain.DefaultAgentBinary)
		if err != nil {
			return err
		}
		plan.Add(domain.Step{Kind: domain.StepWriteFile, Path: XinetdPath, Content: stanza})
		return nil
	}

	socket, err := p.units.SocketUnit()
	if err != nil {
		return err
	}
	service, err := p.units.ServiceUnit(domain.DefaultAgentBinary)
	if err != nil {
		return err
	}
	plan.Add(domain.Step{Kind: domain.StepWriteFile, Path: SocketUnitPath, Content: socket})
	plan.Add(domain.Step{Kind: domain.StepWriteFile, Path: ServiceUnitPath, Content: service})
	return nil
}

func checkModule(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\") {
		return domain.Annotate(domain.ErrInvalidModule, "module", name)
	}
	return nil
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
