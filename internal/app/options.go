package app

import (
	"strconv"
	"strings"

	"go.trai.ch/lnms-install/internal/core/domain"
)

// Options carries the parsed command line.
type Options struct {
	Name            string
	OperatingSystem string
	Systemd         bool
	Collectd        bool
	CheckMK         bool
	Modules         []string
	PackageManager  domain.PackageManager
	Server          string
	SnmpdExtendDir  string
	LogFile         string
	Debug           bool
	Descriptor      string
}

// Fields lists the options for the debug report, keyed as "args.<flag>".
func (o Options) Fields() []domain.Field {
	return []domain.Field{
		{Name: "args.name", Value: o.Name},
		{Name: "args.operating_system", Value: o.OperatingSystem},
		{Name: "args.systemd", Value: strconv.FormatBool(o.Systemd)},
		{Name: "args.collectd", Value: strconv.FormatBool(o.Collectd)},
		{Name: "args.check_mk", Value: strconv.FormatBool(o.CheckMK)},
		{Name: "args.modules", Value: strings.Join(o.Modules, " ")},
		{Name: "args.package_manager", Value: o.PackageManager.String()},
		{Name: "args.server", Value: o.Server},
		{Name: "args.snmpd_extend_dir", Value: o.SnmpdExtendDir},
		{Name: "args.logging_file", Value: o.LogFile},
		{Name: "args.debug", Value: strconv.FormatBool(o.Debug)},
		{Name: "args.descriptor", Value: o.Descriptor},
	}
}

func (o Options) installRequest(settings domain.Settings) domain.InstallRequest {
	extendDir := o.SnmpdExtendDir
	if extendDir == "" {
		extendDir = settings.SnmpdExtendDir
	}
	return domain.InstallRequest{
		Systemd:        o.Systemd,
		Collectd:       o.Collectd,
		CheckMK:        o.CheckMK,
		Modules:        o.Modules,
		PackageManager: o.PackageManager,
		SnmpdExtendDir: extendDir,
		AgentDir:       settings.AgentDir,
	}
}
