// Package app implements the application layer for lnms-install.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/lnms-install/internal/core/ports"
	"go.trai.ch/lnms-install/internal/engine/planner"
	"go.trai.ch/lnms-install/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// PeopleDescriptor is the embedded roster used to resolve --name.
const PeopleDescriptor = "people"

// App represents the main application logic.
type App struct {
	loader   ports.DescriptorLoader
	resolver *resolver.Resolver
	planner  *planner.Planner
	prober   ports.Prober
	reporter ports.Reporter
	logger   ports.Logger
	settings domain.Settings
}

// New creates a new App instance.
func New(
	loader ports.DescriptorLoader,
	res *resolver.Resolver,
	plan *planner.Planner,
	prober ports.Prober,
	reporter ports.Reporter,
	logger ports.Logger,
	settings domain.Settings,
) *App {
	return &App{
		loader:   loader,
		resolver: res,
		planner:  plan,
		prober:   prober,
		reporter: reporter,
		logger:   logger,
		settings: settings,
	}
}

// Settings returns the host facts the app was created with.
func (a *App) Settings() domain.Settings {
	return a.settings
}

// Run verifies the server, resolves the requested entries, reports them and,
// in debug mode, dumps the program state.
func (a *App) Run(ctx context.Context, opts Options) (err error) {
	a.logger.SetDebug(opts.Debug)

	if opts.LogFile != "" {
		closeLog, openErr := a.redirectLog(opts.LogFile)
		if openErr != nil {
			return openErr
		}
		defer func() {
			if err != nil {
				a.logger.Error(err)
			}
			closeLog()
		}()
	}

	// 1. Validate selection
	if opts.Name == "" && opts.OperatingSystem == "" {
		return domain.ErrNoEntitySelected
	}

	// 2. Verify server
	if opts.Server != "" {
		if err := a.VerifyServer(ctx, opts.Server); err != nil {
			return err
		}
	}

	// 3. Resolve and report
	var variables []domain.Field
	var plan *domain.Plan

	if opts.Name != "" {
		_, fields, err := a.resolve(ctx, domain.BuiltinSource(PeopleDescriptor), domain.KindPerson, opts.Name)
		if err != nil {
			return err
		}
		variables = append(variables, fields...)
	}

	if opts.OperatingSystem != "" {
		descriptor := opts.Descriptor
		if descriptor == "" {
			descriptor = a.settings.DescriptorURL
		}

		record, fields, err := a.resolve(ctx, domain.ParseSource(descriptor), domain.KindOperatingSystem, opts.OperatingSystem)
		if err != nil {
			return err
		}
		variables = append(variables, fields...)

		osRecord, ok := record.(*domain.OperatingSystem)
		if !ok {
			return domain.Annotate(domain.ErrUnknownRecordKind, "kind", string(record.Kind()))
		}
		if opts.Systemd && !opts.CheckMK {
			a.logger.Warn("--systemd has no effect without --check_mk")
		}
		plan, err = a.planner.Plan(osRecord, opts.installRequest(a.settings))
		if err != nil {
			return zerr.Wrap(err, "failed to plan installation")
		}
		a.logger.Debug(fmt.Sprintf("planned %d install steps for %s", plan.Len(), osRecord.Name))
	}

	// 4. Dump state
	if opts.Debug {
		return a.reporter.Debug(a.debugSections(opts, variables, plan))
	}
	return nil
}

// VerifyServer checks that the monitoring server answers a single probe.
func (a *App) VerifyServer(ctx context.Context, server string) error {
	a.logger.Debug("verifying server " + server)
	if err := a.prober.Probe(ctx, server); err != nil {
		return err
	}
	a.logger.Debug("server " + server + " is reachable")
	return nil
}

func (a *App) resolve(
	ctx context.Context,
	src domain.Source,
	kind domain.RecordKind,
	name string,
) (domain.Record, []domain.Field, error) {
	a.logger.Debug("loading descriptor " + src.String())
	doc, err := a.loader.Load(ctx, src)
	if err != nil {
		return nil, nil, err
	}

	record, err := a.resolver.Resolve(doc, kind, name)
	if err != nil {
		return nil, nil, err
	}

	if err := a.reporter.Report(record); err != nil {
		return nil, nil, zerr.Wrap(err, "failed to write report")
	}

	prefix := string(kind) + "."
	fields := []domain.Field{
		{Name: prefix + "descriptor", Value: doc.Source()},
		{Name: prefix + "checksum", Value: doc.Checksum()},
		{Name: prefix + "entries", Value: strings.Join(doc.Names(), " ")},
	}
	for _, f := range record.Fields() {
		fields = append(fields, domain.Field{Name: prefix + f.Name, Value: f.Value})
	}
	return record, fields, nil
}

func (a *App) debugSections(opts Options, variables []domain.Field, plan *domain.Plan) []ports.DebugSection {
	sections := []ports.DebugSection{
		{Title: "Settings", Fields: a.settings.Fields()},
		{Title: "Arguments", Fields: opts.Fields()},
		{Title: "Variables", Fields: variables},
	}
	if plan != nil {
		steps := make([]domain.Field, 0, plan.Len())
		for i, step := range plan.Steps {
			steps = append(steps, domain.Field{
				Name:  fmt.Sprintf("step.%d", i+1),
				Value: string(step.Kind) + " " + step.Describe(),
			})
		}
		sections = append(sections, ports.DebugSection{Title: "Plan", Fields: steps})
	}
	return sections
}

// redirectLog sends log output to path, appending to an existing file.
// The returned function restores stderr and closes the file.
func (a *App) redirectLog(path string) (func(), error) {
	//nolint:gosec // path is provided by user
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logErr := domain.Annotate(domain.ErrLogFileOpenFailed, "path", path)
		return nil, zerr.With(logErr, "cause", err.Error())
	}

	a.logger.SetOutput(f)
	a.logger.Info(fmt.Sprintf("%s %s appending log output to %s", a.settings.ScriptName, a.settings.Version, path))
	return func() {
		a.logger.SetOutput(nil)
		_ = f.Close()
	}, nil
}
