package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lnms-install/internal/adapters/report"
	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/lnms-install/internal/core/ports"
)

func newTestReporter(t *testing.T, settings domain.Settings) (*report.Reporter, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return report.NewWithWriter(buf, settings), buf
}

func TestReporter_ReportPerson(t *testing.T) {
	r, buf := newTestReporter(t, domain.Settings{})

	require.NoError(t, r.Report(&domain.Person{Name: "Gorian", Food: "pasta"}))
	assert.Equal(t, "user's name is \"Gorian\" and their favorite food is \"pasta\"\n", buf.String())
}

func TestReporter_ReportOperatingSystem(t *testing.T) {
	r, buf := newTestReporter(t, domain.Settings{})

	require.NoError(t, r.Report(&domain.OperatingSystem{
		Name:           "centos",
		PackageManager: domain.PackageManagerYum,
		Description:    "CentOS Linux",
		SnmpdPackages:  []string{"net-snmp", "net-snmp-utils"},
	}))

	want := "My OS is \"centos\", and my package manager is \"yum\"\n" +
		"My snmpd package is \"net-snmp net-snmp-utils\"\n" +
		"\"centos\" is \"CentOS Linux\"\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_Debug(t *testing.T) {
	r, buf := newTestReporter(t, domain.Settings{Columns: 12, FormatWidth: 8})

	err := r.Debug([]ports.DebugSection{
		{Title: "Settings", Fields: []domain.Field{{Name: "hostname", Value: "web01"}}},
		{Title: "Arguments", Fields: []domain.Field{
			{Name: "args.name", Value: "Gorian"},
			{Name: "args.debug", Value: "true"},
		}},
	})
	require.NoError(t, err)

	want := "\nDEBUG INFO\n" +
		"------------\n" +
		"Settings:\n" +
		"\thostname web01\n" +
		"\n" +
		"Arguments:\n" +
		"\targs.name Gorian\n" +
		"\targs.debug true\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_DebugDefaults(t *testing.T) {
	r, buf := newTestReporter(t, domain.Settings{})

	require.NoError(t, r.Debug([]ports.DebugSection{
		{Title: "Variables", Fields: []domain.Field{{Name: "k", Value: "v"}}},
	}))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, strings.Repeat("-", domain.DefaultColumns), lines[2])
	assert.Equal(t, "\tk"+strings.Repeat(" ", domain.DefaultFormatWidth)+"v", lines[4])
}
