package domain

import (
	"strconv"
	"time"
)

// Defaults for installer paths and the operating system descriptor.
const (
	DefaultSnmpdExtendDir = "/etc/snmp/extends.d"
	DefaultAgentDir       = "/usr/lib/check_mk/local"
	DefaultAgentBinary    = "/usr/bin/check_mk_agent"
	DefaultDescriptorURL  = "https://raw.githubusercontent.com/Gorian/librenms-agent/client-install/install/os.yaml"
	DefaultColumns        = 80
	DefaultFormatWidth    = 30
)

// Settings holds the host facts and installer defaults read once at startup.
// It is passed explicitly to the components that need it.
type Settings struct {
	ScriptName     string
	Version        string
	Executable     string
	Hostname       string
	FQDN           string
	HomeDirectory  string
	Today          time.Time
	Columns        int
	FormatWidth    int
	SnmpdExtendDir string
	AgentDir       string
	DescriptorURL  string
}

// Fields lists the settings for the debug report in a stable order.
func (s Settings) Fields() []Field {
	return []Field{
		{Name: "script.name", Value: s.ScriptName},
		{Name: "script.version", Value: s.Version},
		{Name: "script.execution", Value: s.Executable},
		{Name: "hostname", Value: s.Hostname},
		{Name: "host_fqdn", Value: s.FQDN},
		{Name: "today", Value: s.Today.Format(time.DateOnly)},
		{Name: "home_directory", Value: s.HomeDirectory},
		{Name: "columns", Value: strconv.Itoa(s.Columns)},
		{Name: "format_width", Value: strconv.Itoa(s.FormatWidth)},
		{Name: "defaults.snmpd_extend", Value: s.SnmpdExtendDir},
		{Name: "defaults.agent_dir", Value: s.AgentDir},
		{Name: "defaults.descriptor_url", Value: s.DescriptorURL},
	}
}
