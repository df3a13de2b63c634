// Package systemd renders the service definitions that expose the check_mk agent.
package systemd

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/coreos/go-systemd/v22/unit"
	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/zerr"
)

// AgentPort is the TCP port the check_mk agent listens on.
const AgentPort = 6556

// Renderer implements ports.UnitRenderer.
type Renderer struct {
	port int
}

// NewRenderer creates a Renderer for the standard agent port.
func NewRenderer() *Renderer {
	return &Renderer{port: AgentPort}
}

// SocketUnit renders check_mk.socket.
func (r *Renderer) SocketUnit() (string, error) {
	return serialize("check_mk.socket", []*unit.UnitOption{
		unit.NewUnitOption("Unit", "Description", "Check_MK LibreNMS Agent Socket"),
		unit.NewUnitOption("Socket", "ListenStream", strconv.Itoa(r.port)),
		unit.NewUnitOption("Socket", "Accept", "yes"),
		unit.NewUnitOption("Install", "WantedBy", "sockets.target"),
	})
}

// ServiceUnit renders check_mk@.service, started once per accepted connection.
func (r *Renderer) ServiceUnit(agentPath string) (string, error) {
	if err := checkAgentPath("check_mk@.service", agentPath); err != nil {
		return "", err
	}
	return serialize("check_mk@.service", []*unit.UnitOption{
		unit.NewUnitOption("Unit", "Description", "Check_MK LibreNMS Agent Service"),
		unit.NewUnitOption("Unit", "After", "network.target"),
		unit.NewUnitOption("Service", "User", "root"),
		unit.NewUnitOption("Service", "ExecStart", "-"+agentPath),
		unit.NewUnitOption("Service", "StandardInput", "socket"),
	})
}

// XinetdService renders the xinetd stanza used on hosts without systemd.
func (r *Renderer) XinetdService(agentPath string) (string, error) {
	if err := checkAgentPath("xinetd check_mk", agentPath); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("service check_mk\n{\n")
	for _, kv := range [][2]string{
		{"type", "UNLISTED"},
		{"port", strconv.Itoa(r.port)},
		{"socket_type", "stream"},
		{"protocol", "tcp"},
		{"wait", "no"},
		{"user", "root"},
		{"server", agentPath},
		{"disable", "no"},
	} {
		fmt.Fprintf(&b, "\t%-14s = %s\n", kv[0], kv[1])
	}
	b.WriteString("}\n")
	return b.String(), nil
}

func checkAgentPath(name, agentPath string) error {
	if agentPath == "" || !filepath.IsAbs(agentPath) || strings.ContainsAny(agentPath, "\n ") {
		err := domain.Annotate(domain.ErrUnitRenderFailed, "unit", name)
		return zerr.With(err, "agent_path", agentPath)
	}
	return nil
}

func serialize(name string, opts []*unit.UnitOption) (string, error) {
	data, err := io.ReadAll(unit.Serialize(opts))
	if err != nil {
		renderErr := domain.Annotate(domain.ErrUnitRenderFailed, "unit", name)
		return "", zerr.With(renderErr, "cause", err.Error())
	}
	return string(data), nil
}
