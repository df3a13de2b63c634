package ports

// UnitRenderer renders service definitions for the check_mk agent.
//
//go:generate go run go.uber.org/mock/mockgen -source=unit_renderer.go -destination=mocks/mock_unit_renderer.go -package=mocks
type UnitRenderer interface {
	// SocketUnit renders the systemd socket unit listening on the agent port.
	SocketUnit() (string, error)
	// ServiceUnit renders the templated systemd service spawned per connection.
	ServiceUnit(agentPath string) (string, error)
	// XinetdService renders the xinetd stanza used when systemd is not preferred.
	XinetdService(agentPath string) (string, error)
}
