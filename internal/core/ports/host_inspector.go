package ports

import "go.trai.ch/lnms-install/internal/core/domain"

// HostInspector gathers the host facts the installer reads once at startup.
//
//go:generate go run go.uber.org/mock/mockgen -source=host_inspector.go -destination=mocks/mock_host_inspector.go -package=mocks
type HostInspector interface {
	Inspect() domain.Settings
}
