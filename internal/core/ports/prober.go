package ports

import "context"

// Prober checks that a monitoring server answers on the network.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// Probe sends a single reachability probe to host.
	// It returns an error wrapping domain.ErrUnreachableServer when the host does not answer.
	Probe(ctx context.Context, host string) error
}
