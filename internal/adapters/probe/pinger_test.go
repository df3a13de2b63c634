package probe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lnms-install/internal/adapters/probe"
	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestPinger_Success(t *testing.T) {
	p := probe.NewPingerWithCommand("true")
	assert.NoError(t, p.Probe(context.Background(), "nms.example.com"))
}

func TestPinger_Failure(t *testing.T) {
	p := probe.NewPingerWithCommand("sh", "-c", "echo 100% packet loss; exit 1", "ping")

	err := p.Probe(context.Background(), "nms.example.com")
	require.ErrorIs(t, err, domain.ErrUnreachableServer)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	meta := zErr.Metadata()
	assert.Equal(t, "nms.example.com", meta["server"])
	assert.Equal(t, 1, meta["exit_code"])
	assert.Equal(t, "100% packet loss", meta["output"])
}

func TestPinger_MissingBinary(t *testing.T) {
	p := probe.NewPingerWithCommand("/nonexistent/ping")

	err := p.Probe(context.Background(), "nms.example.com")
	assert.ErrorIs(t, err, domain.ErrUnreachableServer)
}

func TestPinger_RejectsInvalidHost(t *testing.T) {
	p := probe.NewPingerWithCommand("true")

	for _, host := range []string{"", "   ", "-f"} {
		assert.ErrorIs(t, p.Probe(context.Background(), host), domain.ErrUnreachableServer, "host %q", host)
	}
}

func TestPinger_Canceled(t *testing.T) {
	p := probe.NewPingerWithCommand("sleep", "5")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Probe(ctx, "1"), domain.ErrUnreachableServer)
}
