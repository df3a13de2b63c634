package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lnms-install/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	log := slog.New(logger.NewPrettyHandler(buf, nil))
	log.With("host", "nms").WithGroup("probe").Info("reachable", "attempts", 1)

	assert.Equal(t, "reachable probe.host=nms probe.attempts=1\n", buf.String())
}

func TestPrettyHandler_LevelVar(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	level := &slog.LevelVar{}
	level.Set(slog.LevelWarn)

	buf := &bytes.Buffer{}
	log := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}))

	log.Info("dropped")
	assert.Empty(t, buf.String())

	level.Set(slog.LevelInfo)
	log.Info("kept")
	assert.Equal(t, "kept\n", buf.String())
}
