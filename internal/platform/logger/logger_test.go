package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"errsift/internal/platform/logger"
)

func TestRedactingHandlerMasksSensitiveKeys(t *testing.T) {
	var buf bytes.Buffer
	inner := slog.NewTextHandler(&buf, nil)
	h := logger.NewRedactingHandler(inner, []string{"token", "api_key"})
	log := slog.New(h)

	log.Info("report delivered",
		slog.String("token", "sk-very-secret"),
		slog.String("API_KEY", "abc123"),
		slog.String("operation", "load_user_data"),
	)

	out := buf.String()
	assert.NotContains(t, out, "sk-very-secret")
	assert.NotContains(t, out, "abc123")
	assert.Contains(t, out, "[REDACTED]")
	assert.Contains(t, out, "load_user_data")
}

func TestRedactingHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := logger.NewRedactingHandler(slog.NewTextHandler(&buf, nil), []string{"secret"})
	log := slog.New(h).With(slog.String("secret", "hunter2"))

	log.Info("hello")
	assert.NotContains(t, buf.String(), "hunter2")
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := logger.NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)
	slog.New(h).Info("fan out")

	assert.Contains(t, a.String(), "fan out")
	assert.Contains(t, b.String(), "fan out")
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	var a, b bytes.Buffer
	h := logger.NewMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	require.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	slog.New(h).Debug("quiet")
	assert.Empty(t, a.String())
	assert.Contains(t, b.String(), "quiet")
}

func TestNewAndClose(t *testing.T) {
	log := logger.New(logger.Options{Env: "dev", App: "errsift"})
	require.NotNil(t, log)
	// No file handler configured, Close is a no-op.
	assert.NoError(t, logger.Close(log))
}
