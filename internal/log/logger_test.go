package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackmoxie/looksy-cog/internal/log"
)

func TestNewOutputsBaseAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "acme/demo", "1.2.3", slog.LevelDebug)
	logger.Info("hello", log.StepID("Echo"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &got))
	assert.Equal(t, "acme/demo", got["service"])
	assert.Equal(t, "1.2.3", got["version"])
	assert.Equal(t, "Echo", got["step_id"])
	assert.Equal(t, "hello", got["msg"])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "svc", "1", slog.LevelWarn)
	ctx := context.Background()

	assert.False(t, logger.Handler().Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Handler().Enabled(ctx, slog.LevelWarn))
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := log.ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := log.ParseLevel("loud")
	assert.Error(t, err)
}
