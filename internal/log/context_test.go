package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackmoxie/looksy-cog/internal/log"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "svc", "1", slog.LevelInfo).With(log.ConnID("c-1"))

	ctx := log.WithLogger(context.Background(), logger)
	assert.Same(t, logger, log.FromContext(ctx))

	log.FromContext(ctx).Info("hi")
	assert.Contains(t, buf.String(), `"conn_id":"c-1"`)
}

func TestFromContextDefault(t *testing.T) {
	assert.Same(t, slog.Default(), log.FromContext(context.Background()))
}
