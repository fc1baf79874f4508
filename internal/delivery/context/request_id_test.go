package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithRequest(context.Background(), "req-1", base)
	ctx = WithLogAttrs(ctx, slog.Uint64("user_id", 7))

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))

	GetLoggerOrDefault(ctx, nil).Info("Shop followed")
	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Contains(t, buf.String(), "user_id=7")
}

func TestRequestScope_Missing(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	ctx := WithLogAttrs(context.Background(), slog.String("k", "v"))

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
}
