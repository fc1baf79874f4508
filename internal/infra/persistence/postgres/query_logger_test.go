package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"zembil/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestQueryLogger(debug bool) (gormlogger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newQueryLogger(logger, cfg), &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(raw), &entry))
		lines = append(lines, entry)
	}

	return lines
}

func TestQueryLogger_Trace(t *testing.T) {
	statement := func() (string, int64) { return `SELECT * FROM "shops"`, 2 }

	t.Run("failed query is logged as error", func(t *testing.T) {
		ql, buf := newTestQueryLogger(false)
		ql.Trace(context.Background(), time.Now(), statement, errors.New("connection reset"))

		lines := logLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "ERROR", lines[0]["level"])
		assert.Equal(t, "Database query failed", lines[0]["msg"])
		assert.Equal(t, "connection reset", lines[0]["error"])
		assert.EqualValues(t, 2, lines[0]["rows"])
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		ql, buf := newTestQueryLogger(false)
		ql.Trace(context.Background(), time.Now(), statement, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query is logged as warning", func(t *testing.T) {
		ql, buf := newTestQueryLogger(false)
		ql.Trace(context.Background(), time.Now().Add(-time.Second), statement, nil)

		lines := logLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "Database query slow", lines[0]["msg"])
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		ql, buf := newTestQueryLogger(false)
		ql.Trace(context.Background(), time.Now(), statement, nil)
		assert.Empty(t, buf.String())

		ql, buf = newTestQueryLogger(true)
		ql.Trace(context.Background(), time.Now(), statement, nil)
		lines := logLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "Database query", lines[0]["msg"])
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		ql, buf := newTestQueryLogger(true)
		ql.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), statement, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestStatementAttrs(t *testing.T) {
	long := strings.Repeat("x", maxLoggedSQLLength+10)
	attrs := statementAttrs(func() (string, int64) { return long, -1 }, time.Millisecond)

	require.Len(t, attrs, 2)
	assert.Len(t, attrs[0].Value.String(), maxLoggedSQLLength+3)
	assert.Equal(t, "elapsed", attrs[1].Key)
}
