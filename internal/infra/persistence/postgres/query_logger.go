package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"zembil/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	slowQueryThreshold = 200 * time.Millisecond
	maxLoggedSQLLength = 2048
)

// queryLogger routes gorm's statement log into slog. Record-not-found is a normal
// outcome for lookups and is never logged as a failure.
type queryLogger struct {
	logger *slog.Logger
	mode   gormlogger.LogLevel
	slow   time.Duration
}

func newQueryLogger(logger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	mode := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		mode = gormlogger.Info
	}

	return &queryLogger{logger: logger, mode: mode, slow: slowQueryThreshold}
}

func (l *queryLogger) LogMode(mode gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.mode = mode

	return &next
}

func (l *queryLogger) Info(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, format, args)
}

func (l *queryLogger) Warn(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, format, args)
}

func (l *queryLogger) Error(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, format, args)
}

func (l *queryLogger) printf(ctx context.Context, needed gormlogger.LogLevel, level slog.Level, format string, args []any) {
	if l.logger == nil || l.mode < needed {
		return
	}

	l.logger.LogAttrs(ctx, level, "Database message", slog.String("detail", fmt.Sprintf(format, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logger == nil || l.mode == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	switch {
	case failed && l.mode >= gormlogger.Error:
		attrs := append(statementAttrs(fc, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "Database query failed", attrs...)
	case l.slow > 0 && elapsed > l.slow && l.mode >= gormlogger.Warn:
		attrs := append(statementAttrs(fc, elapsed), slog.Duration("threshold", l.slow))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Database query slow", attrs...)
	case l.mode >= gormlogger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Database query", statementAttrs(fc, elapsed)...)
	}
}

func statementAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()
	if len(sql) > maxLoggedSQLLength {
		sql = sql[:maxLoggedSQLLength] + "..."
	}

	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Duration("elapsed", elapsed),
	}
	// gorm reports -1 when the row count is unknown
	if rows >= 0 {
		attrs = append(attrs, slog.Int64("rows", rows))
	}

	return attrs
}
