package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agrifarma/config"
	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormSlogLogger sends gorm output to slog. Queries run inside a request log
// through that request's logger so they carry its request_id.
type gormSlogLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{base: base, level: logger.Warn}
	if cfg == nil {
		return l
	}

	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Database.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < enabledAt {
		return
	}

	l.logger(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed and slow queries, and every query in debug mode. Missing
// rows and constraint violations are logged at debug level only.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}

	switch {
	case err != nil && !expectedQueryError(err) && l.level >= logger.Error:
		attrs = append(attrs, slog.String("error", err.Error()))
		l.logger(ctx).LogAttrs(ctx, slog.LevelError, "Query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs = append(attrs, slog.Duration("threshold", l.slowThreshold))
		l.logger(ctx).LogAttrs(ctx, slog.LevelWarn, "Slow query", attrs...)
	case l.level >= logger.Info:
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		l.logger(ctx).LogAttrs(ctx, slog.LevelDebug, "Query", attrs...)
	}
}

func (l *gormSlogLogger) logger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func expectedQueryError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) ||
		isUniqueConstraintViolation(err) ||
		isForeignKeyConstraintViolation(err) ||
		isCheckConstraintViolation(err)
}
