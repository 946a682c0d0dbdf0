package store

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"agrifarma/config"
	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool, slow time.Duration) *gormSlogLogger {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Database.SlowQueryThreshold = slow
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger)
}

func query(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
		absent  bool
	}{
		{name: "unexpected failure", err: errors.New("connection reset"), want: "Query failed"},
		{name: "missing row is quiet", err: gorm.ErrRecordNotFound, absent: true},
		{name: "duplicate key is quiet", err: gorm.ErrDuplicatedKey, absent: true},
		{name: "slow query", elapsed: time.Second, want: "Slow query"},
		{name: "fast query is quiet", absent: true},
		{name: "debug logs every query", debug: true, want: "msg=Query "},
		{name: "debug shows expected errors", debug: true, err: gorm.ErrRecordNotFound, want: "record not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTestGormLogger(&buf, tt.debug, 100*time.Millisecond)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), query("SELECT 1"), tt.err)

			if tt.absent {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newTestGormLogger(&base, false, 0)
	reqLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-7"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), query("UPDATE products"), errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-7")
	assert.Contains(t, scoped.String(), "UPDATE products")
}

func TestGormSlogLogger_SlowThresholdDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, false, -1)

	l.Trace(context.Background(), time.Now().Add(-time.Hour), query("SELECT 1"), nil)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogModeSilences(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, true, 0).LogMode(logger.Silent)

	l.Error(context.Background(), "failed %s", "hard")
	l.Trace(context.Background(), time.Now(), query("SELECT 1"), errors.New("boom"))

	assert.Empty(t, buf.String())
}
