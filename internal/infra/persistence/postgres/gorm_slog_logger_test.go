package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"beacon/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlAndRows := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantLog bool
	}{
		{name: "query error", begin: time.Now(), err: errors.New("boom"), want: `"msg":"Query failed"`, wantLog: true},
		{name: "record not found", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "cancelled selection", begin: time.Now(), err: context.Canceled},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: `"msg":"Slow query"`, wantLog: true},
		{name: "fast query outside debug", begin: time.Now()},
		{name: "fast query in debug", debug: true, begin: time.Now(), want: `"sql":"SELECT 1"`, wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{Database: &config.DatabaseConfig{SlowThreshold: 200 * time.Millisecond}}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

			l.Trace(context.Background(), tt.begin, sqlAndRows, tt.err)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), `"component":"gorm"`)
		})
	}
}
