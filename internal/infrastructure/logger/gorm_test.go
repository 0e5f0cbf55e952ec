package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level), logs
}

func TestGormLogger_LogMode(t *testing.T) {
	gl, _ := newObservedGormLogger(gormlogger.Warn)

	silenced := gl.LogMode(gormlogger.Silent)
	require.NotNil(t, silenced)
	// original is unchanged
	assert.Equal(t, gormlogger.Warn, gl.logLevel)
}

func TestGormLogger_Info(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Info)
	gl.Info(context.Background(), "migrated %d tables", 3)
	assert.Equal(t, 1, logs.Len())
}

func TestGormLogger_Info_Suppressed(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Error)
	gl.Info(context.Background(), "should not appear")
	assert.Equal(t, 0, logs.Len())
}

func TestGormLogger_Trace_Error(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Error)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM orders", 0
	}, errors.New("connection reset"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "SQL Error", entry.Message)
	assert.Equal(t, "SELECT * FROM orders", entry.ContextMap()["sql"])
}

func TestGormLogger_Trace_RecordNotFoundIgnored(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Error)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM products WHERE id = 999", 0
	}, gormlogger.ErrRecordNotFound)

	assert.Equal(t, 0, logs.Len())
}

func TestGormLogger_Trace_SlowQuery(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Warn)
	gl.slowThreshold = time.Nanosecond

	begin := time.Now().Add(-time.Second)
	gl.Trace(context.Background(), begin, func() (string, int64) {
		return "SELECT * FROM orders", 10
	}, nil)

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "SLOW SQL")
}

func TestGormLogger_Trace_Silent(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Silent)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, errors.New("boom"))

	assert.Equal(t, 0, logs.Len())
}

func TestGormLogger_Trace_WithRequestID(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Error)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")
	gl.Trace(ctx, time.Now(), func() (string, int64) {
		return "INSERT INTO orders", 0
	}, errors.New("constraint violation"))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"unknown", gormlogger.Warn},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MapGormLogLevel(tt.in), tt.in)
	}
}

func TestGormLoggerImplementsInterface(t *testing.T) {
	var _ gormlogger.Interface = (*GormLogger)(nil)
}
