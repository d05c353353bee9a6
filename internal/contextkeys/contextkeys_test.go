package contextkeys

import (
	"context"
	"testing"

	"listing-service/internal/core/port"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	noopLogger
	fields port.Fields
}

func (r *recordingLogger) WithFields(fields port.Fields) port.LoggerPort {
	return &recordingLogger{fields: fields}
}

func TestLoggerFromContext(t *testing.T) {
	assert.IsType(t, &noopLogger{}, LoggerFromContext(context.Background()))

	logger := &recordingLogger{}
	ctx := ContextWithLogger(context.Background(), logger)
	assert.Same(t, logger, LoggerFromContext(ctx))
}

func TestTraceIDFromContext(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))

	ctx := ContextWithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", TraceIDFromContext(ctx))
}
