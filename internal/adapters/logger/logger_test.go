package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"listing-service/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFluent struct {
	tags     []string
	messages []map[string]interface{}
	closed   bool
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.tags = append(f.tags, tag)
	f.messages = append(f.messages, message.(port.Fields))
	return nil
}

func (f *fakeFluent) Close() error {
	f.closed = true
	return nil
}

func TestFluentLoggerAdapter_LevelsAndFields(t *testing.T) {
	client := &fakeFluent{}
	adapter, err := NewFluentLoggerAdapter(client, slog.LevelInfo)
	require.NoError(t, err)
	adapter.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	logger := adapter.WithFields(port.Fields{"component": "test"})
	logger.Debug("dropped", nil)
	logger.Info("kept", port.Fields{"count": 2})
	logger.Error("failed", errors.New("boom"), nil)

	require.Equal(t, []string{"info", "error"}, client.tags)
	assert.Equal(t, "kept", client.messages[0]["message"])
	assert.Equal(t, "test", client.messages[0]["component"])
	assert.Equal(t, 2, client.messages[0]["count"])
	assert.Equal(t, "2024-01-02T03:04:05Z", client.messages[0]["timestamp"])
	assert.Equal(t, "boom", client.messages[1]["error"])

	// исходный адаптер не получил поля дочернего
	adapter.Info("plain", nil)
	_, hasComponent := client.messages[2]["component"]
	assert.False(t, hasComponent)

	require.NoError(t, adapter.Close())
	assert.True(t, client.closed)
}

func TestNewFluentLoggerAdapter_NilClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestSlogAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, IsJSON: true, Level: slog.LevelDebug})

	logger.WithFields(port.Fields{"trace_id": "t1"}).Error("search failed", errors.New("db down"), port.Fields{"rows": 0})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search failed", entry["msg"])
	assert.Equal(t, "t1", entry["trace_id"])
	assert.Equal(t, "db down", entry["error"])
	assert.Equal(t, float64(0), entry["rows"])
}

func TestMultiLogger(t *testing.T) {
	_, err := NewMultiloggerAdapter()
	assert.Error(t, err)

	first, second := &fakeFluent{}, &fakeFluent{}
	a, _ := NewFluentLoggerAdapter(first, slog.LevelDebug)
	b, _ := NewFluentLoggerAdapter(second, slog.LevelWarn)

	multi, err := NewMultiloggerAdapter(a, b)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"k": "v"}).Info("hello", nil)
	multi.Warn("careful", nil)

	assert.Equal(t, []string{"info", "warn"}, first.tags)
	assert.Equal(t, []string{"warn"}, second.tags)
	assert.Equal(t, "v", first.messages[0]["k"])
}

func TestMultiLogger_SkipsNilSinks(t *testing.T) {
	_, err := NewMultiloggerAdapter(nil, nil)
	assert.Error(t, err)

	sink := &fakeFluent{}
	a, _ := NewFluentLoggerAdapter(sink, slog.LevelDebug)

	multi, err := NewMultiloggerAdapter(nil, a)
	require.NoError(t, err)

	child := multi.WithFields(port.Fields{"k": "v"})
	multi.Debug("parent", nil)
	child.Error("child", errors.New("boom"), nil)

	require.Len(t, sink.messages, 2)
	assert.NotContains(t, sink.messages[0], "k")
	assert.Equal(t, "v", sink.messages[1]["k"])
}
