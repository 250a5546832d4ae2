package logging

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLoggerFromCore(core), logs
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Field{Key: "s", Value: "v"}, String("s", "v"))
	assert.Equal(t, Field{Key: "i", Value: 42}, Int("i", 42))
	assert.Equal(t, Field{Key: "f", Value: 1.5}, Float64("f", 1.5))
	assert.Equal(t, Field{Key: "b", Value: true}, Bool("b", true))
	assert.Equal(t, Field{Key: "d", Value: time.Second}, Duration("d", time.Second))
	assert.Equal(t, Field{Key: "error", Value: "boom"}, Err(fmt.Errorf("boom")))
	assert.Equal(t, Field{Key: "error", Value: "<nil>"}, Err(nil))
}

func TestZapLoggerLevelsAndFields(t *testing.T) {
	t.Parallel()
	log, logs := newObserved(zapcore.DebugLevel)

	log.Debug("d")
	log.Info("computation finished", String("run_id", "abc"), Int("rows", 3))
	log.Warn("w")
	log.Error("e")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "computation finished", entries[1].Message)
	ctx := entries[1].ContextMap()
	assert.Equal(t, "abc", ctx["run_id"])
	assert.EqualValues(t, 3, ctx["rows"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestZapLoggerRespectsLevel(t *testing.T) {
	t.Parallel()
	log, logs := newObserved(zapcore.WarnLevel)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")

	require.Len(t, logs.All(), 1)
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestWithAddsPersistentFields(t *testing.T) {
	t.Parallel()
	log, logs := newObserved(zapcore.InfoLevel)

	child := log.With(String("component", "engine"))
	child.Info("first")
	log.Info("second")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "engine", entries[0].ContextMap()["component"])
	// The parent is not mutated.
	assert.NotContains(t, entries[1].ContextMap(), "component")
}

func TestNamed(t *testing.T) {
	t.Parallel()
	log, logs := newObserved(zapcore.InfoLevel)
	log.Named("cast").Named("compute").Info("msg")
	require.Len(t, logs.All(), 1)
	assert.Equal(t, "cast.compute", logs.All()[0].LoggerName)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()
	log, err := NewLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, log)

	_, err = NewLogger(LogConfig{OutputPaths: []string{"unknown-scheme://x"}})
	assert.Error(t, err)
}

func TestDefaultLogger(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	log, _ := newObserved(zapcore.InfoLevel)
	SetDefault(log)
	assert.Equal(t, log, Default())

	// A nil argument is ignored rather than clearing the default.
	SetDefault(nil)
	assert.Equal(t, log, Default())
}
