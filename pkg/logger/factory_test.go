package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numvalidator/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("respects level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("level by name", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("debug"))
		log.Debug("visible")
		assert.Equal(t, "DEBUG", decode(t, buf)["level"])
	})

	t.Run("unknown level name is ignored", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("loud"))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development uses text and debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("dev", "numcheck"), logger.WithOutput(buf))
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=numcheck")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production uses json and info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "numcheck"), logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "numcheck", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})
}

func TestWithContextValue(t *testing.T) {
	type runKey struct{}

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextValue("run_id", runKey{}))

	log.InfoContext(context.Background(), "no run")
	assert.NotContains(t, decode(t, buf), "run_id")

	buf.Reset()
	ctx := context.WithValue(context.Background(), runKey{}, "abc")
	log.With(slog.String("k", "v")).WithGroup("g").InfoContext(ctx, "with run")
	assert.Contains(t, buf.String(), `"run_id":"abc"`)
}

func TestAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	log.Info("checked",
		logger.Component("numcheck"),
		logger.Input("1.5"),
		logger.Rules(8, 4, true),
		logger.RunID("r1"),
		logger.Error(errors.New("boom")),
		logger.Error(nil),
		logger.RunID(""),
	)

	entry := decode(t, buf)
	assert.Equal(t, "numcheck", entry["component"])
	assert.Equal(t, "1.5", entry["input"])
	assert.Equal(t, "r1", entry["run_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, map[string]any{"precision": 8.0, "scale": 4.0, "only_positive": true}, entry["rules"])
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
