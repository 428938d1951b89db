package logger

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestZerolog() (zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return zerolog.New(buf), buf
}

func TestNewZerologLogger(t *testing.T) {
	zl, _ := setupTestZerolog()

	logger := NewZerologLogger(zl, Config{
		LogLevel:      Info,
		SlowThreshold: 100 * time.Millisecond,
	})

	require.NotNil(t, logger)
	assert.Equal(t, Info, logger.(*ZerologLogger).LogLevel)
	assert.Equal(t, 100*time.Millisecond, logger.(*ZerologLogger).SlowThreshold)
}

func TestZerologLogger_LogMode(t *testing.T) {
	zl, _ := setupTestZerolog()
	logger := NewZerologLogger(zl, Config{LogLevel: Error})

	infoLogger := logger.LogMode(Info)
	assert.Equal(t, Info, infoLogger.(*ZerologLogger).LogLevel)
	assert.Equal(t, Error, logger.(*ZerologLogger).LogLevel)
}

func TestZerologLogger_LogLevels(t *testing.T) {
	ctx := context.Background()
	zl, buf := setupTestZerolog()
	logger := NewZerologLogger(zl, Config{LogLevel: Info})

	logger.Info(ctx, "Test info message", "key", "value")
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), "Test info message")

	buf.Reset()
	logger.Warn(ctx, "Test warn message")
	assert.Contains(t, buf.String(), `"level":"warn"`)

	buf.Reset()
	logger.Error(ctx, "Test error message")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestZerologLogger_Trace(t *testing.T) {
	ctx := context.Background()
	zl, buf := setupTestZerolog()
	logger := NewZerologLogger(zl, Config{
		LogLevel:      Info,
		SlowThreshold: 100 * time.Millisecond,
	})

	t.Run("Normal trace", func(t *testing.T) {
		buf.Reset()
		logger.Trace(ctx, time.Now(), func() (string, int) {
			return "Person", 3
		}, nil)

		output := buf.String()
		assert.Contains(t, output, `"object_type":"Person"`)
		assert.Contains(t, output, `"properties":3`)
		assert.Contains(t, output, "object schema parsed")
	})

	t.Run("Slow parse", func(t *testing.T) {
		buf.Reset()
		logger.Trace(ctx, time.Now().Add(-150*time.Millisecond), func() (string, int) {
			return "Dog", 2
		}, nil)

		output := buf.String()
		assert.Contains(t, output, "slow_threshold")
		assert.Contains(t, output, `"level":"warn"`)
	})

	t.Run("Error trace", func(t *testing.T) {
		buf.Reset()
		logger.Trace(ctx, time.Now(), func() (string, int) {
			return "Cat", 0
		}, assert.AnError)

		output := buf.String()
		assert.Contains(t, output, `"level":"error"`)
		assert.Contains(t, output, "object schema rejected")
	})

	t.Run("Warn level skips successful parses", func(t *testing.T) {
		buf.Reset()
		called := false
		logger.LogMode(Warn).Trace(ctx, time.Now(), func() (string, int) {
			called = true
			return "Person", 3
		}, nil)

		assert.Empty(t, buf.String())
		assert.False(t, called)
	})
}

func TestZerologLevel(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, ZerologLevel(Silent))
	assert.Equal(t, zerolog.ErrorLevel, ZerologLevel(Error))
	assert.Equal(t, zerolog.WarnLevel, ZerologLevel(Warn))
	assert.Equal(t, zerolog.InfoLevel, ZerologLevel(Info))
}

func TestNewZerologConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologConsoleLogger(&buf, Config{LogLevel: Info})

	logger.Info(context.Background(), "console line")
	assert.Contains(t, buf.String(), "console line")
}
