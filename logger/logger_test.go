package logger

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer, level LogLevel) Interface {
	return New(log.New(buf, "", 0), Config{
		LogLevel:      level,
		SlowThreshold: 100 * time.Millisecond,
	})
}

func TestLogger_Trace(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := newTestLogger(&buf, Info)

	t.Run("Normal trace", func(t *testing.T) {
		buf.Reset()
		logger.Trace(ctx, time.Now(), func() (string, int) {
			return "Person", 3
		}, nil)

		output := buf.String()
		assert.Contains(t, output, "[properties:3] Person")
		assert.Contains(t, output, "logger_test.go")
	})

	t.Run("Slow parse", func(t *testing.T) {
		buf.Reset()
		logger.Trace(ctx, time.Now().Add(-150*time.Millisecond), func() (string, int) {
			return "Dog", 2
		}, nil)

		assert.Contains(t, buf.String(), "SLOW PARSE >= 100ms")
	})

	t.Run("Error trace", func(t *testing.T) {
		buf.Reset()
		logger.Trace(ctx, time.Now(), func() (string, int) {
			return "", 0
		}, errors.New("Missing 'name' property, expected string"))

		output := buf.String()
		assert.Contains(t, output, "Missing 'name' property")
		assert.Contains(t, output, "<unnamed>")
	})
}

func TestLogger_LevelFiltering(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := newTestLogger(&buf, Warn)

	called := false
	logger.Trace(ctx, time.Now(), func() (string, int) {
		called = true
		return "Person", 1
	}, nil)
	assert.Empty(t, buf.String())
	assert.False(t, called)

	logger.Info(ctx, "hidden %s", "info")
	assert.Empty(t, buf.String())

	logger.Warn(ctx, "shown %s", "warning")
	assert.Contains(t, buf.String(), "[warn] shown warning")

	buf.Reset()
	logger.LogMode(Silent).Error(ctx, "never")
	assert.Empty(t, buf.String())
}

func TestLogger_Colorful(t *testing.T) {
	var buf bytes.Buffer
	logger := New(log.New(&buf, "", 0), Config{LogLevel: Info, Colorful: true})

	logger.Info(context.Background(), "colored")
	assert.Contains(t, buf.String(), Green)
	assert.Contains(t, buf.String(), "colored")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Silent, ParseLevel("silent"))
	assert.Equal(t, Error, ParseLevel("error"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel("info"))
	assert.Equal(t, Info, ParseLevel("debug"))
	assert.Equal(t, Warn, ParseLevel("verbose"))
}
