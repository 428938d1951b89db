package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/objschema/objschema/utils"
	"github.com/rs/zerolog"
)

// ZerologLogger implements Interface using zerolog
type ZerologLogger struct {
	Logger        zerolog.Logger
	LogLevel      LogLevel
	SlowThreshold time.Duration
}

// NewZerologLogger creates a new logger using zerolog
func NewZerologLogger(logger zerolog.Logger, config Config) Interface {
	return &ZerologLogger{
		Logger:        logger,
		LogLevel:      config.LogLevel,
		SlowThreshold: config.SlowThreshold,
	}
}

// NewZerologConsoleLogger creates a zerolog logger writing human readable lines to out
func NewZerologConsoleLogger(out io.Writer, config Config) Interface {
	if out == nil {
		out = os.Stderr
	}
	consoleWriter := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.TimeFormat = time.RFC3339
		w.NoColor = !config.Colorful
	})
	logger := zerolog.New(consoleWriter).
		Level(ZerologLevel(config.LogLevel)).
		With().
		Timestamp().
		Logger()

	return NewZerologLogger(logger, config)
}

// LogMode sets the log level
func (l *ZerologLogger) LogMode(level LogLevel) Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

// Info logs info messages
func (l *ZerologLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.event(ctx, l.Logger.Info(), data).Msg(msg)
	}
}

// Warn logs warning messages
func (l *ZerologLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.event(ctx, l.Logger.Warn(), data).Msg(msg)
	}
}

// Error logs error messages
func (l *ZerologLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.event(ctx, l.Logger.Error(), data).Msg(msg)
	}
}

func (l *ZerologLogger) event(ctx context.Context, event *zerolog.Event, data []interface{}) *zerolog.Event {
	event = event.Str("file", utils.FileWithLineNum()).Interface("data", data)
	if ctx != nil {
		event = event.Ctx(ctx)
	}
	return event
}

// Trace logs one parsed object schema
func (l *ZerologLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int), err error) {
	if l.LogLevel <= Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		event *zerolog.Event
		msg   = "object schema parsed"
	)
	switch {
	case err != nil && l.LogLevel >= Error:
		event = l.Logger.Error().Err(err)
		msg = "object schema rejected"
	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold && l.LogLevel >= Warn:
		event = l.Logger.Warn().Str("slow_threshold", l.SlowThreshold.String())
		msg = "SLOW object schema parse"
	case l.LogLevel >= Info:
		event = l.Logger.Info()
	default:
		return
	}

	objectType, properties := fc()
	event = event.
		Str("file", utils.FileWithLineNum()).
		Str("duration", fmt.Sprintf("%.3fms", float64(elapsed.Nanoseconds())/1e6)).
		Str("object_type", objectType).
		Int("properties", properties)

	if ctx != nil {
		event = event.Ctx(ctx)
	}

	event.Msg(msg)
}

// ZerologLevel converts LogLevel to zerolog.Level
func ZerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case Silent:
		return zerolog.Disabled
	case Error:
		return zerolog.ErrorLevel
	case Warn:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
