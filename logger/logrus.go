package logger

import (
	"context"
	"fmt"
	"time"

	"github.com/objschema/objschema/utils"
	"github.com/sirupsen/logrus"
)

// LogrusLogger implements Interface using logrus
type LogrusLogger struct {
	Logger        *logrus.Logger
	LogLevel      LogLevel
	SlowThreshold time.Duration
}

// NewLogrusLogger creates a new logger using logrus
func NewLogrusLogger(logger *logrus.Logger, config Config) Interface {
	return &LogrusLogger{
		Logger:        logger,
		LogLevel:      config.LogLevel,
		SlowThreshold: config.SlowThreshold,
	}
}

// LogMode sets the log level
func (l *LogrusLogger) LogMode(level LogLevel) Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

// Info logs info messages
func (l *LogrusLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.entry(ctx).WithField("data", data).Info(msg)
	}
}

// Warn logs warning messages
func (l *LogrusLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.entry(ctx).WithField("data", data).Warn(msg)
	}
}

// Error logs error messages
func (l *LogrusLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.entry(ctx).WithField("data", data).Error(msg)
	}
}

// Trace logs one parsed object schema
func (l *LogrusLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int), err error) {
	if l.LogLevel <= Silent {
		return
	}

	elapsed := time.Since(begin)
	objectType, properties := fc()

	fields := logrus.Fields{
		"file":        utils.FileWithLineNum(),
		"duration":    fmt.Sprintf("%.3fms", float64(elapsed.Nanoseconds())/1e6),
		"object_type": objectType,
		"properties":  properties,
	}

	entry := l.Logger.WithContext(ctx).WithFields(fields)

	switch {
	case err != nil && l.LogLevel >= Error:
		entry.WithError(err).Error("object schema rejected")

	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold && l.LogLevel >= Warn:
		entry.WithField("slow_threshold", l.SlowThreshold.String()).Warn("SLOW object schema parse")

	case l.LogLevel >= Info:
		entry.Info("object schema parsed")
	}
}

func (l *LogrusLogger) entry(ctx context.Context) *logrus.Entry {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.Logger.WithContext(ctx).WithField("file", utils.FileWithLineNum())
}
