package logger

import (
	"context"
	"fmt"
	"time"

	"github.com/objschema/objschema/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements Interface using zap
type ZapLogger struct {
	Logger        *zap.Logger
	LogLevel      LogLevel
	SlowThreshold time.Duration
}

// NewZapLogger creates a new logger using zap
func NewZapLogger(logger *zap.Logger, config Config) Interface {
	return &ZapLogger{
		Logger:        logger,
		LogLevel:      config.LogLevel,
		SlowThreshold: config.SlowThreshold,
	}
}

// NewZapLoggerWithConfig creates a new zap logger with custom configuration
func NewZapLoggerWithConfig(config Config, zapConfig ...zap.Config) Interface {
	var zapCfg zap.Config
	if len(zapConfig) > 0 {
		zapCfg = zapConfig[0]
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(ZapLevel(config.LogLevel))
	}

	logger, err := zapCfg.Build()
	if err != nil {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(ZapLevel(config.LogLevel))
		logger, _ = zapCfg.Build()
	}

	return NewZapLogger(logger, config)
}

// LogMode sets the log level
func (l *ZapLogger) LogMode(level LogLevel) Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

// Info logs info messages
func (l *ZapLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.Logger.Info(msg, zap.String("file", utils.FileWithLineNum()), zap.Any("data", data))
	}
}

// Warn logs warning messages
func (l *ZapLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.Logger.Warn(msg, zap.String("file", utils.FileWithLineNum()), zap.Any("data", data))
	}
}

// Error logs error messages
func (l *ZapLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.Logger.Error(msg, zap.String("file", utils.FileWithLineNum()), zap.Any("data", data))
	}
}

// Trace logs one parsed object schema
func (l *ZapLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int), err error) {
	if l.LogLevel <= Silent {
		return
	}

	elapsed := time.Since(begin)
	objectType, properties := fc()

	fields := []zap.Field{
		zap.String("file", utils.FileWithLineNum()),
		zap.String("duration", fmt.Sprintf("%.3fms", float64(elapsed.Nanoseconds())/1e6)),
		zap.String("object_type", objectType),
		zap.Int("properties", properties),
	}

	switch {
	case err != nil && l.LogLevel >= Error:
		fields = append(fields, zap.Error(err))
		l.Logger.Error("object schema rejected", fields...)

	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold && l.LogLevel >= Warn:
		fields = append(fields, zap.String("slow_threshold", l.SlowThreshold.String()))
		l.Logger.Warn("SLOW object schema parse", fields...)

	case l.LogLevel >= Info:
		l.Logger.Info("object schema parsed", fields...)
	}
}

// WithField adds a field to the logger
func (l *ZapLogger) WithField(key string, value interface{}) *ZapLogger {
	newLogger := *l
	newLogger.Logger = l.Logger.With(zap.Any(key, value))
	return &newLogger
}

// Sugar returns a sugared logger
func (l *ZapLogger) Sugar() *zap.SugaredLogger {
	return l.Logger.Sugar()
}

// ZapLevel converts LogLevel to zapcore.Level
func ZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case Silent:
		return zapcore.DPanicLevel
	case Error:
		return zapcore.ErrorLevel
	case Warn:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
