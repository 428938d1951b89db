// Package config loads objschema tool configuration. Sources, lowest to
// highest priority: defaults, objschema.yaml, OBJSCHEMA_ environment
// variables, command line flags.
package config

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/objschema/objschema"
	"github.com/objschema/objschema/logger"
	"github.com/objschema/objschema/schema"
	"github.com/objschema/objschema/utils"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultLogLevel      = "warn"
	DefaultLogBackend    = "text"
	DefaultSlowThreshold = 50 * time.Millisecond
	DefaultOutput        = "auto"
)

var (
	LogBackends   = []string{"text", "logrus", "zap", "zerolog", "slog"}
	OutputFormats = []string{"auto", "table", "json"}
)

// Config holds all tool configuration options.
type Config struct {
	Log      LogConfig    `koanf:"log"`
	Naming   NamingConfig `koanf:"naming"`
	Output   string       `koanf:"output"`
	TimeZone string       `koanf:"timezone"`

	// File config file that was loaded, empty when none
	File string `koanf:"-"`
}

type LogConfig struct {
	Level         string        `koanf:"level"`
	Backend       string        `koanf:"backend"`
	SlowThreshold time.Duration `koanf:"slow_threshold"`
}

type NamingConfig struct {
	TablePrefix      string `koanf:"table_prefix"`
	Pluralize        bool   `koanf:"pluralize"`
	SnakeCaseColumns bool   `koanf:"snake_case_columns"`
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	if !utils.Contains(LogBackends, c.Log.Backend) {
		return fmt.Errorf("invalid log.backend %q, expected one of %v", c.Log.Backend, LogBackends)
	}
	if !utils.Contains(OutputFormats, c.Output) {
		return fmt.Errorf("invalid output %q, expected one of %v", c.Output, OutputFormats)
	}
	if c.TimeZone != "" {
		if _, err := time.LoadLocation(c.TimeZone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.TimeZone, err)
		}
	}
	return nil
}

// NamingStrategy naming strategy described by the naming section
func (c *Config) NamingStrategy() schema.NamingStrategy {
	return schema.NamingStrategy{
		TablePrefix:      c.Naming.TablePrefix,
		Pluralize:        c.Naming.Pluralize,
		SnakeCaseColumns: c.Naming.SnakeCaseColumns,
	}
}

// NewLogger builds the configured logging backend writing to w
func (c *Config) NewLogger(w io.Writer, colorful bool) logger.Interface {
	if w == nil {
		w = os.Stderr
	}

	lc := logger.Config{
		LogLevel:      logger.ParseLevel(c.Log.Level),
		SlowThreshold: c.Log.SlowThreshold,
		Colorful:      colorful,
	}

	switch c.Log.Backend {
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: colorful, DisableColors: !colorful})
		return logger.NewLogrusLogger(l, lc)
	case "zap":
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(w),
			logger.ZapLevel(lc.LogLevel),
		)
		return logger.NewZapLogger(zap.New(core), lc)
	case "zerolog":
		if colorful {
			return logger.NewZerologConsoleLogger(w, lc)
		}
		return logger.NewZerologLogger(zerolog.New(w).Level(logger.ZerologLevel(lc.LogLevel)).With().Timestamp().Logger(), lc)
	case "slog":
		return logger.NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: true})), lc)
	default:
		return logger.New(log.New(w, "\r\n", log.LstdFlags), lc)
	}
}

// Options root config options described by this config
func (c *Config) Options(w io.Writer, colorful bool) []objschema.ConfigOption {
	opts := []objschema.ConfigOption{
		objschema.WithLogger(c.NewLogger(w, colorful)),
		objschema.WithNamingStrategy(c.NamingStrategy()),
	}
	if c.TimeZone != "" {
		opts = append(opts, objschema.WithTimeZone(c.TimeZone))
	}
	return opts
}
