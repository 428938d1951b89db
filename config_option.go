package objschema

import (
	"time"

	"github.com/objschema/objschema/dynamic"
	"github.com/objschema/objschema/logger"
	"github.com/objschema/objschema/schema"
)

// ConfigOption use functional option for objschema Config.
type ConfigOption func(c *Config)

// WithNamingStrategy set schema namer.
func WithNamingStrategy(namer schema.Namer) ConfigOption {
	return func(c *Config) {
		c.NamingStrategy = namer
	}
}

// WithLogger set logger.
func WithLogger(logger logger.Interface) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithProtector set the protector captured values are kept alive with.
func WithProtector(protector dynamic.Protector) ConfigOption {
	return func(c *Config) {
		c.Protector = protector
	}
}

// WithLocation set the location date defaults are read in.
func WithLocation(loc *time.Location) ConfigOption {
	return func(c *Config) {
		c.Location = loc
	}
}

// WithTimeZone set the location by IANA name, resolved by Open.
func WithTimeZone(name string) ConfigOption {
	return func(c *Config) {
		c.timeZone = name
	}
}
