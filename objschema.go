package objschema

import (
	"context"
	"time"

	"github.com/objschema/objschema/dynamic"
	"github.com/objschema/objschema/logger"
	"github.com/objschema/objschema/schema"
)

// Config objschema config
type Config struct {
	// NamingStrategy maps object types and properties to storage names
	NamingStrategy schema.Namer
	// Logger
	Logger logger.Interface
	// Protector extends the lifetime of captured defaults and constructors
	Protector dynamic.Protector
	// Location date defaults without a zone are read in, defaults to time.Local
	Location *time.Location

	// timeZone is resolved into Location by Open
	timeZone string
}

// DB entry point holding the parse configuration
type DB struct {
	*Config
	Context context.Context
}

// Session session config when create session with Session() method
type Session struct {
	Context   context.Context
	Logger    logger.Interface
	Protector dynamic.Protector
}

// Open initialize a DB from config, options are applied on top of it
func Open(config *Config, opts ...ConfigOption) (db *DB, err error) {
	if config == nil {
		config = &Config{}
	}

	for _, opt := range opts {
		if opt != nil {
			opt(config)
		}
	}

	if config.NamingStrategy == nil {
		config.NamingStrategy = schema.DefaultNamingStrategy
	}

	if config.Logger == nil {
		config.Logger = logger.Default
	}

	if config.Protector == nil {
		config.Protector = dynamic.NopProtector
	}

	if config.timeZone != "" {
		if config.Location, err = time.LoadLocation(config.timeZone); err != nil {
			return nil, err
		}
	}

	if config.Location == nil {
		config.Location = time.Local
	}

	return &DB{Config: config, Context: context.Background()}, nil
}

// Session create new db session
func (db *DB) Session(config *Session) *DB {
	var (
		txConfig = *db.Config
		tx       = &DB{Config: &txConfig, Context: db.Context}
	)

	if config.Context != nil {
		tx.Context = config.Context
	}

	if config.Logger != nil {
		tx.Config.Logger = config.Logger
	}

	if config.Protector != nil {
		tx.Config.Protector = config.Protector
	}

	return tx
}

// WithContext change current instance db's context to ctx
func (db *DB) WithContext(ctx context.Context) *DB {
	return db.Session(&Session{Context: ctx})
}

// Debug start debug mode, every object schema is traced
func (db *DB) Debug() *DB {
	return db.Session(&Session{Logger: db.Logger.LogMode(logger.Info)})
}

func (db *DB) parser() *schema.Parser {
	return &schema.Parser{
		Protector: db.Protector,
		Logger:    db.Logger,
		Context:   db.Context,
	}
}
