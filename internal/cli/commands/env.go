// Package commands holds the objschema subcommands.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/objschema/objschema"
	"github.com/objschema/objschema/config"
	"github.com/objschema/objschema/logger"
)

// Env what every command runs against, resolved once by the root command.
type Env struct {
	Cfg   *config.Config
	DB    *objschema.DB
	Color bool
}

type envKey struct{}

// WithEnv stores env in ctx
func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// EnvFrom returns the env stored in ctx, or one built from defaults
func EnvFrom(ctx context.Context) (*Env, error) {
	if env, ok := ctx.Value(envKey{}).(*Env); ok {
		return env, nil
	}

	cfg := &config.Config{Output: config.DefaultOutput}
	db, err := objschema.Open(nil, objschema.WithLogger(logger.Discard))
	if err != nil {
		return nil, err
	}
	return &Env{Cfg: cfg, DB: db}, nil
}

// setup resolves the env and binds its db to the command context
func setup(cmd *cobra.Command) (*Env, *objschema.DB, error) {
	env, err := EnvFrom(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return env, env.DB.WithContext(cmd.Context()), nil
}

func printf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
