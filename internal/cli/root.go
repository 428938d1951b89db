// Package cli provides the command-line interface for objschema.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/objschema/objschema"
	"github.com/objschema/objschema/config"
	"github.com/objschema/objschema/internal/cli/commands"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "objschema",
		Short: "objschema - object schema parser and validator",
		Long: `objschema parses object type definitions from YAML, JSON or TOML documents,
validates them, and reports the resulting object schemas.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			color := ShouldUseColor()
			db, err := objschema.Open(nil, cfg.Options(cmd.ErrOrStderr(), color)...)
			if err != nil {
				return err
			}

			cmd.SetContext(commands.WithEnv(cmd.Context(), &commands.Env{Cfg: cfg, DB: db, Color: color}))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./objschema.yaml)")
	flags.String("log-level", "", "Log level (silent|error|warn|info)")
	flags.String("log-backend", "", "Logging backend (text|logrus|zap|zerolog|slog)")
	flags.Duration("slow-threshold", 0, "Object schemas parsing slower than this are logged")
	flags.String("table-prefix", "", "Prefix of object type table names")
	flags.Bool("pluralize", false, "Pluralize table names")
	flags.Bool("snake-case", false, "Snake case column names")
	flags.StringP("output", "o", "", "Output format (auto|table|json)")
	flags.String("timezone", "", "Time zone date defaults without a zone are read in")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-backend", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.LogBackends, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewDictCommand())
	rootCmd.AddCommand(commands.NewGenCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
