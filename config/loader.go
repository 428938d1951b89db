package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefix of environment variables read into the config
const EnvPrefix = "OBJSCHEMA_"

var configFileNames = []string{"objschema.yaml", "objschema.yml"}

// flagKeys maps flag names to config keys when they differ
var flagKeys = map[string]string{
	"log-level":      "log.level",
	"log-backend":    "log.backend",
	"slow-threshold": "log.slow_threshold",
	"table-prefix":   "naming.table_prefix",
	"pluralize":      "naming.pluralize",
	"snake-case":     "naming.snake_case_columns",
}

// findConfigFile finds the config file to use.
// Priority: explicit path > objschema.yaml > objschema.yml in dir
func findConfigFile(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// envKey transforms OBJSCHEMA_LOG_SLOW_THRESHOLD into log.slow_threshold
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"log", "naming"} {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"log.level":                 DefaultLogLevel,
		"log.backend":               DefaultLogBackend,
		"log.slow_threshold":        DefaultSlowThreshold.String(),
		"naming.table_prefix":       "class_",
		"naming.pluralize":          false,
		"naming.snake_case_columns": false,
		"output":                    DefaultOutput,
		"timezone":                  "",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. config file
	cwd, _ := os.Getwd()
	fileUsed := findConfigFile(cfgFile, cwd)
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", fileUsed, err)
		}
	}

	// 3. environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = fileUsed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
