// Package config loads CLI configuration from files, environment
// variables, and flags.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ctxKey stores the loaded config in the command context.
type ctxKey struct{}

// WithContext returns a context carrying cfg.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config carried by ctx, or defaults when absent.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return &Config{
		From:      DefaultFrom,
		To:        DefaultTo,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Config holds the resolved CLI configuration.
type Config struct {
	From      string `koanf:"from"`
	To        string `koanf:"to"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	Verbose   bool   `koanf:"verbose"`
}

// Defaults applied before any other source.
const (
	DefaultFrom      = "postgres"
	DefaultTo        = "postgres"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// findConfigFile finds the config file to use.
// Priority: explicit path > sqlbridge.yaml > sqlbridge.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"sqlbridge.yaml", "sqlbridge.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load resolves configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"from":       DefaultFrom,
		"to":         DefaultTo,
		"log_level":  DefaultLogLevel,
		"log_format": DefaultLogFormat,
		"verbose":    false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// SQLBRIDGE_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider("SQLBRIDGE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SQLBRIDGE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		// Only flags that were explicitly set override the other sources;
		// flag names use dashes where config keys use underscores.
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
