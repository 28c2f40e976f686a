// Package config loads runtime settings from defaults, an optional YAML file
// and TEMPO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends
const (
	BackendCSV  = "csv"
	BackendBolt = "bolt"
)

// DefaultConfigFile is read from the working directory when no file is given.
const DefaultConfigFile = "tempo.yaml"

// Config aggregates all runtime settings.
type Config struct {
	DataFile    string `mapstructure:"data_file"`
	Backend     string `mapstructure:"backend"`
	BoltFile    string `mapstructure:"bolt_file"`
	LogFile     string `mapstructure:"log_file"`
	LogLevel    string `mapstructure:"log_level"`
	LogEncoding string `mapstructure:"log_encoding"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_file", "tasks.csv")
	v.SetDefault("backend", BackendCSV)
	v.SetDefault("bolt_file", ".tempo/tasks.db")
	v.SetDefault("log_file", ".tempo/tempo.log")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_encoding", "json")
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("tempo")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (or DefaultConfigFile if path is empty and the file exists)
// into v and returns the resulting Config. A missing explicit path is an error;
// a missing default file is not.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that settings are usable.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendCSV:
		if c.DataFile == "" {
			return errors.New("data_file must not be empty")
		}
	case BackendBolt:
		if c.BoltFile == "" {
			return errors.New("bolt_file must not be empty")
		}
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendCSV, BackendBolt)
	}
	return nil
}
