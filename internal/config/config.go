// Package config resolves the mazegraph CLI configuration from defaults, an
// optional YAML file and MAZEGRAPH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvWorkers     = "MAZEGRAPH_WORKERS"
	EnvLogLevel    = "MAZEGRAPH_LOG_LEVEL"
	EnvFormat      = "MAZEGRAPH_FORMAT"
	EnvMetricsFile = "MAZEGRAPH_METRICS_FILE"
	EnvTieBreak    = "MAZEGRAPH_TIE_BREAK"
)

// Config holds all CLI configuration values.
type Config struct {
	Workers     int    `yaml:"workers"`
	LogLevel    string `yaml:"log_level"`
	Format      string `yaml:"format"`
	MetricsFile string `yaml:"metrics_file"`
	TieBreak    string `yaml:"tie_break"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Workers:  1,
		LogLevel: "info",
		Format:   "text",
		TieBreak: "first-scanned",
	}
}

// DefaultPath returns $HOME/.mazegraph/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mazegraph", "config.yaml"), nil
}

// Load resolves the configuration: defaults, then the YAML file at path,
// then environment variables. An empty path means DefaultPath, which may be
// missing; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// mergeFile overlays the keys present in the YAML file on c.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	c.LogLevel = envOrDefault(EnvLogLevel, c.LogLevel)
	c.Format = envOrDefault(EnvFormat, c.Format)
	c.MetricsFile = envOrDefault(EnvMetricsFile, c.MetricsFile)
	c.TieBreak = envOrDefault(EnvTieBreak, c.TieBreak)
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
