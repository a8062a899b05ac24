package config

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazegraph/border"
)

// MaxWorkers caps the worker count accepted from configuration.
const MaxWorkers = 256

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "yaml"}

// Validate checks every field. The CLI calls it again after applying flags.
func (c *Config) Validate() error {
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 0 and %d, got %d", MaxWorkers, c.Workers)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	if !validFormat(c.Format) {
		return fmt.Errorf("format must be one of %v, got %q", Formats, c.Format)
	}

	if _, err := border.ParseTieBreak(c.TieBreak); err != nil {
		return fmt.Errorf("tie_break: %w", err)
	}

	return nil
}

// Level returns the parsed log level. Call it on a validated Config.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// TieBreakPolicy returns the parsed tie-break policy. Call it on a validated Config.
func (c *Config) TieBreakPolicy() border.TieBreak {
	tb, err := border.ParseTieBreak(c.TieBreak)
	if err != nil {
		return border.TieFirstScanned
	}
	return tb
}

func validFormat(f string) bool {
	for _, v := range Formats {
		if f == v {
			return true
		}
	}
	return false
}
