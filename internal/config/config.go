// Package config loads solver settings from a YAML (or JSON) file.
//
// Example lvmaze.yaml:
//
//	costs:
//	  move: 1
//	  turn: 1000
//	start_direction: right
//	log_level: info
//	render: false
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/cost"
	"github.com/katalvlaran/lvmaze/internal/logging"
	"github.com/katalvlaran/lvmaze/maze"
)

// Config holds every user-tunable setting.
type Config struct {
	Costs          cost.Model `yaml:"costs" json:"costs"`
	StartDirection string     `yaml:"start_direction" json:"start_direction"`
	LogLevel       string     `yaml:"log_level" json:"log_level"`
	Render         bool       `yaml:"render" json:"render"`
}

// Default returns the built-in settings: move 1, turn 1000, facing right,
// info logging, no rendering.
func Default() Config {
	return Config{
		Costs:          cost.Default(),
		StartDirection: maze.Right.String(),
		LogLevel:       "info",
	}
}

// Load reads a configuration file (YAML or JSON by extension) on top of
// Default. A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.Costs.Validate(); err != nil {
		return err
	}
	if _, err := c.Direction(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Direction parses StartDirection.
func (c Config) Direction() (maze.Direction, error) {
	return maze.ParseDirection(c.StartDirection)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}
