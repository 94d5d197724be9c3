// Package config holds the CLI configuration: engine tuning plus an
// optional list of named charts rendered together as a dashboard.
//
// Values are layered, later sources winning:
//
//	defaults < config file (YAML or JSON) < DALGOLITE_* environment < flags
//
// Flags are applied by the caller; this package handles the first three.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DalgoT4D/DalgoLite-sub001/engine"
)

// Environment variables read by ApplyEnv.
const (
	EnvPalette       = "DALGOLITE_PALETTE"
	EnvCategoryLimit = "DALGOLITE_CATEGORY_LIMIT"
	EnvMaxBins       = "DALGOLITE_MAX_BINS"
	EnvQuiet         = "DALGOLITE_QUIET"
)

// Config is the complete CLI configuration.
type Config struct {
	Palette       []string     `yaml:"palette" json:"palette"`
	CategoryLimit int          `yaml:"category_limit" json:"category_limit"`
	MaxBins       int          `yaml:"max_bins" json:"max_bins"`
	Quiet         bool         `yaml:"quiet" json:"quiet"`
	Source        SourceConfig `yaml:"source" json:"source"`
	Dashboard     string       `yaml:"dashboard" json:"dashboard"` // dashboard page title
	Charts        []NamedChart `yaml:"charts" json:"charts"`
}

// SourceConfig names where the table comes from.
type SourceConfig struct {
	File  string `yaml:"file" json:"file"`
	Query string `yaml:"query" json:"query"` // SQL, for SQLite files
}

// NamedChart is a chart spec with a display name.
type NamedChart struct {
	Name             string `yaml:"name" json:"name"`
	engine.ChartSpec `yaml:",inline"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Palette:       append([]string(nil), engine.DefaultPalette...),
		CategoryLimit: engine.DefaultCategoryLimit,
		MaxBins:       engine.DefaultMaxBins,
		Dashboard:     "DalgoLite Dashboard",
	}
}

// Load reads a config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config file format: %s", ext)
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overlays DALGOLITE_* variables. getenv is usually os.Getenv;
// unset or empty variables are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvPalette)); v != "" {
		var palette []string
		for _, color := range strings.Split(v, ",") {
			if color = strings.TrimSpace(color); color != "" {
				palette = append(palette, color)
			}
		}
		if len(palette) > 0 {
			c.Palette = palette
		}
	}

	if v := strings.TrimSpace(getenv(EnvCategoryLimit)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCategoryLimit, err)
		}
		c.CategoryLimit = n
	}

	if v := strings.TrimSpace(getenv(EnvMaxBins)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxBins, err)
		}
		c.MaxBins = n
	}

	if v := strings.TrimSpace(getenv(EnvQuiet)); v != "" {
		quiet, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvQuiet, err)
		}
		c.Quiet = quiet
	}

	return c.Validate()
}

// Validate checks limits and every dashboard chart.
func (c Config) Validate() error {
	if c.CategoryLimit < 0 {
		return fmt.Errorf("category_limit must not be negative (got %d)", c.CategoryLimit)
	}
	if c.MaxBins < 0 {
		return fmt.Errorf("max_bins must not be negative (got %d)", c.MaxBins)
	}
	for i, chart := range c.Charts {
		if err := engine.ValidateChartSpec(engine.NormalizeChartSpec(chart.ChartSpec)); err != nil {
			return fmt.Errorf("chart %d (%s): %w", i+1, chart.DisplayName(i), err)
		}
	}
	return nil
}

// DisplayName returns the chart name, falling back to its title or position.
func (n NamedChart) DisplayName(i int) string {
	switch {
	case n.Name != "":
		return n.Name
	case n.Title != "":
		return n.Title
	default:
		return fmt.Sprintf("chart-%d", i+1)
	}
}

// EngineOptions converts the config into engine options. logger receives
// the engine's run lines unless Quiet is set.
func (c Config) EngineOptions(logger *log.Logger) []engine.Option {
	if c.Quiet || logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return []engine.Option{
		engine.WithPalette(c.Palette),
		engine.WithCategoryLimit(c.CategoryLimit),
		engine.WithMaxBins(c.MaxBins),
		engine.WithLogger(logger),
	}
}
