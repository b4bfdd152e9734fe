/*
PURPOSE:
  Defines the configuration structure and loading logic for Solver Radar.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the compared solver configurations and the time limit.
  - Allow configuration of chart colours and scale.

  Implementation-discovered:
  - Needs to support YAML and TOML parsing (chosen by file extension).
  - Needs to support Environment variables overrides (RADAR_...).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine, internal/server, internal/chart
  - Dependencies: gopkg.in/yaml.v3, github.com/BurntSushi/toml

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default files fall back to DefaultConfig().
  - Validation failures wrap ErrInvalid.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml and toml.
  - Defaults: solvers DEFAULT and LCG, 1200s time limit, radial max 60.

USAGE:
  cfg, err := config.Load("radar.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct, DefaultConfig() and applyEnv().

RELATED FILES:
  - internal/cli/root.go
  - internal/config/env.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/daryltucker/solver-radar/internal/model"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// SolverColor is the colour scheme of one solver configuration's series.
// Values are CSS colours as accepted by Chart.js.
type SolverColor struct {
	Background string `yaml:"background" toml:"background"`
	Border     string `yaml:"border" toml:"border"`
}

// Config represents the full configuration for Solver Radar.
type Config struct {
	// Solvers is the ordered set of solver configuration names to compare.
	Solvers []string `yaml:"solvers" toml:"solvers"`
	// TimeLimit backfills absent timing fields, in seconds.
	TimeLimit float64 `yaml:"time_limit" toml:"time_limit"`

	OutputDir string `yaml:"output_dir" toml:"output_dir"`
	// Formats selects the files written by `render`: json, csv, msgpack, html, svg, png.
	Formats []string `yaml:"formats" toml:"formats"`

	Colors       map[string]SolverColor `yaml:"colors" toml:"colors"`
	SuggestedMax int                    `yaml:"suggested_max" toml:"suggested_max"`
	ChartWidth   int                    `yaml:"chart_width" toml:"chart_width"`
	ChartHeight  int                    `yaml:"chart_height" toml:"chart_height"`

	ListenAddr string `yaml:"listen_addr" toml:"listen_addr"`
	LogLevel   string `yaml:"log_level" toml:"log_level"`
	LogFormat  string `yaml:"log_format" toml:"log_format"`
}

// Supported output formats.
const (
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatMsgpack = "msgpack"
	FormatHTML    = "html"
	FormatSVG     = "svg"
	FormatPNG     = "png"
)

var knownFormats = map[string]bool{
	FormatJSON: true, FormatCSV: true, FormatMsgpack: true,
	FormatHTML: true, FormatSVG: true, FormatPNG: true,
}

// DefaultFiles are searched, in order, when no config path is given.
var DefaultFiles = []string{"radar.yaml", "radar.yml", "radar.toml"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Solvers:   append([]string(nil), model.DefaultSolvers...),
		TimeLimit: model.DefaultTimeLimit,
		OutputDir: ".",
		Formats:   []string{FormatJSON, FormatHTML},
		Colors: map[string]SolverColor{
			"DEFAULT": {Background: "rgba(54, 162, 235, 0.2)", Border: "rgb(54, 162, 235)"},
			"LCG":     {Background: "rgba(255, 99, 132, 0.2)", Border: "rgb(255, 99, 132)"},
		},
		SuggestedMax: 60,
		ChartWidth:   800,
		ChartHeight:  480,
		ListenAddr:   "127.0.0.1:8080",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
// Environment overrides are applied last, then the result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			applyEnv(cfg, os.LookupEnv)
			return cfg, cfg.Validate()
		}
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnv(cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Validate checks the values Load and flag overrides produced.
func (c *Config) Validate() error {
	if len(c.Solvers) == 0 {
		return fmt.Errorf("%w: at least one solver configuration is required", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Solvers))
	for i, name := range c.Solvers {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: solver at index %d has an empty name", ErrInvalid, i)
		}
		if seen[name] {
			return fmt.Errorf("%w: solver %q listed twice", ErrInvalid, name)
		}
		seen[name] = true
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("%w: time_limit must be > 0, got %v", ErrInvalid, c.TimeLimit)
	}
	for _, f := range c.Formats {
		if !knownFormats[strings.ToLower(f)] {
			return fmt.Errorf("%w: unknown output format %q", ErrInvalid, f)
		}
	}
	if c.SuggestedMax < 0 {
		return fmt.Errorf("%w: suggested_max must be >= 0", ErrInvalid)
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("%w: chart_width and chart_height must be > 0", ErrInvalid)
	}
	return nil
}

// HasFormat reports whether format was requested (case-insensitive).
func (c *Config) HasFormat(format string) bool {
	for _, f := range c.Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// Marshal encodes the configuration as YAML, or TOML when asTOML is set.
func (c *Config) Marshal(asTOML bool) ([]byte, error) {
	if asTOML {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return yaml.Marshal(c)
}

// Save writes the configuration to path, picking the format from its extension.
func (c *Config) Save(path string) error {
	data, err := c.Marshal(isTOML(path))
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
