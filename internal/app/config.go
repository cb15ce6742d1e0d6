package app

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"lifegrid/pkg/core"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the build-time settings of the simulator.
type Config struct {
	Title        string `yaml:"title"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	CellSize     int    `yaml:"cell_size"`

	TPS          int           `yaml:"tps"`
	TickInterval time.Duration `yaml:"tick_interval"`
	StartPaused  bool          `yaml:"start_paused"`

	Seed          int64   `yaml:"seed"`
	SeedScale     float64 `yaml:"seed_scale"`
	SeedThreshold float64 `yaml:"seed_threshold"`

	LogLevel string `yaml:"log_level"`

	TUICellWidth int    `yaml:"tui_cell_width"`
	TUILogFile   string `yaml:"tui_log_file"`
}

// fallbackConfig mirrors defaults.yaml.
func fallbackConfig() Config {
	return Config{
		Title:         "Game of life",
		WindowWidth:   1920,
		WindowHeight:  1080,
		CellSize:      25,
		TPS:           60,
		TickInterval:  350 * time.Millisecond,
		StartPaused:   true,
		Seed:          1,
		SeedScale:     0.18,
		SeedThreshold: 0.12,
		LogLevel:      "info",
		TUICellWidth:  2,
	}
}

// DefaultConfig returns the embedded configuration. It falls back to the
// hard-coded defaults if the embedded document is unusable.
func DefaultConfig() Config {
	cfg, err := ParseConfig(defaultsYAML)
	if err != nil {
		return fallbackConfig()
	}
	return cfg
}

// ParseConfig decodes a YAML document on top of the hard-coded defaults and
// validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := fallbackConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first setting that would make the grid unusable.
func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight)
	case c.CellSize <= 0:
		return fmt.Errorf("cell_size %d must be positive", c.CellSize)
	case c.CellSize > c.WindowWidth || c.CellSize > c.WindowHeight:
		return fmt.Errorf("cell_size %d does not fit a %dx%d window", c.CellSize, c.WindowWidth, c.WindowHeight)
	case c.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", c.TPS)
	case c.TickInterval <= 0:
		return errors.New("tick_interval must be positive")
	case c.TUICellWidth <= 0:
		return fmt.Errorf("tui_cell_width %d must be positive", c.TUICellWidth)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// GridSize returns the number of whole cells that fit the window.
func (c Config) GridSize() core.Size {
	return core.Size{W: c.WindowWidth / c.CellSize, H: c.WindowHeight / c.CellSize}
}

// Level returns the configured log level, defaulting to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
