package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/matchboard/internal/summary"
)

// Config holds application configuration.
type Config struct {
	Summary SummaryConfig
	UI      UIConfig
}

// SummaryConfig is the renderer surface: every knob of the summary table
// layout. All values are overridable via config file or env.
type SummaryConfig struct {
	MaxLines       int    `mapstructure:"max_lines"`
	Padding        int    `mapstructure:"padding"`
	MinColumnWidth int    `mapstructure:"min_column_width"`
	MaxColumnWidth int    `mapstructure:"max_column_width"`
	HomeHeader     string `mapstructure:"home_header"`
	AwayHeader     string `mapstructure:"away_header"`
	Ellipsis       string `mapstructure:"ellipsis"`
}

// UIConfig holds presentation settings for the terminal front-end.
type UIConfig struct {
	// Color is "auto", "always" or "never" and decides whether decorated
	// rendering is offered at all.
	Color string `mapstructure:"color"`
	// DemoMatches seeds that many generated matches at startup; 0 starts
	// with an empty board.
	DemoMatches int `mapstructure:"demo_matches"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// MATCHBOARD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	def := summary.DefaultOptions()
	v.SetDefault("summary.max_lines", def.MaxLines)
	v.SetDefault("summary.padding", def.Padding)
	v.SetDefault("summary.min_column_width", def.MinColumnWidth)
	v.SetDefault("summary.max_column_width", def.MaxColumnWidth)
	v.SetDefault("summary.home_header", def.HomeHeader)
	v.SetDefault("summary.away_header", def.AwayHeader)
	v.SetDefault("summary.ellipsis", def.Ellipsis)
	v.SetDefault("ui.color", "auto")
	v.SetDefault("ui.demo_matches", 0)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MATCHBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "matchboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MATCHBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

// normalize clamps nonsensical values back to the defaults rather than
// failing startup over a typo in the config file.
func normalize(c Config) Config {
	def := summary.DefaultOptions()
	if c.Summary.MaxLines < 1 {
		c.Summary.MaxLines = def.MaxLines
	}
	if c.Summary.Padding < 0 {
		c.Summary.Padding = def.Padding
	}
	if c.Summary.MinColumnWidth < 1 {
		c.Summary.MinColumnWidth = def.MinColumnWidth
	}
	if c.Summary.MaxColumnWidth < c.Summary.MinColumnWidth {
		c.Summary.MaxColumnWidth = c.Summary.MinColumnWidth
	}
	if c.Summary.Ellipsis == "" {
		c.Summary.Ellipsis = def.Ellipsis
	}
	switch strings.ToLower(strings.TrimSpace(c.UI.Color)) {
	case "always":
		c.UI.Color = "always"
	case "never":
		c.UI.Color = "never"
	default:
		c.UI.Color = "auto"
	}
	if c.UI.DemoMatches < 0 {
		c.UI.DemoMatches = 0
	}
	return c
}

// SummaryOptions materializes render options from the config. The result is
// a plain value passed into each render call; nothing reads config globally.
func (c Config) SummaryOptions() summary.Options {
	return summary.Options{
		MaxLines:       c.Summary.MaxLines,
		Padding:        c.Summary.Padding,
		MinColumnWidth: c.Summary.MinColumnWidth,
		MaxColumnWidth: c.Summary.MaxColumnWidth,
		HomeHeader:     c.Summary.HomeHeader,
		AwayHeader:     c.Summary.AwayHeader,
		Ellipsis:       c.Summary.Ellipsis,
	}
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the TUI settings view.
func Save(cfg Config) error {
	path := os.Getenv("MATCHBOARD_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "matchboard", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("summary.max_lines", cfg.Summary.MaxLines)
	v.Set("summary.padding", cfg.Summary.Padding)
	v.Set("summary.min_column_width", cfg.Summary.MinColumnWidth)
	v.Set("summary.max_column_width", cfg.Summary.MaxColumnWidth)
	v.Set("summary.home_header", cfg.Summary.HomeHeader)
	v.Set("summary.away_header", cfg.Summary.AwayHeader)
	v.Set("summary.ellipsis", cfg.Summary.Ellipsis)
	v.Set("ui.color", cfg.UI.Color)
	v.Set("ui.demo_matches", cfg.UI.DemoMatches)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
