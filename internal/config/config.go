// Package config loads host-application settings. The editing core never
// reads configuration; values are injected by main into the layout and
// controller.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jthomassen/roadline/internal/domain"
	"github.com/jthomassen/roadline/internal/layout"
)

// Config is the top-level roadline.yml configuration. Every field is
// optional; zero values fall back to the defaults below.
type Config struct {
	DefaultYear  int      `yaml:"default_year,omitempty"`
	WeekWidth    float64  `yaml:"week_width,omitempty"`
	LabelWidth   float64  `yaml:"label_width,omitempty"`
	TopicPalette []string `yaml:"topic_palette,omitempty"`
	RecentLimit  int      `yaml:"recent_limit,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DefaultYear: time.Now().Year(),
		WeekWidth:   layout.DefaultWeekWidth,
		LabelWidth:  layout.LabelWidth,
		RecentLimit: 10,
	}
}

// Validate checks the loaded values and fills defaults for omitted fields.
func (c *Config) Validate() error {
	d := Default()
	if c.DefaultYear == 0 {
		c.DefaultYear = d.DefaultYear
	}
	if c.WeekWidth == 0 {
		c.WeekWidth = d.WeekWidth
	}
	if c.LabelWidth == 0 {
		c.LabelWidth = d.LabelWidth
	}
	if c.RecentLimit == 0 {
		c.RecentLimit = d.RecentLimit
	}

	if c.DefaultYear < 1 {
		return fmt.Errorf("default_year must be positive, got %d", c.DefaultYear)
	}
	if c.WeekWidth <= 0 {
		return fmt.Errorf("week_width must be positive, got %g", c.WeekWidth)
	}
	if c.LabelWidth < 0 {
		return fmt.Errorf("label_width must not be negative, got %g", c.LabelWidth)
	}
	if c.RecentLimit < 1 {
		return fmt.Errorf("recent_limit must be >= 1, got %d", c.RecentLimit)
	}
	for i, color := range c.TopicPalette {
		if len(color) != 7 || color[0] != '#' {
			return fmt.Errorf("topic_palette[%d]: expected #RRGGBB, got %q", i, color)
		}
	}
	return nil
}

// Palette returns the configured topic palette, or the built-in default
// when none is set.
func (c *Config) Palette() []string {
	if len(c.TopicPalette) > 0 {
		return c.TopicPalette
	}
	return domain.DefaultTopicColors
}

// Load reads and validates a config file. A missing file is not an error:
// defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
