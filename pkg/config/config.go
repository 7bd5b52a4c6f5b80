// Package config loads insperplot settings from file, environment, and
// defaults.
package config

import (
	"errors"

	"github.com/insper-data/insperplot/pkg/brand"
	"github.com/insper-data/insperplot/pkg/theme"
)

// Config is the top-level configuration struct for insperplot.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Chart   ChartConfig   `mapstructure:"chart"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Fonts   FontsConfig   `mapstructure:"fonts"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Locale string `mapstructure:"locale"`
}

// ChartConfig holds default chart construction settings.
type ChartConfig struct {
	Width     string `mapstructure:"width"`
	Height    string `mapstructure:"height"`
	Palette   string `mapstructure:"palette"`
	PointSize int    `mapstructure:"point_size"`
}

// ThemeConfig holds theme overrides applied on top of the institutional
// default theme.
type ThemeConfig struct {
	TitleFont      string `mapstructure:"title_font"`
	BodyFont       string `mapstructure:"body_font"`
	BaseSize       int    `mapstructure:"base_size"`
	Grid           bool   `mapstructure:"grid"`
	Border         string `mapstructure:"border"`
	Background     string `mapstructure:"background"`
	LegendPosition string `mapstructure:"legend_position"`
}

// FontsConfig describes the font environment reports render in. WebLoaded
// marks whether pages may rely on linked web fonts; Installed lists locally
// available families used as a fallback check.
type FontsConfig struct {
	WebLoaded bool     `mapstructure:"web_loaded"`
	Installed []string `mapstructure:"installed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Sentinel errors for configuration validation.
var (
	// ErrInvalidPointSize indicates the point size is negative.
	ErrInvalidPointSize = errors.New("chart.point_size must be non-negative")
	// ErrInvalidBaseSize indicates the base font size is not positive.
	ErrInvalidBaseSize = errors.New("theme.base_size must be positive")
	// ErrUnknownPalette indicates the default palette does not exist.
	ErrUnknownPalette = errors.New("chart.palette must name a known palette")
	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("logging.level must be one of debug, info, warn, error")
	// ErrInvalidLogFormat indicates the log format is not recognized.
	ErrInvalidLogFormat = errors.New("logging.format must be text or json")
	// ErrInvalidLegendPosition indicates the legend position is not recognized.
	ErrInvalidLegendPosition = errors.New("theme.legend_position must be top or bottom")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	chartErr := c.validateChart()
	if chartErr != nil {
		return chartErr
	}

	themeErr := c.validateTheme()
	if themeErr != nil {
		return themeErr
	}

	return c.validateLogging()
}

func (c *Config) validateChart() error {
	if c.Chart.PointSize < 0 {
		return ErrInvalidPointSize
	}

	if c.Chart.Palette != "" {
		_, err := brand.Lookup(c.Chart.Palette)
		if err != nil {
			return ErrUnknownPalette
		}
	}

	return nil
}

func (c *Config) validateTheme() error {
	if c.Theme.BaseSize <= 0 {
		return ErrInvalidBaseSize
	}

	if !theme.Border(c.Theme.Border).Valid() {
		return theme.ErrInvalidBorder
	}

	if c.Theme.LegendPosition != "top" && c.Theme.LegendPosition != "bottom" {
		return ErrInvalidLegendPosition
	}

	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return ErrInvalidLogFormat
	}

	return nil
}

// BuildTheme merges the theme overrides onto the institutional default.
func (c *Config) BuildTheme() theme.Theme {
	t := theme.Default()

	if c.Theme.TitleFont != "" {
		t.TitleFont = c.Theme.TitleFont
	}

	if c.Theme.BodyFont != "" {
		t.BodyFont = c.Theme.BodyFont
	}

	if c.Theme.BaseSize > 0 {
		t.BaseSize = c.Theme.BaseSize
	}

	t.Grid = c.Theme.Grid
	t.Border = theme.Border(c.Theme.Border)

	if c.Theme.Background != "" {
		t.Background = c.Theme.Background
	}

	if c.Theme.LegendPosition != "" {
		t.LegendPosition = c.Theme.LegendPosition
	}

	return t
}

// Session converts the font settings into a theme font-resolution session.
func (c *Config) Session() theme.Session {
	return theme.Session{
		WebFontsLoaded: c.Fonts.WebLoaded,
		InstalledFonts: c.Fonts.Installed,
	}
}
