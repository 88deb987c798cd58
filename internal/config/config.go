// Package config defines the run configuration of probeplot and how it is
// loaded from YAML files and PROBEPLOT_ environment variables.
package config

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vdobler/probeplot"
)

// Condition is one entry of the conditions list.
type Condition struct {
	// Path of the event log. May be a doublestar glob which must match
	// exactly one file.
	Path string `koanf:"path"`

	// Title is used in the report, the figure title and the file name.
	Title string `koanf:"title"`

	// Label identifies the condition in the boxplots.
	Label string `koanf:"label"`

	// MinSize overrides the run wide min_size.
	MinSize *float64 `koanf:"min_size"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// OutputDir receives the figures.
	OutputDir string `koanf:"output_dir"`

	// Overwrite allows replacing figures of an earlier run.
	Overwrite bool `koanf:"overwrite"`

	// MinSize in µm; zero disables the size threshold.
	MinSize float64 `koanf:"min_size"`

	// Bins and DPI override the default theme.
	Bins int `koanf:"bins"`
	DPI  int `koanf:"dpi"`

	// MetricsFile, if set, receives a Prometheus textfile after the run.
	MetricsFile string `koanf:"metrics_file"`

	Conditions []Condition `koanf:"conditions"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		OutputDir: "fig",
		MinSize:   0,
		Bins:      probeplot.DefaultTheme.Bins,
		DPI:       probeplot.DefaultTheme.DPI,
	}
}

// Validate performs the checks that do not touch the file system.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	if c.MinSize < 0 {
		return fmt.Errorf("%w: min_size must not be negative", ErrInvalidConfig)
	}
	if c.Bins < 1 || c.DPI < 1 {
		return fmt.Errorf("%w: bins and dpi must be positive", ErrInvalidConfig)
	}
	if len(c.Conditions) == 0 {
		return fmt.Errorf("%w: no conditions", ErrInvalidConfig)
	}
	for i, cond := range c.Conditions {
		if cond.Path == "" {
			return fmt.Errorf("%w: condition %d has no path", ErrInvalidConfig, i)
		}
	}
	return nil
}

// Resolve expands a condition path to the single file it denotes.
func Resolve(pattern string) (string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return "", fmt.Errorf("%w: pattern %q: %v", ErrInvalidConfig, pattern, err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w %q", ErrNoMatch, pattern)
	case 1:
		return matches[0], nil
	}
	sort.Strings(matches)
	return "", fmt.Errorf("%w %q: %v", ErrAmbiguous, pattern, matches)
}

// RunConfig resolves all condition paths and converts c into the explicit
// configuration of a pipeline run.
func (c *Config) RunConfig() (probeplot.RunConfig, error) {
	if err := c.Validate(); err != nil {
		return probeplot.RunConfig{}, err
	}
	theme := probeplot.DefaultTheme
	theme.Bins = c.Bins
	theme.DPI = c.DPI

	rc := probeplot.RunConfig{
		OutputDir: c.OutputDir,
		MinSize:   c.MinSize,
		Overwrite: c.Overwrite,
		Theme:     theme,
	}
	for i, cond := range c.Conditions {
		path, err := Resolve(cond.Path)
		if err != nil {
			return probeplot.RunConfig{}, fmt.Errorf("condition %d: %w", i, err)
		}
		rc.Conditions = append(rc.Conditions, probeplot.ConditionSpec{
			Path:    path,
			Title:   cond.Title,
			Label:   cond.Label,
			MinSize: cond.MinSize,
		})
	}
	return rc, rc.Validate()
}
