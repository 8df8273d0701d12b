// Package config defines the run settings for asciistamp.
//
// The inserted comment and the insertion cadence are fixed and are not part
// of the configuration.
package config

// DefaultTarget is the file rewritten when no path is given.
const DefaultTarget = "src/App.jsx"

// ColorMode controls colorized terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is recognized.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure.
//
// Boolean options are pointers so that a layer can explicitly set false
// over a lower layer's true.
type Config struct {
	// Target is the file to annotate.
	Target string `yaml:"target,omitempty"`

	// DryRun prints the insertions as a diff without writing.
	DryRun *bool `yaml:"dry_run,omitempty"`

	// Backup keeps a sidecar copy of the original before the first rewrite.
	Backup *bool `yaml:"backup,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`

	// Color is one of auto, always, never.
	Color ColorMode `yaml:"color,omitempty"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Target:   DefaultTarget,
		DryRun:   Bool(false),
		Backup:   Bool(false),
		LogLevel: "info",
		Color:    ColorAuto,
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// IsDryRun reports whether dry-run is enabled.
func (c *Config) IsDryRun() bool {
	return c != nil && c.DryRun != nil && *c.DryRun
}

// IsBackup reports whether backups are enabled.
func (c *Config) IsBackup() bool {
	return c != nil && c.Backup != nil && *c.Backup
}

// Merge returns a copy of c with every field set in override applied on top.
func (c *Config) Merge(override *Config) *Config {
	if c == nil {
		return override
	}
	result := *c
	if override == nil {
		return &result
	}

	if override.Target != "" {
		result.Target = override.Target
	}
	if override.DryRun != nil {
		result.DryRun = Bool(*override.DryRun)
	}
	if override.Backup != nil {
		result.Backup = Bool(*override.Backup)
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	return &result
}
