// Package runner orchestrates a single annotation run: read the target,
// check its language, annotate it, and write the result back atomically.
package runner

import (
	"path/filepath"

	"github.com/yaklabco/asciistamp/pkg/config"
)

// Options controls a run.
type Options struct {
	// Path is the target file. Relative paths are resolved against WorkingDir.
	Path string

	// WorkingDir is the base directory for a relative Path.
	// If empty, the current process working directory is used.
	WorkingDir string

	// DryRun computes the diff without writing.
	DryRun bool

	// Backup writes a sidecar copy of the original before the first rewrite.
	Backup bool
}

// OptionsFromConfig builds Options from a resolved configuration.
// A non-empty path overrides the configured target.
func OptionsFromConfig(cfg *config.Config, path string) Options {
	opts := Options{
		Path:   cfg.Target,
		DryRun: cfg.IsDryRun(),
		Backup: cfg.IsBackup(),
	}
	if path != "" {
		opts.Path = path
	}
	return opts
}

// resolvedPath returns Path joined to WorkingDir when relative.
func (o Options) resolvedPath() string {
	if o.WorkingDir == "" || filepath.IsAbs(o.Path) {
		return o.Path
	}
	return filepath.Join(o.WorkingDir, o.Path)
}
