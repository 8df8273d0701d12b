package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/asciistamp/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid field.
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks cfg and returns the first problem found, or nil.
func Validate(cfg *config.Config) error {
	if strings.TrimSpace(cfg.Target) == "" {
		return &ValidationError{Field: "target", Value: cfg.Target, Message: "must not be empty"}
	}

	if cfg.LogLevel != "" && !knownLogLevels[strings.ToLower(cfg.LogLevel)] {
		return &ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("unknown level %q (expected debug, info, warn or error)", cfg.LogLevel),
		}
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		return &ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("unknown mode %q (expected auto, always or never)", cfg.Color),
		}
	}

	return nil
}
