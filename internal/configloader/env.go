package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/asciistamp/pkg/config"
)

// envVarPrefix is the prefix for all asciistamp environment variables.
const envVarPrefix = "ASCIISTAMP_"

// envSetter applies one environment value to the config.
type envSetter func(cfg *config.Config, value string) error

// envMappings maps environment variable names (without prefix) to setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envSetter{
	"TARGET": func(cfg *config.Config, value string) error {
		cfg.Target = value
		return nil
	},
	"DRY_RUN": func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		cfg.DryRun = config.Bool(b)
		return nil
	},
	"BACKUP": func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		cfg.Backup = config.Bool(b)
		return nil
	},
	"LOG_LEVEL": func(cfg *config.Config, value string) error {
		cfg.LogLevel = value
		return nil
	},
	"COLOR": func(cfg *config.Config, value string) error {
		cfg.Color = config.ColorMode(value)
		return nil
	},
}

// LoadFromEnv applies ASCIISTAMP_* environment variable overrides to cfg.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for suffix, set := range envMappings {
		envVar := envVarPrefix + suffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := set(cfg, value); err != nil {
			return fmt.Errorf("invalid value for %s: %q: %w", envVar, value, err)
		}
	}

	return nil
}

// ListEnvVars returns the supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"ASCIISTAMP_TARGET":    "File to annotate when no path is given",
		"ASCIISTAMP_DRY_RUN":   "Dry-run mode: true or false",
		"ASCIISTAMP_BACKUP":    "Keep a sidecar backup: true or false",
		"ASCIISTAMP_LOG_LEVEL": "Log level: debug, info, warn or error",
		"ASCIISTAMP_COLOR":     "Colorize output: auto, always or never",
	}
}
