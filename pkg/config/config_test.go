package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/asciistamp/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, config.DefaultTarget, cfg.Target)
	assert.False(t, cfg.IsDryRun())
	assert.False(t, cfg.IsBackup())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.ColorAuto, cfg.Color)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := &config.Config{
		Target: "a.js",
		DryRun: config.Bool(true),
		Backup: config.Bool(true),
		Color:  config.ColorNever,
	}

	t.Run("unset fields keep base", func(t *testing.T) {
		t.Parallel()

		got := base.Merge(&config.Config{LogLevel: "debug"})

		assert.Equal(t, "a.js", got.Target)
		assert.True(t, got.IsDryRun())
		assert.True(t, got.IsBackup())
		assert.Equal(t, "debug", got.LogLevel)
		assert.Equal(t, config.ColorNever, got.Color)
	})

	t.Run("explicit false overrides true", func(t *testing.T) {
		t.Parallel()

		got := base.Merge(&config.Config{DryRun: config.Bool(false)})

		assert.False(t, got.IsDryRun())
		assert.True(t, base.IsDryRun(), "base must not be mutated")
	})

	t.Run("nil override copies base", func(t *testing.T) {
		t.Parallel()

		got := base.Merge(nil)

		assert.Equal(t, base.Target, got.Target)
		assert.NotSame(t, base, got)
	})
}

func TestColorModeIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.ColorAuto.IsValid())
	assert.True(t, config.ColorAlways.IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("rainbow").IsValid())
}
