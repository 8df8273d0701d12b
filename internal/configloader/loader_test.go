package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/asciistamp/internal/configloader"
	"github.com/yaklabco/asciistamp/pkg/config"
)

// newProject creates an isolated project directory with a VCS root marker
// and an empty user config home.
func newProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	for name := range configloader.ListEnvVars() {
		t.Setenv(name, "")
	}

	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	dir := newProject(t)

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})

	require.NoError(t, err)
	assert.Equal(t, config.NewConfig(), result.Config)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfigFromSubdirectory(t *testing.T) {
	dir := newProject(t)
	writeConfig(t, filepath.Join(dir, ".asciistamp.yml"), "target: web/App.tsx\nbackup: true\n")
	sub := filepath.Join(dir, "web", "components")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: sub})

	require.NoError(t, err)
	assert.Equal(t, "web/App.tsx", result.Config.Target)
	assert.True(t, result.Config.IsBackup())
	assert.Equal(t, []string{filepath.Join(dir, ".asciistamp.yml")}, result.LoadedFrom)
}

func TestLoad_Precedence(t *testing.T) {
	dir := newProject(t)
	writeConfig(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "asciistamp", "config.yaml"),
		"log_level: error\ncolor: never\n")
	writeConfig(t, filepath.Join(dir, ".asciistamp.yml"), "log_level: warn\ndry_run: true\n")
	t.Setenv("ASCIISTAMP_TARGET", "env.js")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		CLIConfig:  &config.Config{DryRun: config.Bool(false)},
	})

	require.NoError(t, err)
	cfg := result.Config
	assert.Equal(t, "warn", cfg.LogLevel, "project overrides user")
	assert.Equal(t, config.ColorNever, cfg.Color, "user applies when project is silent")
	assert.Equal(t, "env.js", cfg.Target, "environment overrides files")
	assert.False(t, cfg.IsDryRun(), "CLI overrides everything")
	assert.Len(t, result.LoadedFrom, 2)
}

func TestLoad_ExplicitSkipsProject(t *testing.T) {
	dir := newProject(t)
	writeConfig(t, filepath.Join(dir, ".asciistamp.yml"), "target: project.js\n")
	explicit := filepath.Join(t.TempDir(), "custom.yml")
	writeConfig(t, explicit, "backup: true\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: explicit,
	})

	require.NoError(t, err)
	assert.Equal(t, config.DefaultTarget, result.Config.Target)
	assert.True(t, result.Config.IsBackup())
	assert.Equal(t, []string{explicit}, result.LoadedFrom)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		dir := newProject(t)
		writeConfig(t, filepath.Join(dir, ".asciistamp.yml"), "target: [unclosed\n")

		_, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})

		require.Error(t, err)
	})

	t.Run("invalid env bool", func(t *testing.T) {
		dir := newProject(t)
		t.Setenv("ASCIISTAMP_DRY_RUN", "maybe")

		_, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})

		require.ErrorContains(t, err, "ASCIISTAMP_DRY_RUN")
	})

	t.Run("invalid color", func(t *testing.T) {
		dir := newProject(t)

		_, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
			CLIConfig:  &config.Config{Color: "rainbow"},
		})

		var verr *configloader.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "color", verr.Field)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		dir := newProject(t)

		_, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir:   dir,
			ExplicitPath: filepath.Join(dir, "nope.yml"),
		})

		require.ErrorContains(t, err, "explicit")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, configloader.Validate(config.NewConfig()))

	cfg := config.NewConfig()
	cfg.Target = "  "
	require.Error(t, configloader.Validate(cfg))

	cfg = config.NewConfig()
	cfg.LogLevel = "loud"
	require.ErrorContains(t, configloader.Validate(cfg), "log_level")
}
