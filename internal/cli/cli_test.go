package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/asciistamp/internal/cli"
	"github.com/yaklabco/asciistamp/internal/logging"
	"github.com/yaklabco/asciistamp/pkg/annotate"
	"github.com/yaklabco/asciistamp/pkg/fsutil"
)

const sevenLines = "x = 1\nx = 1\nx = 1\nx = 1\nx = 1\nx = 1\nx = 1\ny = 2"

// execute runs the root command with args and returns stdout.
// Tests touching the root command are not parallel: it adjusts the default
// logger level and reads the environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithLogs(t, args...)
	return out, err
}

// executeWithLogs is execute that also returns what was logged.
func executeWithLogs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	original := logging.Default()
	var logs bytes.Buffer
	logging.SetDefault(logging.NewWithWriter(&logs, "info"))
	t.Cleanup(func() { logging.SetDefault(original) })

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), logs.String(), err
}

func writeTarget(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "App.jsx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStamp_WritesAndConfirms(t *testing.T) {
	path := writeTarget(t, sevenLines)

	out, err := execute(t, path)

	require.NoError(t, err)
	assert.Equal(t, "✅ Added ASCII art comments to App.jsx\n", out)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, annotate.Annotate(sevenLines).Output, string(got))
}

func TestStamp_DryRun(t *testing.T) {
	path := writeTarget(t, sevenLines)

	out, err := execute(t, "--dry-run", path)

	require.NoError(t, err)
	assert.Contains(t, out, "+/**")
	assert.Contains(t, out, "dry run: 1 block would be inserted into App.jsx")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sevenLines, string(got))
}

func TestStamp_Backup(t *testing.T) {
	path := writeTarget(t, sevenLines)

	out, err := execute(t, "--backup", path)

	require.NoError(t, err)
	assert.Contains(t, out, "backup: "+fsutil.BackupPath(path))
	assert.True(t, fsutil.BackupExists(path))
}

func TestStamp_ConfigFile(t *testing.T) {
	path := writeTarget(t, sevenLines)
	cfgPath := filepath.Join(t.TempDir(), "stamp.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("target: "+path+"\ndry_run: true\n"), 0o644))

	out, err := execute(t, "--config", cfgPath)

	require.NoError(t, err)
	assert.Contains(t, out, "dry run:")
}

func TestStamp_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		code int
	}{
		{
			name: "missing file",
			args: func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "nope.jsx")} },
			code: cli.ExitIOError,
		},
		{
			name: "not utf-8",
			args: func(t *testing.T) []string { return []string{writeTarget(t, "x = \xff")} },
			code: cli.ExitIOError,
		},
		{
			name: "too many args",
			args: func(_ *testing.T) []string { return []string{"a.js", "b.js"} },
			code: cli.ExitInvalidUsage,
		},
		{
			name: "bad color",
			args: func(t *testing.T) []string { return []string{"--color", "rainbow", writeTarget(t, "x")} },
			code: cli.ExitConfigError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args(t)...)

			require.Error(t, err)
			assert.Equal(t, tc.code, cli.ExitCode(err))
		})
	}
}

func TestRestore(t *testing.T) {
	path := writeTarget(t, sevenLines)

	_, err := execute(t, "--backup", path)
	require.NoError(t, err)

	out, err := execute(t, "restore", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Restored "+path)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sevenLines, string(got))
	assert.False(t, fsutil.BackupExists(path))

	_, err = execute(t, "restore", path)
	require.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestInit(t *testing.T) {
	output := filepath.Join(t.TempDir(), ".asciistamp.yml")

	out, err := execute(t, "init", "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "created "+output)

	_, err = execute(t, "init", "--output", output)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))

	_, err = execute(t, "init", "--output", output, "--force")
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
}

func TestHelp(t *testing.T) {
	out, err := execute(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--dry-run")
	assert.Contains(t, out, "restore")
	assert.True(t, strings.Contains(out, "src/App.jsx"))
	assert.Contains(t, out, "Environment:")
	assert.Contains(t, out, "ASCIISTAMP_DRY_RUN")
	assert.Contains(t, out, "ASCIISTAMP_COLOR")
}

func TestStamp_DebugLogsRun(t *testing.T) {
	path := writeTarget(t, sevenLines)

	_, logs, err := executeWithLogs(t, "--debug", "--dry-run", path)

	require.NoError(t, err)
	assert.Contains(t, logs, "effective configuration")
	assert.Contains(t, logs, "dry_run: true")
	assert.Contains(t, logs, "annotated", "runner logs through the command's logger")
}

func TestRestore_NoBackupLeavesFile(t *testing.T) {
	path := writeTarget(t, sevenLines)

	_, err := execute(t, "restore", path)

	require.ErrorIs(t, err, fsutil.ErrNotFound)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sevenLines, string(got))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(assert.AnError))
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(fsutil.ErrModifiedExternally))
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(cli.ErrConfig))
}

func TestExitCode_WriteFailure(t *testing.T) {
	// Shape of a disk-full failure coming back from the runner.
	err := fmt.Errorf("write src/App.jsx: %w",
		fmt.Errorf("%w: write temp file: %w", fsutil.ErrWriteFailed, syscall.ENOSPC))

	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
	assert.ErrorIs(t, err, syscall.ENOSPC)
}
