// Package cli provides the Cobra command structure for asciistamp.
package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/spf13/cobra"

	"github.com/yaklabco/asciistamp/internal/configloader"
	"github.com/yaklabco/asciistamp/internal/logging"
	"github.com/yaklabco/asciistamp/internal/ui/pretty"
	"github.com/yaklabco/asciistamp/pkg/config"
	"github.com/yaklabco/asciistamp/pkg/runner"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type rootFlags struct {
	debug      bool
	configPath string
	color      string
	dryRun     bool
	backup     bool
}

// NewRootCommand creates the root asciistamp command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "asciistamp [file]",
		Short: "Stamp an ASCII-art comment block through a source file",
		Long: `asciistamp rewrites a source file in place, inserting a fixed ASCII-art
block comment after every run of seven code lines. Blank lines and lines that
look like comments do not count, and no block is inserted directly before a
line that opens a comment.

The file defaults to src/App.jsx. Running asciistamp twice on the same file
inserts more blocks; use --backup to keep the original.

` + envHelp(),
		Example: `  asciistamp                     # Stamp src/App.jsx
  asciistamp web/main.ts         # Stamp another file
  asciistamp --dry-run           # Show the insertions as a diff
  asciistamp --backup            # Keep src/App.jsx.asciistamp.bak
  asciistamp restore             # Put the backup back`,
		Args: maxArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStamp(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the insertions as a diff without writing")
	rootCmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a sidecar copy of the original file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRestoreCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(flags.color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}

// maxArgs is cobra.MaximumNArgs with errors tagged as usage errors.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		return nil
	}
}

// loadConfig resolves configuration with CLI flags applied on top.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	ctx := commandContext(cmd)

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("dry-run") {
		cliCfg.DryRun = config.Bool(flags.dryRun)
	}
	if cmd.Flags().Changed("backup") {
		cliCfg.Backup = config.Bool(flags.backup)
	}
	if cmd.Flags().Changed("color") {
		cliCfg.Color = config.ColorMode(flags.color)
	}
	if flags.debug {
		cliCfg.LogLevel = "debug"
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: flags.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	logging.SetLevel(loadResult.Config.LogLevel)
	logger := logging.Default()
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	if logger.GetLevel() <= log.DebugLevel {
		if data, err := loadResult.Config.ToYAML(); err == nil {
			logger.Debug("effective configuration", logging.FieldConfig, strings.TrimSpace(string(data)))
		}
	}

	return loadResult.Config, nil
}

func runStamp(cmd *cobra.Command, args []string, flags *rootFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	opts := runner.OptionsFromConfig(cfg, path)

	logger := logging.Default()
	ctx := logging.WithLogger(commandContext(cmd), logger)
	logger.Debug("stamping",
		logging.FieldPath, opts.Path,
		logging.FieldDryRun, opts.DryRun,
		logging.FieldBackup, opts.Backup,
	)

	result, err := runner.New(nil).Run(ctx, opts)
	if err != nil {
		return err
	}

	logger.Debug("done",
		logging.FieldInsertions, result.Insertions(),
		logging.FieldDuration, result.Duration,
	)

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), out))
	_, err = fmt.Fprint(out, styles.FormatResult(result, pretty.TerminalWidth(out)))
	return err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// envHelp lists the supported environment variables for the help text.
func envHelp() string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	sort.Strings(names)

	var builder strings.Builder
	builder.WriteString("Environment:")
	for _, name := range names {
		fmt.Fprintf(&builder, "\n  %-*s  %s", width, name, vars[name])
	}
	return builder.String()
}
