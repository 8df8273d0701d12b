package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/asciistamp/internal/logging"
	"github.com/yaklabco/asciistamp/internal/ui/pretty"
	"github.com/yaklabco/asciistamp/pkg/fsutil"
	"github.com/yaklabco/asciistamp/pkg/runner"
)

func newRestoreCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [file]",
		Short: "Restore a file from its sidecar backup",
		Long: `Overwrite the file with the content saved by a previous "asciistamp --backup"
run and remove the backup. The backup holds the content from before the first
stamped run, so every block inserted since then is undone.`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			var path string
			if len(args) > 0 {
				path = args[0]
			}
			target := runner.OptionsFromConfig(cfg, path).Path
			if !fsutil.BackupExists(target) {
				return fmt.Errorf("%w: no backup at %s", fsutil.ErrNotFound, fsutil.BackupPath(target))
			}

			restored, err := fsutil.RestoreBackup(commandContext(cmd), target)
			if err != nil {
				return err
			}
			if !restored {
				return fmt.Errorf("%w: backup vanished at %s", fsutil.ErrNotFound, fsutil.BackupPath(target))
			}

			logging.Default().Debug("restored", logging.FieldPath, target)

			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), out))
			_, err = fmt.Fprintln(out, styles.Success.Render("Restored "+target))
			return err
		},
	}
}
