package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/asciistamp/internal/logging"
	"github.com/yaklabco/asciistamp/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// defaultConfigFile is the file written by init.
const defaultConfigFile = ".asciistamp.yml"

func newInitCommand() *cobra.Command {
	var force bool
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .asciistamp.yml configuration file",
		Long: `Create a .asciistamp.yml file in the current directory with every run
setting documented.

Examples:
  asciistamp init                      Create .asciistamp.yml
  asciistamp init --output custom.yml  Write to a custom file path`,
		Args: maxArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.Default()

			if _, err := os.Stat(output); err == nil {
				if !force {
					return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrInvalidUsage, output)
				}
				logger.Warn("overwriting existing file", logging.FieldPath, output)
			}

			if err := os.WriteFile(output, []byte(config.Template), configFilePermissions); err != nil {
				return fmt.Errorf("write file: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}
