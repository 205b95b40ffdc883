package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tickbox/internal/config"
	"tickbox/internal/printer"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter catalog file",
	Long: `Init writes the default catalog (red, green and blue with a few sample
items) to ` + config.DefaultFileName + ` in the working directory, or to the
given path. Existing files are left alone unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing catalog file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultFileName
	if len(args) > 0 {
		path = args[0]
	}

	if !forceInit {
		if _, err := os.Stat(path); err == nil {
			return printer.Error(
				fmt.Sprintf("%s already exists", path),
				"Refusing to overwrite the existing catalog.",
				[]string{"run with --force to overwrite"},
			)
		}
	}

	svc := config.NewService(path)
	if err := svc.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	printer.Success("Wrote starter catalog to %s\n", path)
	return nil
}
