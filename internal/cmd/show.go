package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tickbox/internal/config"
	"tickbox/internal/filter"
	"tickbox/internal/printer"
	"tickbox/internal/selection"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the catalog state without starting the UI",
	Long: `Show loads the catalog, applies the stored checked set and prints the
options with their markers followed by the visible items. Useful in scripts
and when stdout is not a terminal.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	svc := config.NewService(configPath)
	cfg, err := svc.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	state := selection.New(cfg.Colors, cfg.Checked)
	items := cfg.Catalog().Items

	printer.Println("Options:")
	for _, o := range state.Options() {
		marker := "[ ]"
		if state.IsChecked(o) {
			marker = "[x]"
		}
		printer.Printf("  %s %s\n", marker, printer.Paint(o, o))
	}

	visible := filter.Apply(items, state.Checked())
	printer.Println()
	printer.Printf("Items (%d/%d):\n", len(visible), len(items))
	for _, it := range visible {
		printer.Printf("  %s (%s)\n", printer.Paint(it.Color, it.Name), it.Color)
	}

	return nil
}
