package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tickbox/internal/config"
	"tickbox/internal/printer"
	"tickbox/internal/ui"
)

var (
	version string
	commit  string
	date    string

	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tickbox",
	Short: "tickbox - checkbox filtering for color-tagged catalogs",
	Long: `tickbox loads a TOML catalog of color-tagged items and shows a checkbox
panel next to the live-filtered item list. Checking "all" shows everything;
checking a color while "all" is on narrows to that color; unchecking every
box shows nothing.

Without a subcommand the interactive UI starts. Use "tickbox show" for a
one-shot dump and "tickbox init" to write a starter catalog.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the catalog file (default "+config.DefaultFileName+")")
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return printer.Error(
			"not a terminal",
			"The interactive UI needs a terminal on stdout.",
			[]string{"run: tickbox show"},
		)
	}

	svc := config.NewService(configPath)
	cfg, err := svc.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("Loaded catalog: %d colors, %d items", len(cfg.Colors), len(cfg.Items))

	model := ui.NewModel(cfg.Catalog(), cfg.Checked)

	// Readiness marker for the e2e driver, printed before the alternate
	// screen takes over.
	if os.Getenv("TICKBOX_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		p.Quit()
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	log.Printf("UI exited normally")

	return nil
}
