package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/sitecarbon/internal/config"
	"github.com/rshade/sitecarbon/internal/report"
	"github.com/rshade/sitecarbon/internal/tui"
)

// runProgram runs a Bubble Tea model to completion. Tests replace it.
var runProgram = func(m tea.Model) (tea.Model, error) { //nolint:gochecknoglobals // Test seam.
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// NewTUICmd creates the tui command, which opens the interactive calculator
// on its home view.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive carbon calculator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd)
		},
	}
}

// runTUI starts the application model with reports written to the configured
// report directory.
func runTUI(cmd *cobra.Command, opts ...tui.Option) error {
	reportDir := config.GetReportDir()
	opts = append(opts, tui.WithReportWriter(func(r report.Report) (string, error) {
		return report.WriteFile(reportDir, r)
	}))

	model := tui.NewAppModel(cmd.Context(), opts...)
	if _, err := runProgram(model); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
