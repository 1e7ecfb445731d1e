package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zakarianasim073/construction-project-monitoring/internal/cli/formatter"
	"github.com/zakarianasim073/construction-project-monitoring/internal/tui"
)

func newDashboardCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the project dashboard",
		Long:  "Open the interactive dashboard for the working project. Falls back to a static render off a terminal or with --plain.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}

			if plain || !app.interactive() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(p))
				return nil
			}

			program := tea.NewProgram(tui.NewModel(p), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print a static dashboard instead of the TUI")
	return cmd
}
