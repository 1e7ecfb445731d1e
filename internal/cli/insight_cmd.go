package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zakarianasim073/construction-project-monitoring/internal/cli/formatter"
	"github.com/zakarianasim073/construction-project-monitoring/internal/policy"
)

func newInsightCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insight",
		Short: "Ask the AI analyst for an executive summary of the working project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireCapability(policy.ActionAskInsight); err != nil {
				return err
			}

			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Analyzing project..."))
			text := app.Insight.ProjectInsights(cmd.Context(), p)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("AI Analyst", text))
			return nil
		},
	}
}
