package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zakarianasim073/construction-project-monitoring/internal/cli/formatter"
	"github.com/zakarianasim073/construction-project-monitoring/internal/policy"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectCreateCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the working project's overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(p))
			return nil
		},
	}
}

func newProjectCreateCmd(app *App) *cobra.Command {
	var name, start, end string
	var value float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireCapability(policy.ActionCreateProject); err != nil {
				return err
			}

			if name == "" && app.interactive() {
				var valueStr string
				if err := runProjectForm(&name, &valueStr, &start, &end); err != nil {
					return err
				}
				parsed, err := parseAmount(valueStr)
				if err != nil {
					return err
				}
				value = parsed
			}

			startDate, err := parseDate(start)
			if err != nil {
				return err
			}
			endDate, err := parseDate(end)
			if err != nil {
				return err
			}

			p, err := app.Ledger.CreateProject(cmd.Context(), name, value, startDate, endDate, nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().Float64Var(&value, "value", 0, "contract value")
	cmd.Flags().StringVar(&start, "start", "", "contract start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "contract end date (YYYY-MM-DD)")

	return cmd
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}
