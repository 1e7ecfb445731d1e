package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zakarianasim073/construction-project-monitoring/internal/cli/formatter"
	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
	"github.com/zakarianasim073/construction-project-monitoring/internal/policy"
)

func newDPRCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dpr",
		Short: "Record and review daily progress reports",
	}

	cmd.AddCommand(newDPRListCmd(app), newDPRAddCmd(app))
	return cmd
}

func newDPRListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List daily progress reports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReportList(p))
			return nil
		},
	}
}

func newDPRAddCmd(app *App) *cobra.Command {
	var activity, location, remarks, dateStr, boqID string
	var labor int
	var workDone float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a daily progress report",
		Long: "Record a daily progress report. Linking the report to a BOQ line " +
			"(--boq) adds the work-done quantity to that line's executed quantity.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireCapability(policy.ActionAddReport); err != nil {
				return err
			}

			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}

			if activity == "" && app.interactive() {
				if err := runDPRForm(p, &activity, &location, &remarks, &dateStr, &boqID, &labor, &workDone); err != nil {
					return err
				}
			}
			if activity == "" {
				return fmt.Errorf("--activity is required")
			}

			date := time.Now()
			if dateStr != "" {
				date, err = parseDate(dateStr)
				if err != nil {
					return err
				}
			}

			report := domain.ProgressReport{
				Date:       date,
				Activity:   activity,
				Location:   location,
				LaborCount: labor,
				Remarks:    remarks,
			}
			if boqID != "" {
				report.LinkedBOQID = &boqID
				report.WorkDoneQty = &workDone
			}

			updated, err := app.Ledger.AppendProgressReport(cmd.Context(), p.ID, report)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded report %s\n", updated.Reports[0].ID)
			if boqID != "" {
				line := updated.FindBOQLine(boqID)
				fmt.Fprintf(cmd.OutOrStdout(), "BOQ line %s executed quantity is now %s\n",
					boqID, formatter.Qty(line.ExecutedQty))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&activity, "activity", "", "activity description")
	cmd.Flags().StringVar(&location, "location", "", "site location")
	cmd.Flags().StringVar(&remarks, "remarks", "", "free-text remarks")
	cmd.Flags().StringVar(&dateStr, "date", "", "report date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&boqID, "boq", "", "linked BOQ line ID")
	cmd.Flags().IntVar(&labor, "labor", 0, "labor headcount")
	cmd.Flags().Float64Var(&workDone, "qty", 0, "quantity completed today (with --boq)")

	return cmd
}
