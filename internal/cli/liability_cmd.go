package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zakarianasim073/construction-project-monitoring/internal/cli/formatter"
	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
	"github.com/zakarianasim073/construction-project-monitoring/internal/policy"
)

func newLiabilityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liability",
		Short: "Track retentions, pending POs and unbilled work",
	}

	cmd.AddCommand(newLiabilityListCmd(app), newLiabilityAddCmd(app))
	return cmd
}

func newLiabilityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List liabilities with per-kind totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLiabilities(p))
			return nil
		},
	}
}

func parseLiabilityKind(s string) (domain.LiabilityKind, error) {
	switch strings.ToLower(s) {
	case "retention":
		return domain.LiabilityRetention, nil
	case "po", "pending-po":
		return domain.LiabilityPendingPO, nil
	case "unbilled":
		return domain.LiabilityUnbilledWork, nil
	default:
		return "", fmt.Errorf("--kind must be retention, po, or unbilled, got %q", s)
	}
}

func newLiabilityAddCmd(app *App) *cobra.Command {
	var description, kindStr, dueStr string
	var amount float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a liability",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireCapability(policy.ActionAddLiability); err != nil {
				return err
			}

			kind, err := parseLiabilityKind(kindStr)
			if err != nil {
				return err
			}
			due, err := parseDate(dueStr)
			if err != nil {
				return err
			}

			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}

			updated, err := app.Ledger.AppendLiability(cmd.Context(), p.ID, domain.Liability{
				Description: description,
				Kind:        kind,
				Amount:      amount,
				DueDate:     due,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded liability %s for %s\n",
				updated.Liabilities[0].ID, formatter.Money(amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "liability description")
	cmd.Flags().StringVar(&kindStr, "kind", "retention", "kind: retention, po, or unbilled")
	cmd.Flags().Float64Var(&amount, "amount", 0, "liability amount")
	cmd.Flags().StringVar(&dueStr, "due", "", "due date (YYYY-MM-DD)")

	return cmd
}
