package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zakarianasim073/construction-project-monitoring/internal/cli/formatter"
	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
	"github.com/zakarianasim073/construction-project-monitoring/internal/policy"
)

func newBillCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Record and review bills",
	}

	cmd.AddCommand(newBillListCmd(app), newBillAddCmd(app))
	return cmd
}

func newBillListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the financial position and bill tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatFinance(p))
			return nil
		},
	}
}

func newBillAddCmd(app *App) *cobra.Command {
	var id, kindStr, counterparty, dateStr, statusStr string
	var amount float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a client RA bill or a vendor invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind domain.BillKind
			switch strings.ToLower(kindStr) {
			case "client":
				kind = domain.BillClientReceivable
				if err := app.requireCapability(policy.ActionAddClientBill); err != nil {
					return err
				}
			case "vendor":
				kind = domain.BillVendorPayable
				if err := app.requireCapability(policy.ActionAddVendorBill); err != nil {
					return err
				}
			default:
				return fmt.Errorf("--kind must be client or vendor, got %q", kindStr)
			}

			status := domain.PaymentPending
			if strings.EqualFold(statusStr, "paid") {
				status = domain.PaymentPaid
			}

			date := time.Now()
			if dateStr != "" {
				var err error
				date, err = parseDate(dateStr)
				if err != nil {
					return err
				}
			}

			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}

			updated, err := app.Ledger.AppendBill(cmd.Context(), p.ID, domain.Bill{
				ID:           id,
				Kind:         kind,
				Counterparty: counterparty,
				Amount:       amount,
				Date:         date,
				Status:       status,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded bill %s for %s\n",
				updated.Bills[0].ID, formatter.Money(amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "bill number (generated when empty)")
	cmd.Flags().StringVar(&kindStr, "kind", "client", "bill kind: client or vendor")
	cmd.Flags().StringVar(&counterparty, "counterparty", "", "client or vendor name")
	cmd.Flags().Float64Var(&amount, "amount", 0, "bill amount")
	cmd.Flags().StringVar(&dateStr, "date", "", "bill date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&statusStr, "status", "pending", "payment status: paid or pending")

	return cmd
}
