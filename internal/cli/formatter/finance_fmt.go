package formatter

import (
	"fmt"
	"strings"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
	"github.com/zakarianasim073/construction-project-monitoring/internal/metrics"
)

// FormatFinance renders the billing position: summary figures, the two bill
// tables, and per-line operational profitability.
func FormatFinance(p *domain.Project) string {
	var b strings.Builder

	s := metrics.Summarize(p)
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("TOTAL BILLED   "), Money(s.TotalRevenue)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("RECEIVED       "), StyleGreen.Render(Money(s.TotalReceived))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("PENDING        "), StyleYellow.Render(Money(s.TotalPending))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("EXPENSES       "), Money(s.TotalExpenses)))
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Dim("NET POSITION   "), SignedMoney(s.NetPosition)))

	client, vendor := splitBills(p)
	b.WriteString(StyleHeader.Render("CLIENT BILLS (RA)") + "\n")
	b.WriteString(renderBillTable(client))
	b.WriteString("\n" + StyleHeader.Render("VENDOR INVOICES") + "\n")
	b.WriteString(renderBillTable(vendor))

	if rows := metrics.ProfitLines(p); len(rows) > 0 {
		b.WriteString("\n" + StyleHeader.Render("OPERATIONAL PROFIT (WORK DONE)") + "\n")
		b.WriteString(renderProfitTable(rows))
		b.WriteString(fmt.Sprintf("\n%s %s\n", Dim("Total operational profit:"), SignedMoney(metrics.OperationalProfit(p))))
	}

	return RenderBox("Financial Control", b.String())
}

func splitBills(p *domain.Project) (client, vendor []domain.Bill) {
	for _, b := range p.Bills {
		if b.Kind == domain.BillClientReceivable {
			client = append(client, b)
		} else {
			vendor = append(vendor, b)
		}
	}
	return client, vendor
}

func renderBillTable(bills []domain.Bill) string {
	if len(bills) == 0 {
		return Dim("No bills recorded.") + "\n"
	}
	headers := []string{"ID", "COUNTERPARTY", "AMOUNT", "DATE", "STATUS"}
	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, []string{
			b.ID,
			b.Counterparty,
			Money(b.Amount),
			Date(b.Date),
			PaymentPill(b.Status),
		})
	}
	return RenderTable(headers, rows)
}

func renderProfitTable(lines []metrics.ProfitLine) string {
	headers := []string{"ITEM", "RATE", "UNIT COST", "MARGIN", "EXECUTED", "PROFIT"}
	rows := make([][]string, 0, len(lines))
	for _, pl := range lines {
		rows = append(rows, []string{
			pl.Line.ID,
			Money(pl.Line.Rate),
			Money(pl.Line.CostAnalysis.UnitCost),
			SignedMoney(pl.UnitMargin),
			Qty(pl.Line.ExecutedQty),
			SignedMoney(pl.Profit),
		})
	}
	return RenderTable(headers, rows)
}

// FormatLiabilities renders the liability tracker with per-kind totals.
func FormatLiabilities(p *domain.Project) string {
	var b strings.Builder

	totals := metrics.LiabilityTotals(p)
	for _, kind := range []domain.LiabilityKind{domain.LiabilityRetention, domain.LiabilityPendingPO, domain.LiabilityUnbilledWork} {
		b.WriteString(fmt.Sprintf("%s  %s\n", LiabilityBadge(kind), Money(totals[kind])))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Dim("TOTAL    "), Money(metrics.TotalLiabilities(p))))

	headers := []string{"ID", "DESCRIPTION", "KIND", "AMOUNT", "DUE"}
	rows := make([][]string, 0, len(p.Liabilities))
	for _, l := range p.Liabilities {
		rows = append(rows, []string{
			l.ID,
			l.Description,
			LiabilityBadge(l.Kind),
			Money(l.Amount),
			Date(l.DueDate),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Liability Tracker", b.String())
}
