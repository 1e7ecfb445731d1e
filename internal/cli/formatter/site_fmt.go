package formatter

import (
	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

// FormatReportList renders the daily progress report log, newest first.
func FormatReportList(p *domain.Project) string {
	headers := []string{"ID", "DATE", "ACTIVITY", "LOCATION", "LABOR", "BOQ LINK", "QTY DONE"}
	rows := make([][]string, 0, len(p.Reports))

	for i := range p.Reports {
		r := &p.Reports[i]
		link := Dim("--")
		qtyDone := Dim("--")
		if r.Linked() {
			link = *r.LinkedBOQID
			qtyDone = Qty(r.QuantityDone())
		}
		rows = append(rows, []string{
			r.ID,
			Date(r.Date),
			r.Activity,
			r.Location,
			Qty(float64(r.LaborCount)),
			link,
			qtyDone,
		})
	}

	return RenderBox("Daily Progress Reports", RenderTable(headers, rows))
}

// FormatReport renders one report in full, remarks included.
func FormatReport(r *domain.ProgressReport) string {
	headers := []string{"FIELD", "VALUE"}
	rows := [][]string{
		{"ID", r.ID},
		{"Date", Date(r.Date)},
		{"Activity", r.Activity},
		{"Location", r.Location},
		{"Labor", Qty(float64(r.LaborCount))},
	}
	if r.Linked() {
		rows = append(rows,
			[]string{"BOQ line", *r.LinkedBOQID},
			[]string{"Qty done", Qty(r.QuantityDone())})
	}
	if r.Remarks != "" {
		rows = append(rows, []string{"Remarks", r.Remarks})
	}
	return RenderBox("Progress Report", RenderTable(headers, rows))
}
