package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
	"github.com/zakarianasim073/construction-project-monitoring/internal/testutil"
)

func fixtureProject() *domain.Project {
	return testutil.NewProject("Riverbank Protection",
		testutil.WithStatus(domain.ProjectOnHold),
		testutil.WithContractValue(5_000_000),
		testutil.WithBOQ(
			testutil.NewBOQLine("RB-01", "Geo-bag placement", 250, 1000,
				testutil.WithExecutedQty(400),
				testutil.WithUnitCost(210, domain.CostBreakdown{Material: 150, Labor: 40, Equipment: 15, Overhead: 5}),
			),
		),
		testutil.WithBills(
			testutil.NewBill(domain.BillClientReceivable, "BWDB", 100000, domain.PaymentPaid),
			testutil.NewBill(domain.BillVendorPayable, "Geo-Tex Suppliers", 42000, domain.PaymentPending),
		),
		testutil.WithLiabilities(
			testutil.NewLiability(domain.LiabilityRetention, "Security deposit", 10000),
		),
		testutil.WithDocuments(
			testutil.NewDocument("Work_Order.pdf", "PDF", domain.ModuleMaster),
		),
	)
}

func TestFormatProjectList(t *testing.T) {
	p := fixtureProject()
	out := FormatProjectList([]*domain.Project{p})
	assert.Contains(t, out, "Riverbank Protection")
	assert.Contains(t, out, "ON HOLD")
	assert.Contains(t, out, p.DisplayID())
}

func TestFormatDashboard(t *testing.T) {
	out := FormatDashboard(fixtureProject())
	assert.Contains(t, out, "Project Overview")
	assert.Contains(t, out, "CONTRACT VALUE")
	assert.Contains(t, out, "RETENTION")
	// 400 of 1000 units at a flat rate.
	assert.Contains(t, out, "40%")
}

func TestFormatFinance(t *testing.T) {
	out := FormatFinance(fixtureProject())
	assert.Contains(t, out, "CLIENT BILLS (RA)")
	assert.Contains(t, out, "Geo-Tex Suppliers")
	assert.Contains(t, out, "OPERATIONAL PROFIT (WORK DONE)")
	// margin 40 over 400 executed units
	assert.Contains(t, out, Money(16000))
}

func TestFormatLiabilities(t *testing.T) {
	out := FormatLiabilities(fixtureProject())
	assert.Contains(t, out, "Liability Tracker")
	assert.Contains(t, out, "Security deposit")
	assert.Contains(t, out, Money(10000))
}

func TestFormatReportList(t *testing.T) {
	p := fixtureProject()
	p.Reports = []domain.ProgressReport{
		testutil.NewReport("Geo-bag dumping",
			testutil.WithReportDate(time.Date(2024, 7, 21, 0, 0, 0, 0, time.UTC)),
			testutil.WithLink("RB-01", 120),
		),
		testutil.NewReport("Site survey"),
	}
	out := FormatReportList(p)
	assert.Contains(t, out, "Geo-bag dumping")
	assert.Contains(t, out, "2024-07-21")
	assert.Contains(t, out, "Site survey")
}

func TestFormatDocumentList(t *testing.T) {
	out := FormatDocumentList(fixtureProject().Documents)
	assert.Contains(t, out, "Work_Order.pdf")
	assert.Contains(t, out, "MASTER")

	empty := FormatDocumentList(nil)
	assert.Contains(t, empty, "No documents found")
}
