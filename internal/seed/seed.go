// Package seed carries the built-in demo dataset: two river-bank protection
// contracts with realistic BOQ, billing and liability figures.
package seed

import (
	"time"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("seed: bad date " + s)
	}
	return t
}

func strp(s string) *string    { return &s }
func qty(f float64) *float64   { return &f }

// Projects returns fresh copies of the demo projects. Each call allocates
// anew, so callers may hand the result straight to a store.
func Projects() []*domain.Project {
	return []*domain.Project{munshirhat(), kurigram()}
}

func munshirhat() *domain.Project {
	return &domain.Project{
		ID:            "P001",
		Name:          "Bank Protective Work at Munshirhat, Gaibandha (BWDB)",
		Status:        domain.ProjectActive,
		ContractValue: 181592188,
		StartDate:     date("2023-09-25"),
		EndDate:       date("2026-03-28"),
		BOQ: []domain.BOQLine{
			{
				ID: "40-920", Description: "Earth work in cutting and filling of eroded bank",
				Unit: domain.UnitCUM, Rate: 123.59, PlannedQty: 27977, ExecutedQty: 27977,
				CostAnalysis: &domain.CostAnalysis{
					UnitCost:  115.00,
					Breakdown: domain.CostBreakdown{Material: 80, Labor: 25, Equipment: 10},
				},
			},
			{
				ID: "40-370-20", Description: "Supply, Filling and Dumping of Geo-bag",
				Unit: domain.UnitNOS, Rate: 295.00, PlannedQty: 20404, ExecutedQty: 20404,
				CostAnalysis: &domain.CostAnalysis{
					UnitCost:  280.00,
					Breakdown: domain.CostBreakdown{Material: 220, Labor: 40, Equipment: 10, Overhead: 10},
				},
			},
			{
				ID: "40-190-35", Description: "CC blocks(1:2.5:5): 40cm x 40cm x 40cm",
				Unit: domain.UnitNOS, Rate: 852.00, PlannedQty: 47000, ExecutedQty: 18896,
				// Loss-making line: actual cost above contract rate.
				CostAnalysis: &domain.CostAnalysis{
					UnitCost:  910.00,
					Breakdown: domain.CostBreakdown{Material: 600, Labor: 200, Equipment: 80, Overhead: 30},
				},
			},
			{
				ID: "40-190-50", Description: "CC blocks(1:2.5:5): 30cm x 30cm x 30cm",
				Unit: domain.UnitNOS, Rate: 362.00, PlannedQty: 70370, ExecutedQty: 32049,
				CostAnalysis: &domain.CostAnalysis{
					UnitCost:  330.00,
					Breakdown: domain.CostBreakdown{Material: 200, Labor: 100, Equipment: 20, Overhead: 10},
				},
			},
			{
				ID: "40-190-40", Description: "CC blocks(1:2.5:5): 40cm x 40cm x 20cm",
				Unit: domain.UnitNOS, Rate: 432.00, PlannedQty: 118260, ExecutedQty: 15344,
				CostAnalysis: &domain.CostAnalysis{
					UnitCost:  400.00,
					Breakdown: domain.CostBreakdown{Material: 280, Labor: 100, Equipment: 10, Overhead: 10},
				},
			},
			{
				ID: "40-290-10", Description: "Dumping of stone/boulders/blocks by boat: Within 200m",
				Unit: domain.UnitCUM, Rate: 1638.00, PlannedQty: 3926.39, ExecutedQty: 981.60,
				CostAnalysis: &domain.CostAnalysis{
					UnitCost:  1400.00,
					Breakdown: domain.CostBreakdown{Material: 1000, Labor: 300, Equipment: 100},
				},
			},
			{
				ID: "40-500-40", Description: "Supply and laying geotex filter",
				Unit: domain.UnitSQM, Rate: 202.00, PlannedQty: 24187.50, ExecutedQty: 12500,
				CostAnalysis: &domain.CostAnalysis{
					UnitCost:  180.00,
					Breakdown: domain.CostBreakdown{Material: 150, Labor: 30},
				},
			},
		},
		Reports: []domain.ProgressReport{
			{
				ID: "105", Date: date("2024-11-19"),
				Activity: "CC Block Manufacturing (Package-Munshirhat 01)", Location: "Casting Yard",
				LaborCount: 30,
				Remarks:    "Produced 97 nos 50x50x50 and 246 nos 40x40x40 blocks. Cement consumption 138 bags.",
				LinkedBOQID: strp("40-190-35"), WorkDoneQty: qty(97),
			},
			{
				ID: "106", Date: date("2024-11-19"),
				Activity: "Geo-Bag Dumping by Boat", Location: "River Bank",
				LaborCount: 19,
				Remarks:    "Cumulative dumping progress 46.87%",
				LinkedBOQID: strp("40-370-20"), WorkDoneQty: qty(150),
			},
			{
				ID: "107", Date: date("2024-12-30"),
				Activity: "Monthly Reconciliation", Location: "Site Office",
				LaborCount: 4,
				Remarks:    "Gaibandha Munshirhat Block Casting Work Done Vol: 103385 cft",
			},
		},
		Bills: []domain.Bill{
			{ID: "RA-08", Kind: domain.BillClientReceivable, Counterparty: "BWDB Gaibandha O&M Division", Amount: 12500000, Date: date("2024-10-15"), Status: domain.PaymentPaid},
			{ID: "RA-09", Kind: domain.BillClientReceivable, Counterparty: "BWDB Gaibandha O&M Division", Amount: 8599950, Date: date("2025-04-07"), Status: domain.PaymentPending},
			{ID: "SUP-01", Kind: domain.BillVendorPayable, Counterparty: "Hassan & Brothers Ltd (Supplier)", Amount: 450000, Date: date("2024-11-20"), Status: domain.PaymentPaid},
			{ID: "SUP-02", Kind: domain.BillVendorPayable, Counterparty: "Sweet Chairman (Sub-contractor)", Amount: 155762, Date: date("2024-11-19"), Status: domain.PaymentPending},
		},
		Liabilities: []domain.Liability{
			{ID: "L001", Description: "Security Deposit (Retention 10%)", Kind: domain.LiabilityRetention, Amount: 1250000, DueDate: date("2026-03-28")},
			{ID: "L002", Description: "Pending PO - Stone Chips (Sylhet)", Kind: domain.LiabilityPendingPO, Amount: 867802, DueDate: date("2024-12-01")},
			{ID: "L003", Description: "Unbilled Labor (Nov)", Kind: domain.LiabilityUnbilledWork, Amount: 45000, DueDate: date("2024-12-05")},
		},
		Documents: []domain.DocumentRecord{
			{ID: "D001", Name: "Running Bill RA-09.pdf", FileType: "PDF", Category: domain.DocBill, Module: domain.ModuleFinance, UploadDate: date("2025-04-07"), SizeLabel: "1.4 MB"},
			{ID: "D002", Name: "Daily Progress Report_19.11.25.pdf", FileType: "PDF", Category: domain.DocReport, Module: domain.ModuleSite, UploadDate: date("2024-11-19"), SizeLabel: "2.1 MB"},
			{ID: "D003", Name: "Profit_Loss_Summary_30.12.2024.xlsx", FileType: "XLSX", Category: domain.DocReport, Module: domain.ModuleFinance, UploadDate: date("2024-12-30"), SizeLabel: "0.5 MB"},
			{ID: "D004", Name: "BOQ_Schedule.pdf", FileType: "PDF", Category: domain.DocContract, Module: domain.ModuleMaster, UploadDate: date("2023-09-01"), SizeLabel: "3.8 MB"},
		},
	}
}

func kurigram() *domain.Project {
	return &domain.Project{
		ID:            "P002",
		Name:          "River Bank Protection at Kurigram",
		Status:        domain.ProjectOnHold,
		ContractValue: 95000000,
		StartDate:     date("2024-01-10"),
		EndDate:       date("2025-06-30"),
		BOQ: []domain.BOQLine{
			{
				ID: "K-01", Description: "Excavation Work",
				Unit: domain.UnitCUM, Rate: 110.00, PlannedQty: 50000, ExecutedQty: 12000,
				CostAnalysis: &domain.CostAnalysis{
					UnitCost:  95.00,
					Breakdown: domain.CostBreakdown{Labor: 60, Equipment: 35},
				},
			},
			{
				ID: "K-02", Description: "CC Block Casting",
				Unit: domain.UnitNOS, Rate: 450.00, PlannedQty: 80000, ExecutedQty: 0,
				CostAnalysis: &domain.CostAnalysis{
					UnitCost:  400.00,
					Breakdown: domain.CostBreakdown{Material: 300, Labor: 80, Equipment: 10, Overhead: 10},
				},
			},
		},
	}
}
