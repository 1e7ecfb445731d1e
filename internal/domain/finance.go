package domain

import "time"

// Bill is one financial transaction: a running-account bill raised on the
// client, or an invoice payable to a vendor or sub-contractor.
type Bill struct {
	ID           string
	Kind         BillKind
	Counterparty string
	Amount       float64
	Date         time.Time
	Status       PaymentStatus
}

// Liability is a forward-looking obligation: withheld retention, a purchase
// order not yet invoiced, or work done but not yet billed.
type Liability struct {
	ID          string
	Description string
	Kind        LiabilityKind
	Amount      float64
	DueDate     time.Time
}
