package domain

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
)

// Unit is a unit of measure for a BOQ line quantity.
type Unit string

const (
	UnitSQM Unit = "SQM" // square metres
	UnitCUM Unit = "CUM" // cubic metres
	UnitKG  Unit = "KG"
	UnitNOS Unit = "NOS" // count of pieces
	UnitRMT Unit = "RMT" // running metres
	UnitCFT Unit = "CFT" // cubic feet
)

// ValidUnits is the canonical set of accepted unit strings.
var ValidUnits = map[string]bool{
	"SQM": true, "CUM": true, "KG": true,
	"NOS": true, "RMT": true, "CFT": true,
}

type BillKind string

const (
	BillClientReceivable BillKind = "CLIENT_RECEIVABLE"
	BillVendorPayable    BillKind = "VENDOR_PAYABLE"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPending PaymentStatus = "PENDING"
)

type LiabilityKind string

const (
	LiabilityRetention    LiabilityKind = "RETENTION"
	LiabilityPendingPO    LiabilityKind = "PENDING_PURCHASE_ORDER"
	LiabilityUnbilledWork LiabilityKind = "UNBILLED_WORK"
)

type DocumentCategory string

const (
	DocContract DocumentCategory = "CONTRACT"
	DocDrawing  DocumentCategory = "DRAWING"
	DocPermit   DocumentCategory = "PERMIT"
	DocReport   DocumentCategory = "REPORT"
	DocBill     DocumentCategory = "BILL"
	DocOther    DocumentCategory = "OTHER"
)

// ModuleTag says which dashboard module a document belongs to.
type ModuleTag string

const (
	ModuleMaster    ModuleTag = "MASTER"
	ModuleSite      ModuleTag = "SITE"
	ModuleFinance   ModuleTag = "FINANCE"
	ModuleLiability ModuleTag = "LIABILITY"
	ModuleGeneral   ModuleTag = "GENERAL"
)

type Role string

const (
	RoleDirector   Role = "DIRECTOR"
	RoleManager    Role = "MANAGER"
	RoleAccountant Role = "ACCOUNTANT"
	RoleEngineer   Role = "ENGINEER"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{
	"DIRECTOR": true, "MANAGER": true,
	"ACCOUNTANT": true, "ENGINEER": true,
}
