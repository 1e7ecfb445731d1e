// Package policy is the capability check for user roles. It is evaluated by
// the presentation layer only; the ledger never sees a role.
package policy

import "github.com/zakarianasim073/construction-project-monitoring/internal/domain"

// Action is something a user can attempt from the UI.
type Action string

const (
	ActionCreateProject      Action = "create_project"
	ActionAddReport          Action = "add_report"
	ActionAddClientBill      Action = "add_client_bill"
	ActionAddVendorBill      Action = "add_vendor_bill"
	ActionAddLiability       Action = "add_liability"
	ActionUploadMasterDoc    Action = "upload_master_doc"
	ActionUploadSiteDoc      Action = "upload_site_doc"
	ActionUploadFinanceDoc   Action = "upload_finance_doc"
	ActionUploadLiabilityDoc Action = "upload_liability_doc"
	ActionUploadGeneralDoc   Action = "upload_general_doc"
	ActionAskInsight         Action = "ask_insight"
)

var capabilities = map[Action]map[domain.Role]bool{
	ActionCreateProject:      {domain.RoleDirector: true, domain.RoleManager: true},
	ActionAddReport:          {domain.RoleDirector: true, domain.RoleEngineer: true},
	ActionAddClientBill:      {domain.RoleDirector: true, domain.RoleManager: true},
	ActionAddVendorBill:      {domain.RoleDirector: true, domain.RoleAccountant: true},
	ActionAddLiability:       {domain.RoleDirector: true, domain.RoleAccountant: true},
	ActionUploadMasterDoc:    {domain.RoleDirector: true, domain.RoleManager: true},
	ActionUploadSiteDoc:      {domain.RoleDirector: true, domain.RoleEngineer: true},
	ActionUploadFinanceDoc:   {domain.RoleDirector: true, domain.RoleManager: true},
	ActionUploadLiabilityDoc: {domain.RoleDirector: true, domain.RoleAccountant: true},
	ActionUploadGeneralDoc:   {domain.RoleDirector: true, domain.RoleManager: true, domain.RoleEngineer: true},
	ActionAskInsight:         {domain.RoleDirector: true, domain.RoleManager: true, domain.RoleAccountant: true, domain.RoleEngineer: true},
}

// CanPerform reports whether the role is allowed to attempt the action.
// Unknown actions are denied.
func CanPerform(role domain.Role, action Action) bool {
	return capabilities[action][role]
}

// DocUploadAction maps a document's module tag to the action guarding its upload.
func DocUploadAction(m domain.ModuleTag) Action {
	switch m {
	case domain.ModuleMaster:
		return ActionUploadMasterDoc
	case domain.ModuleSite:
		return ActionUploadSiteDoc
	case domain.ModuleFinance:
		return ActionUploadFinanceDoc
	case domain.ModuleLiability:
		return ActionUploadLiabilityDoc
	default:
		return ActionUploadGeneralDoc
	}
}
