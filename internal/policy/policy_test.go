package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

func TestCanPerform_Matrix(t *testing.T) {
	cases := []struct {
		role    domain.Role
		action  Action
		allowed bool
	}{
		{domain.RoleDirector, ActionAddReport, true},
		{domain.RoleEngineer, ActionAddReport, true},
		{domain.RoleManager, ActionAddReport, false},
		{domain.RoleAccountant, ActionAddReport, false},

		{domain.RoleManager, ActionAddClientBill, true},
		{domain.RoleAccountant, ActionAddClientBill, false},
		{domain.RoleAccountant, ActionAddVendorBill, true},
		{domain.RoleManager, ActionAddVendorBill, false},

		{domain.RoleAccountant, ActionAddLiability, true},
		{domain.RoleEngineer, ActionAddLiability, false},

		{domain.RoleEngineer, ActionUploadGeneralDoc, true},
		{domain.RoleAccountant, ActionUploadGeneralDoc, false},

		{domain.RoleEngineer, ActionCreateProject, false},
		{domain.RoleDirector, ActionCreateProject, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanPerform(tc.role, tc.action),
			"%s performing %s", tc.role, tc.action)
	}
}

func TestCanPerform_UnknownDenied(t *testing.T) {
	assert.False(t, CanPerform(domain.RoleDirector, Action("format_disk")))
	assert.False(t, CanPerform(domain.Role("INTERN"), ActionAddReport))
}

func TestDocUploadAction(t *testing.T) {
	assert.Equal(t, ActionUploadSiteDoc, DocUploadAction(domain.ModuleSite))
	assert.Equal(t, ActionUploadLiabilityDoc, DocUploadAction(domain.ModuleLiability))
	assert.Equal(t, ActionUploadGeneralDoc, DocUploadAction(domain.ModuleGeneral))
	assert.Equal(t, ActionUploadGeneralDoc, DocUploadAction(domain.ModuleTag("")))
}
