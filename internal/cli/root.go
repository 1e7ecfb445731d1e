package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

// NewRootCmd creates the top-level "sitectl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var roleStr string

	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "Construction project monitoring: BOQ, site progress, billing, liabilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			role := strings.ToUpper(roleStr)
			if !domain.ValidRoles[role] {
				return fmt.Errorf("unknown role %q (valid: DIRECTOR, MANAGER, ACCOUNTANT, ENGINEER)", roleStr)
			}
			app.Role = domain.Role(role)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&roleStr, "role", defaultRole(), "session role (DIRECTOR, MANAGER, ACCOUNTANT, ENGINEER)")
	root.PersistentFlags().StringVarP(&app.ProjectFlag, "project", "p", "", "project ID, ID prefix, or name fragment (default: first project)")

	root.AddCommand(
		newProjectCmd(app),
		newBOQCmd(app),
		newDPRCmd(app),
		newBillCmd(app),
		newLiabilityCmd(app),
		newDocCmd(app),
		newDashboardCmd(app),
		newInsightCmd(app),
	)

	return root
}
