package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zakarianasim073/construction-project-monitoring/internal/cli/formatter"
)

func newBOQCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boq",
		Short: "Inspect the contract baseline (Bill of Quantities)",
	}

	cmd.AddCommand(newBOQListCmd(app), newBOQShowCmd(app))
	return cmd
}

func newBOQListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List BOQ lines with execution progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBOQList(p))
			return nil
		},
	}
}

func newBOQShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show one BOQ line with its cost analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}
			line := p.FindBOQLine(args[0])
			if line == nil {
				return fmt.Errorf("BOQ line not found: %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBOQLine(line))
			return nil
		},
	}
}
