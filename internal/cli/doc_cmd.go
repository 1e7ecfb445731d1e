package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zakarianasim073/construction-project-monitoring/internal/cli/formatter"
	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
	"github.com/zakarianasim073/construction-project-monitoring/internal/policy"
)

func newDocCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Manage the document index",
	}

	cmd.AddCommand(newDocListCmd(app), newDocAddCmd(app))
	return cmd
}

func newDocListCmd(app *App) *cobra.Command {
	var search, category, module string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents, with optional search and filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}

			docs := filterDocuments(p.Documents, search, category, module)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDocumentList(docs))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by name substring")
	cmd.Flags().StringVar(&category, "category", "", "filter by category (CONTRACT, DRAWING, PERMIT, REPORT, BILL, OTHER)")
	cmd.Flags().StringVar(&module, "module", "", "filter by module (MASTER, SITE, FINANCE, LIABILITY, GENERAL)")

	return cmd
}

// filterDocuments applies the same search-plus-filters narrowing the
// document manager screen does.
func filterDocuments(docs []domain.DocumentRecord, search, category, module string) []domain.DocumentRecord {
	out := make([]domain.DocumentRecord, 0, len(docs))
	for _, d := range docs {
		if !d.MatchesSearch(search) {
			continue
		}
		if category != "" && !strings.EqualFold(string(d.Category), category) {
			continue
		}
		if module != "" && !strings.EqualFold(string(d.Module), module) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func newDocAddCmd(app *App) *cobra.Command {
	var name, fileType, categoryStr, moduleStr, size string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a document in the index",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			module := domain.ModuleTag(strings.ToUpper(moduleStr))
			if err := app.requireCapability(policy.DocUploadAction(module)); err != nil {
				return err
			}

			p, err := app.resolveProject(cmd.Context())
			if err != nil {
				return err
			}

			updated, err := app.Ledger.AppendDocument(cmd.Context(), p.ID, domain.DocumentRecord{
				Name:       name,
				FileType:   strings.ToUpper(fileType),
				Category:   domain.DocumentCategory(strings.ToUpper(categoryStr)),
				Module:     module,
				UploadDate: time.Now(),
				SizeLabel:  size,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Indexed document %s (%s)\n", name, updated.Documents[0].ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "document name")
	cmd.Flags().StringVar(&fileType, "type", "PDF", "file type tag (PDF, JPG, XLSX, ...)")
	cmd.Flags().StringVar(&categoryStr, "category", "OTHER", "category (CONTRACT, DRAWING, PERMIT, REPORT, BILL, OTHER)")
	cmd.Flags().StringVar(&moduleStr, "module", "GENERAL", "owning module (MASTER, SITE, FINANCE, LIABILITY, GENERAL)")
	cmd.Flags().StringVar(&size, "size", "", "size label, e.g. '1.4 MB'")

	return cmd
}
