package formatter

import (
	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

// FormatDocumentList renders the document index.
func FormatDocumentList(docs []domain.DocumentRecord) string {
	if len(docs) == 0 {
		return RenderBox("Documents", Dim("No documents found. Try adjusting filters."))
	}

	headers := []string{"ID", "NAME", "TYPE", "CATEGORY", "MODULE", "UPLOADED", "SIZE"}
	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, []string{
			d.ID,
			Bold(d.Name),
			d.FileType,
			string(d.Category),
			ModuleBadge(d.Module),
			Date(d.UploadDate),
			Dim(d.SizeLabel),
		})
	}

	return RenderBox("Documents", RenderTable(headers, rows))
}
