package domain

import (
	"strings"
	"time"
)

// DocumentRecord is metadata for a filed document. Byte storage is external;
// the ledger only indexes name, type and provenance.
type DocumentRecord struct {
	ID         string
	Name       string
	FileType   string // e.g. "PDF", "JPG", "XLSX"
	Category   DocumentCategory
	Module     ModuleTag
	UploadDate time.Time
	SizeLabel  string // display label, e.g. "1.4 MB"
}

// MatchesSearch reports whether the document name contains the term,
// case-insensitively. An empty term matches everything.
func (d *DocumentRecord) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), strings.ToLower(term))
}
