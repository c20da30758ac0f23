package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/botpilothq/console/internal/entity"
)

// ExportHeader is the fixed column order of the lead extract.
var ExportHeader = []string{
	"Name", "Email", "Phone", "Company", "Package", "Budget", "Status", "Created",
}

const createdDateLayout = "Jan 2, 2006"

// ExportRows builds the extract for the current view. With a non-empty
// selection it exports the selected records that are also visible; with an
// empty selection it exports the entire visible set. An empty selection
// deliberately means "everything on screen", not "nothing".
func ExportRows(visible []entity.Lead, sel *Selection) [][]string {
	rows := [][]string{ExportHeader}
	for _, l := range visible {
		if sel != nil && !sel.Empty() && !sel.IsSelected(l.ID) {
			continue
		}
		rows = append(rows, leadRow(l))
	}
	return rows
}

func leadRow(l entity.Lead) []string {
	return []string{
		l.Name,
		l.Email,
		l.Phone,
		l.Company,
		l.Package,
		l.Budget,
		string(l.Status),
		l.CreatedAt.Format(createdDateLayout),
	}
}

// WriteCSV serializes rows with proper quoting, so commas, quotes and
// newlines inside field values cannot break row boundaries.
func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// ExportFileName embeds the export date, e.g. leads-2026-08-31.csv.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("leads-%s.csv", now.Format("2006-01-02"))
}
