// Package refdata loads reference and candidate records from spreadsheet
// and JSON sources, and enforces the record-validity filter so invalid
// records never reach matching.
package refdata

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/execmatch/internal/model"
	"github.com/sells-group/execmatch/internal/normalize"
)

// XLSXOptions configures the reference spreadsheet parser.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// headerAliases maps spreadsheet header spellings to record fields.
var headerAliases = map[string]string{
	"full name":     "full_name",
	"full_name":     "full_name",
	"name":          "full_name",
	"title":         "title",
	"position":      "title",
	"role":          "title",
	"email":         "email",
	"email address": "email",
	"phone":         "phone",
	"phone number":  "phone",
	"telephone":     "phone",
	"profile":       "profile_url",
	"profile url":   "profile_url",
	"profile_url":   "profile_url",
	"linkedin":      "profile_url",
	"source":        "source_url",
	"source url":    "source_url",
	"source_url":    "source_url",
	"website":       "source_url",
	"url":           "source_url",
}

// LoadReferencesXLSX reads manually-verified reference records from a
// spreadsheet. The first row is the header; columns are mapped by name.
// Rows whose normalized name is empty are dropped here, at the boundary.
func LoadReferencesXLSX(path string, opts XLSXOptions) ([]model.EntityRecord, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "refdata: open xlsx")
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return nil, nil
	}

	columns := mapHeader(rowToStrings(sheet.Rows[0]))
	if _, ok := columns["full_name"]; !ok {
		return nil, eris.Errorf("refdata: no name column in %s", path)
	}

	var records []model.EntityRecord
	skipped := 0
	for _, row := range sheet.Rows[1:] {
		cells := rowToStrings(row)
		rec := recordFromRow(cells, columns)
		rec.Source = model.SourceManualVerification
		if normalize.CanonicalName(rec.FullName) == "" {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		zap.L().Warn("refdata: skipped rows with empty names",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}
	zap.L().Info("refdata: loaded references",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)

	return records, nil
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("refdata: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("refdata: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}

	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}

func mapHeader(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if field, ok := headerAliases[key]; ok {
			if _, taken := columns[field]; !taken {
				columns[field] = i
			}
		}
	}
	return columns
}

func recordFromRow(cells []string, columns map[string]int) model.EntityRecord {
	get := func(field string) string {
		i, ok := columns[field]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}
	return model.EntityRecord{
		FullName:   get("full_name"),
		Title:      get("title"),
		Email:      get("email"),
		Phone:      get("phone"),
		ProfileURL: get("profile_url"),
		SourceURL:  get("source_url"),
	}
}
