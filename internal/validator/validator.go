package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/riutiz/cardtable/internal/card"
	"github.com/riutiz/cardtable/internal/sheet"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Path    string
	Results ValidationResults

	table *sheet.Table
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

// Validate checks the card library sheet of the workbook. A workbook that
// cannot be opened is returned as an error; schema problems are reported in
// the results.
func (v *Validator) Validate() (ValidationResults, error) {
	t, err := sheet.Load(v.Path)
	if err != nil {
		var schemaErr *card.SchemaError
		if errors.As(err, &schemaErr) {
			v.Results.Errors = append(v.Results.Errors, schemaErr.Error())
			return v.Results, nil
		}
		return v.Results, err
	}

	return v.ValidateTable(t), nil
}

// ValidateTable runs the checks against an already loaded table
func (v *Validator) ValidateTable(t *sheet.Table) ValidationResults {
	v.table = t

	v.validateHeader()
	if !v.Results.Valid() {
		return v.Results
	}
	v.validateNames()
	v.validateStats()

	return v.Results
}

// validateHeader checks required and optional columns
func (v *Validator) validateHeader() {
	for _, col := range sheet.RequiredColumns {
		if !v.table.HasColumn(col) {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("required column %q not found", col))
		}
	}

	for _, col := range sheet.OptionalColumns {
		if !v.table.HasColumn(col) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("column %q not found; values will be null", col))
		}
	}

	known := sheet.Columns()
	seen := make(map[string]bool)
	for _, h := range v.table.Header {
		if h == "" {
			continue
		}
		if seen[h] {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("column %q appears more than once; the first one is used", h))
			continue
		}
		seen[h] = true
		if !contains(known, h) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("unknown column %q is ignored", h))
		}
	}
}

// validateNames reports skipped rows and duplicate card names
func (v *Validator) validateNames() {
	firstRow := make(map[string]int)
	for _, row := range v.table.Rows {
		name := strings.TrimSpace(row.Get(sheet.ColName).Value)
		if name == "" {
			if !rowIsBlank(row, v.table.Header) {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("row %d has no card name and will be skipped", row.Number))
			}
			continue
		}

		if first, ok := firstRow[name]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("row %d: card name %q duplicates row %d", row.Number, name, first))
			continue
		}
		firstRow[name] = row.Number
	}
}

// validateStats reports AD and Endurance values that are not numbers
func (v *Validator) validateStats() {
	for _, row := range v.table.Rows {
		if strings.TrimSpace(row.Get(sheet.ColName).Value) == "" {
			continue
		}
		for _, col := range []string{sheet.ColAD, sheet.ColEndurance} {
			c := row.Get(col)
			if c.Kind != sheet.Text {
				continue
			}
			if _, err := strconv.Atoi(strings.TrimSpace(c.Value)); err != nil {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("row %d: %s value %q is not a number and will be kept as text", row.Number, col, c.Value))
			}
		}
	}
}

func rowIsBlank(row sheet.Row, header []string) bool {
	for _, h := range header {
		if !row.Get(h).IsEmpty() {
			return false
		}
	}
	return true
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
