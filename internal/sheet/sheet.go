// Package sheet reads the card library worksheet out of an xlsx workbook.
package sheet

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/riutiz/cardtable/internal/card"
)

// SheetName is the only worksheet the loader reads
const SheetName = "Card Library"

// Kind classifies a cell value
type Kind int

const (
	// Empty is the missing-value marker: no cell, or a cell without content
	Empty Kind = iota
	Text
	Number
)

// Cell is a single worksheet value
type Cell struct {
	Value string
	Kind  Kind
}

// IsEmpty reports whether the cell holds the missing-value marker
func (c Cell) IsEmpty() bool {
	return c.Kind == Empty
}

// TextCell returns a text cell holding s
func TextCell(s string) Cell { return Cell{Value: s, Kind: Text} }

// NumberCell returns a numeric cell whose raw value is s
func NumberCell(s string) Cell { return Cell{Value: s, Kind: Number} }

// Row holds one worksheet row keyed by header name
type Row struct {
	Number int // 1-based row number in the worksheet
	cells  map[string]Cell
}

// Get returns the cell under column, or an Empty cell when the column or
// value is absent.
func (r Row) Get(column string) Cell {
	return r.cells[column]
}

// Table is the header and data rows of the card library sheet, in file order
type Table struct {
	Path   string
	Header []string
	Rows   []Row
}

// HasColumn reports whether the header contains column
func (t *Table) HasColumn(column string) bool {
	for _, h := range t.Header {
		if h == column {
			return true
		}
	}
	return false
}

// NewTable builds a table from header names and per-row cells. Row numbers
// start at 2, after the header row.
func NewTable(path string, header []string, records [][]Cell) *Table {
	t := &Table{Path: path}
	for _, h := range header {
		t.Header = append(t.Header, strings.TrimSpace(h))
	}
	for i, rec := range records {
		t.Rows = append(t.Rows, newRow(i+2, t.Header, rec))
	}
	return t
}

func newRow(number int, header []string, rec []Cell) Row {
	row := Row{Number: number, cells: make(map[string]Cell, len(header))}
	for i, h := range header {
		if h == "" || i >= len(rec) {
			continue
		}
		// First occurrence of a duplicated header wins
		if _, seen := row.cells[h]; seen {
			continue
		}
		row.cells[h] = rec[i]
	}
	return row
}

// Load opens the workbook at path and reads the card library sheet. The
// first row is the header.
func Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &card.FileAccessError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	if !hasSheet(f) {
		return nil, &card.SchemaError{Path: path, Sheet: SheetName}
	}

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &card.FileAccessError{Op: "read", Path: path, Err: err}
	}

	t := &Table{Path: path}
	if len(rows) == 0 {
		log.Debug().Str("path", path).Msg("Card library sheet is empty")
		return t, nil
	}

	for _, h := range rows[0] {
		t.Header = append(t.Header, strings.TrimSpace(h))
	}

	for i, raw := range rows[1:] {
		number := i + 2
		rec := make([]Cell, len(raw))
		for col, value := range raw {
			rec[col], err = readCell(f, col+1, number, value)
			if err != nil {
				return nil, &card.FileAccessError{Op: "read", Path: path, Err: err}
			}
		}
		t.Rows = append(t.Rows, newRow(number, t.Header, rec))
	}

	log.Debug().
		Str("path", path).
		Int("columns", len(t.Header)).
		Int("rows", len(t.Rows)).
		Msg("Loaded card library sheet")

	return t, nil
}

func hasSheet(f *excelize.File) bool {
	for _, name := range f.GetSheetList() {
		if name == SheetName {
			return true
		}
	}
	return false
}

// readCell classifies a raw value using the cell type stored in the workbook.
// Cells without an explicit type are numbers in the xlsx format.
func readCell(f *excelize.File, col, row int, value string) (Cell, error) {
	if value == "" {
		return Cell{}, nil
	}

	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Cell{}, err
	}
	typ, err := f.GetCellType(SheetName, axis)
	if err != nil {
		return Cell{}, err
	}

	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			return NumberCell(value), nil
		}
	}
	return TextCell(value), nil
}
