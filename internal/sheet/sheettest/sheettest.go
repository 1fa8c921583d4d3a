// Package sheettest writes xlsx fixtures for tests.
package sheettest

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Header is the full card library header in sheet order
var Header = []any{
	"Card Name", "Type", "Sub-Types", "Cost", "Dice",
	"AD (Original)", "Endurance", "Ability", "Rarity", "Resource Ability",
}

// WriteWorkbook saves a workbook with one worksheet named sheetName holding
// rows, and returns its path. nil values leave the cell unset.
func WriteWorkbook(t *testing.T, sheetName string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		t.Fatalf("renaming sheet: %v", err)
	}

	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheetName, axis, value); err != nil {
				t.Fatalf("setting %s: %v", axis, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "cards.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving workbook: %v", err)
	}
	return path
}

// WriteCardLibrary saves a workbook with the standard header followed by rows
func WriteCardLibrary(t *testing.T, rows ...[]any) string {
	t.Helper()
	return WriteWorkbook(t, "Card Library", append([][]any{Header}, rows...))
}
