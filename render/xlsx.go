package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// WriteXLSX writes t as a single-sheet workbook.
//
// Layout: title in A1, month subtitle in A2, header row on row 4 (bold), then
// one row per date. The sheet is named after the subtitle.
//
// Parameters:
//   - w: Destination
//   - t: Rendered table
//
// Returns:
//   - error: Workbook construction or write failure
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := sheetName(t.Subtitle)
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	if err := f.SetCellStr(sheet, "A1", t.Title); err != nil {
		return fmt.Errorf("write title: %w", err)
	}
	if err := f.SetCellStr(sheet, "A2", t.Subtitle); err != nil {
		return fmt.Errorf("write subtitle: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	const headerRow = 4
	if err := writeRow(f, sheet, headerRow, t.Header); err != nil {
		return err
	}
	if len(t.Header) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, headerRow)
		last, _ := excelize.CoordinatesToCellName(len(t.Header), headerRow)
		if err := f.SetCellStyle(sheet, first, last, bold); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}
	for i, row := range t.Rows {
		if err := writeRow(f, sheet, headerRow+1+i, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []string) error {
	if len(cells) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}

	return nil
}

// sheetName derives a valid sheet name (max 31 chars, no []:*?/\).
func sheetName(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			continue
		}
		out = append(out, r)
		if len(out) == 31 {
			break
		}
	}
	if len(out) == 0 {
		return defaultSheet
	}

	return string(out)
}
