// Package render turns a schedule snapshot into presentable tables.
//
// NewTable produces a neutral Table (title, localized month subtitle, header
// row and one row per meeting date). Writers then emit it as a spreadsheet
// (WriteXLSX, via excelize) or as a terminal table (WriteText, via lipgloss).
// Dates are formatted dd/mm/yyyy and month labels follow the configured locale,
// e.g. "junio de 2024" for es_ES.
package render
