package render

import (
	"fmt"
	"strings"

	"github.com/arloliu/rota/types"
)

// Default labels for rendered tables.
const (
	DefaultTitle      = "Meeting Assignments"
	DefaultDateHeader = "Date"
)

// Options controls table labels.
type Options struct {
	// Locale selects the month label language (default DefaultLocale).
	Locale string

	// Title is the table title (default DefaultTitle).
	Title string

	// DateHeader labels the date column (default DefaultDateHeader).
	DateHeader string

	// UnassignedLabel is shown in slots without a resolvable assignee
	// (default types.DefaultUnassignedLabel).
	UnassignedLabel string
}

func (o Options) withDefaults() Options {
	if o.Locale == "" {
		o.Locale = DefaultLocale
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.DateHeader == "" {
		o.DateHeader = DefaultDateHeader
	}
	if o.UnassignedLabel == "" {
		o.UnassignedLabel = types.DefaultUnassignedLabel
	}

	return o
}

// Table is a rendered schedule: one header row and one row per meeting date.
type Table struct {
	Title    string
	Subtitle string
	Header   []string
	Rows     [][]string
}

// NewTable renders a schedule snapshot.
//
// The header is the date column followed by the roles in display order. Each
// row starts with the date in dd/mm/yyyy form followed by the assignee name
// for each role, or the unassigned label.
//
// Parameters:
//   - s: Schedule snapshot
//   - opts: Label options (zero values use defaults)
//
// Returns:
//   - Table: Rendered table
//
// Example:
//
//	s, _ := planner.Schedule()
//	t := render.NewTable(s, render.Options{Locale: "es_ES", DateHeader: "Fecha"})
//	// t.Subtitle == "junio de 2024"
func NewTable(s types.Schedule, opts Options) Table {
	opts = opts.withDefaults()

	header := make([]string, 0, len(s.Roles)+1)
	header = append(header, opts.DateHeader)
	for _, role := range s.Roles {
		header = append(header, string(role))
	}

	rows := make([][]string, 0, len(s.Dates))
	for _, d := range s.Dates {
		row := make([]string, 0, len(header))
		row = append(row, FormatDate(d))
		for _, role := range s.Roles {
			row = append(row, s.AssignedName(d.Key(), role, opts.UnassignedLabel))
		}
		rows = append(rows, row)
	}

	return Table{
		Title:    opts.Title,
		Subtitle: MonthLabel(s.Month, opts.Locale),
		Header:   header,
		Rows:     rows,
	}
}

// FileName builds an export file name such as "asignaciones-2024-06.xlsx".
//
// Parameters:
//   - prefix: Base name (e.g., "asignaciones")
//   - month: Exported month
//   - ext: Extension with or without the leading dot ("" for none)
func FileName(prefix string, month types.Month, ext string) string {
	name := fmt.Sprintf("%s-%s", prefix, month.Key())
	if ext == "" {
		return name
	}

	return name + "." + strings.TrimPrefix(ext, ".")
}
