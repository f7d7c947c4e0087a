package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order; the first layout that parses wins.
// The M/D vs D/M ambiguity is inherent to the sheet and left as is:
// "04/12/2024" parses as April 12 even if the author meant December 4.
var dateLayouts = []string{
	"01/02/2006", // 12/04/2024
	"2006-01-02", // 2024-12-04
	"01-02-2006", // 12-04-2024
	"02/01/2006", // 04/12/2024
	"01/02/06",   // 12/04/24
	"2006/01/02", // 2024/12/04
}

// ParseCellDate parses a spreadsheet date cell, trying each supported
// layout in order.
func ParseCellDate(cell string) (time.Time, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, fmt.Errorf("empty date cell")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", cell)
}

// FirstInitials extracts the first initials token from a cell that may hold
// several comma or space separated sets, uppercased. Returns "" for an
// empty cell.
func FirstInitials(cell string) string {
	fields := strings.Fields(strings.ReplaceAll(cell, ",", " "))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

// Cell returns the trimmed value at idx, treating short rows as padded
// with empty cells.
func Cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
