// Package parser turns the campaign's delimited data sheets into rows of
// cells. The sheets are exported from independently maintained
// spreadsheets, so the delimiter and header depth vary per file; each
// source describes itself with a SourceSpec and one parser handles all of
// them. This is a tolerant parser, not a validating one: short rows are
// skipped, "NA" cells are coerced to zero sentinels, and nothing here
// returns a per-row error.
package parser

import (
	"strconv"
	"strings"
)

// Delimiter identifies how a source file separates its columns.
type Delimiter string

const (
	DelimiterTab   Delimiter = "\t"
	DelimiterComma Delimiter = ","
)

// SourceSpec describes one delimited resource: where it lives, how it is
// delimited, how many fixed header lines to discard and the minimum number
// of columns a usable data row carries.
type SourceSpec struct {
	Name       string
	Path       string
	Delimiter  Delimiter
	HeaderRows int
	MinColumns int
}

// Row is one parsed data line, already trimmed and unquoted.
type Row []string

// Parse splits raw sheet text into rows according to spec. Header lines
// are discarded, cells are trimmed and unquoted, and any row with fewer
// than spec.MinColumns cells is dropped.
func Parse(spec SourceSpec, raw string) []Row {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if len(lines) <= spec.HeaderRows {
		return nil
	}
	lines = lines[spec.HeaderRows:]

	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, string(spec.Delimiter))
		if len(cells) < spec.MinColumns {
			continue
		}
		row := make(Row, len(cells))
		for i, cell := range cells {
			row[i] = cleanCell(cell)
		}
		rows = append(rows, row)
	}
	return rows
}

func cleanCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if len(cell) >= 2 && strings.HasPrefix(cell, `"`) && strings.HasSuffix(cell, `"`) {
		cell = strings.TrimSpace(cell[1 : len(cell)-1])
		// Spreadsheet exports double embedded quotes inside quoted cells.
		cell = strings.ReplaceAll(cell, `""`, `"`)
	}
	return cell
}

// IsNA reports whether a cell carries the sheets' "not available" sentinel.
func IsNA(cell string) bool {
	return cell == "" || strings.EqualFold(strings.TrimSpace(cell), "NA")
}

// CellInt parses a cell as an integer, tolerating locale separators.
// "NA" and anything unparseable become 0.
func CellInt(cell string) int {
	if IsNA(cell) {
		return 0
	}
	cleaned := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}

// CellPercent returns a cell as a percentage string, mapping "NA" to "0%".
func CellPercent(cell string) string {
	if IsNA(cell) {
		return "0%"
	}
	return strings.TrimSpace(cell)
}

// CellVotes returns a cell as a vote-count string, mapping "NA" to "0".
// The locale formatting of the source value is preserved.
func CellVotes(cell string) string {
	if IsNA(cell) {
		return "0"
	}
	return strings.TrimSpace(cell)
}

// CellText returns a trimmed cell, mapping "NA" and blanks to the literal
// "NA" the contact directories use for missing phones.
func CellText(cell string) string {
	if IsNA(cell) {
		return "NA"
	}
	return strings.TrimSpace(cell)
}
