// Package grid turns raw spreadsheet bytes into a uniform 2-D grid of cells.
// It is the only place that knows about concrete workbook formats; everything
// above it works on rows of typed cells.
package grid

import (
	"math"
	"strconv"
	"strings"
)

// CellKind classifies a cell's content.
type CellKind int

const (
	// Blank is an empty or whitespace-only cell.
	Blank CellKind = iota
	// Text is a non-numeric string cell.
	Text
	// Number is a cell whose content parses as a plain float
	// (spreadsheet serial dates arrive this way).
	Number
)

// Cell is one spreadsheet cell. Value always holds the original string as
// read from the workbook; Num is only meaningful when Kind is Number.
type Cell struct {
	Kind  CellKind
	Value string
	Num   float64
}

// Row is an ordered sequence of cells.
type Row []Cell

// Grid is the decoded spreadsheet: ordered rows of cells. It is never
// mutated after decoding.
type Grid []Row

// NewCell classifies a raw string value into a typed cell. Workbook readers
// hand back strings for every cell, so numeric detection happens here.
// ParseFloat accepts "nan" and "inf" spellings, which no spreadsheet cell
// legitimately holds and which decimal arithmetic cannot represent, so
// non-finite values stay Text and flow through the lenient string parser.
func NewCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: Blank, Value: raw}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return Cell{Kind: Number, Value: raw, Num: n}
	}
	return Cell{Kind: Text, Value: raw}
}

// IsBlank returns true for empty or whitespace-only cells.
func (c Cell) IsBlank() bool {
	return c.Kind == Blank
}

// IsNumber returns true when the cell content is a plain number.
func (c Cell) IsNumber() bool {
	return c.Kind == Number
}

// Trimmed returns the cell text with surrounding whitespace removed.
func (c Cell) Trimmed() string {
	return strings.TrimSpace(c.Value)
}

// Lower returns the trimmed cell text lowercased, the form every header
// heuristic operates on.
func (c Cell) Lower() string {
	return strings.ToLower(strings.TrimSpace(c.Value))
}

// At returns the cell at index i, or a blank cell when the row is shorter.
// Statement rows are frequently ragged, so out-of-range access is normal.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{Kind: Blank}
	}
	return r[i]
}

// rowFromStrings builds a Row by classifying each raw string value.
func rowFromStrings(values []string) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = NewCell(v)
	}
	return row
}
