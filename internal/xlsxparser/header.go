package xlsxparser

import (
	"fjacquet/xlsx-csv/internal/dateutils"
	"fjacquet/xlsx-csv/internal/grid"
)

const (
	// headerScanRows is how many leading rows are searched for a header.
	headerScanRows = 10
	// fallbackScanRows is how many leading rows the no-header fallback
	// inspects for date-shaped cells.
	fallbackScanRows = 5
)

// Keywords that identify a header row. A row qualifies when any cell
// contains a date-ish keyword or any cell contains a description-ish one.
var (
	dateHeaderKeywords = []string{"data", "date", "valuta", "contabile", "operazione"}
	descHeaderKeywords = []string{
		"descrizione", "description", "causale", "beneficiario",
		"movimento", "moviment", "dettagl", "operazione", "concetto",
	}
)

// locateHeader scans the first rows of the grid for a header row.
// Data starts at the row after it. found is false when nothing in the
// window looks like a header, which hands control to the no-header fallback.
func locateHeader(g grid.Grid) (headerRow int, found bool) {
	limit := min(headerScanRows, len(g))
	for i := 0; i < limit; i++ {
		if rowLooksLikeHeader(g[i]) {
			return i, true
		}
	}
	return 0, false
}

func rowLooksLikeHeader(row grid.Row) bool {
	for _, cell := range row {
		text := cell.Lower()
		if text == "" {
			continue
		}
		if containsAny(text, dateHeaderKeywords) || containsAny(text, descHeaderKeywords) {
			return true
		}
	}
	return false
}

// applyNoHeaderFallback handles statements exported without any header row.
// The first cell that is either a plausible serial date or a D/M/Y string
// fixes both the date column and the data-start row (data begins AT that
// row, not after it). Description defaults to the next column. When even
// that fails, hard default indices apply.
func applyNoHeaderFallback(g grid.Grid) (ColumnMapping, int) {
	m := newColumnMapping()

	limit := min(fallbackScanRows, len(g))
	for i := 0; i < limit; i++ {
		for col, cell := range g[i] {
			if looksLikeDateCell(cell) {
				m.Date = col
				m.Description = col + 1
				return m, i
			}
		}
	}

	m.Date = 0
	m.Description = 1
	m.Amount = defaultAmountColumn
	return m, 0
}

func looksLikeDateCell(cell grid.Cell) bool {
	if cell.IsNumber() {
		return dateutils.LooksLikeSerial(cell.Num)
	}
	return dateutils.IsDMYString(cell.Trimmed())
}
