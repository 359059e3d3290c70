package xlsxparser

import (
	"strings"

	"fjacquet/xlsx-csv/internal/grid"
)

// DefaultSourceLabel is returned when no known institution is recognized.
const DefaultSourceLabel = "Generico"

// institutionPatterns maps identifying substrings to institution labels.
// Order matters: the first matching entry wins, so more specific names come
// before generic ones. The label is informational only and never changes
// how the statement is parsed.
var institutionPatterns = []struct {
	Keyword string
	Label   string
}{
	{"intesa", "Intesa Sanpaolo"},
	{"sanpaolo", "Intesa Sanpaolo"},
	{"unicredit", "UniCredit"},
	{"fineco", "Fineco"},
	{"bancoposta", "BancoPosta"},
	{"poste italiane", "BancoPosta"},
	{"bnl", "BNL"},
	{"mps", "Monte dei Paschi"},
	{"paschi", "Monte dei Paschi"},
	{"credem", "Credem"},
	{"mediolanum", "Banca Mediolanum"},
	{"sella", "Banca Sella"},
	{"bper", "BPER"},
	{"n26", "N26"},
	{"revolut", "Revolut"},
	{"ing direct", "ING"},
	{"santander", "Santander"},
	{"bbva", "BBVA"},
}

// detectSourceLabel labels the likely source institution from the filename
// plus all cell text. Pure and stateless; first match wins.
func detectSourceLabel(g grid.Grid, filename string) string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(filename))
	for _, row := range g {
		for _, cell := range row {
			if !cell.IsBlank() {
				sb.WriteByte(' ')
				sb.WriteString(cell.Lower())
			}
		}
	}
	haystack := sb.String()

	for _, p := range institutionPatterns {
		if strings.Contains(haystack, p.Keyword) {
			return p.Label
		}
	}
	return DefaultSourceLabel
}
