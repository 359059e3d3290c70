package xlsxparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSourceLabelFromFilename(t *testing.T) {
	g := gridFromStrings([]string{"Data", "Descrizione", "Importo"})

	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"intesa", "estratto_IntesaSanpaolo_2024.xlsx", "Intesa Sanpaolo"},
		{"fineco", "fineco-marzo.xls", "Fineco"},
		{"revolut", "Revolut_statement.csv", "Revolut"},
		{"unknown", "movimenti.xlsx", DefaultSourceLabel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, detectSourceLabel(g, tc.filename))
		})
	}
}

func TestDetectSourceLabelFromCellText(t *testing.T) {
	g := gridFromStrings(
		[]string{"Estratto conto", "", ""},
		[]string{"UniCredit S.p.A.", "", ""},
		[]string{"Data", "Descrizione", "Importo"},
	)

	assert.Equal(t, "UniCredit", detectSourceLabel(g, "statement.xlsx"))
}

func TestDetectSourceLabelFirstMatchWins(t *testing.T) {
	// Both patterns are present; the earlier table entry decides.
	g := gridFromStrings([]string{"Conto Intesa Sanpaolo gestito via Revolut"})

	assert.Equal(t, "Intesa Sanpaolo", detectSourceLabel(g, ""))
}

func TestDetectSourceLabelEmptyGrid(t *testing.T) {
	assert.Equal(t, DefaultSourceLabel, detectSourceLabel(nil, ""))
}
