package xlsxparser

import (
	"testing"

	"fjacquet/xlsx-csv/internal/grid"

	"github.com/stretchr/testify/assert"
)

func headerRow(cells ...string) grid.Row {
	row := make(grid.Row, len(cells))
	for i, c := range cells {
		row[i] = grid.NewCell(c)
	}
	return row
}

func TestMapHeaderRowSimple(t *testing.T) {
	m := mapHeaderRow(headerRow("Data", "Descrizione", "Importo"))

	assert.Equal(t, 0, m.Date)
	assert.Equal(t, 1, m.Description)
	assert.Equal(t, 2, m.Amount)
	assert.Equal(t, Unmapped, m.Credit)
	assert.Equal(t, Unmapped, m.Debit)
}

func TestMapHeaderRowSplitColumns(t *testing.T) {
	m := mapHeaderRow(headerRow("Data", "Causale", "Dare", "Avere"))

	assert.Equal(t, 0, m.Date)
	assert.Equal(t, 1, m.Description)
	assert.Equal(t, 3, m.Credit)
	assert.Equal(t, 2, m.Debit)
	assert.True(t, m.HasSplitColumns())
}

func TestMapHeaderRowPrefersPostingDate(t *testing.T) {
	// The posting date ("contabile") wins over the value date ("valuta")
	// regardless of column order.
	m := mapHeaderRow(headerRow("Data valuta", "Data contabile", "Descrizione", "Importo"))

	assert.Equal(t, 1, m.Date)
	assert.Equal(t, 0, m.DateValuta)
}

func TestMapHeaderRowValutaOnlyFallsBack(t *testing.T) {
	m := mapHeaderRow(headerRow("Valuta", "Descrizione", "Importo"))

	assert.Equal(t, 0, m.DateValuta)
	assert.Equal(t, 0, m.Date, "value date is the last-resort date column")
}

func TestMapHeaderRowConceptMovement(t *testing.T) {
	m := mapHeaderRow(headerRow("Data", "Concetto", "Movimento", "Importe"))

	assert.Equal(t, 1, m.ConceptPart)
	assert.Equal(t, 2, m.MovementPart)
	assert.Equal(t, 1, m.Description, "concept stands in for the missing description")
	assert.Equal(t, 3, m.Amount)
}

func TestMapHeaderRowEnglish(t *testing.T) {
	m := mapHeaderRow(headerRow("Date", "Description", "Debit", "Credit"))

	assert.Equal(t, 0, m.Date)
	assert.Equal(t, 1, m.Description)
	assert.Equal(t, 2, m.Debit)
	assert.Equal(t, 3, m.Credit)
}

func TestMapHeaderRowPlusMinus(t *testing.T) {
	m := mapHeaderRow(headerRow("Data", "Causale", "+", "-"))

	assert.Equal(t, 2, m.Credit)
	assert.Equal(t, 3, m.Debit)
}

func TestApplyCollisionRule(t *testing.T) {
	// "Dare/Avere" matches both keyword sets on the same column.
	m := mapHeaderRow(headerRow("Data", "Descrizione", "Dare/Avere"))
	assert.Equal(t, m.Credit, m.Debit)

	m = m.applyCollisionRule()
	assert.Equal(t, Unmapped, m.Credit)
	assert.Equal(t, Unmapped, m.Debit)
	assert.False(t, m.HasSplitColumns())
}

func TestApplyCollisionRuleKeepsDistinctColumns(t *testing.T) {
	m := mapHeaderRow(headerRow("Data", "Causale", "Dare", "Avere")).applyCollisionRule()

	assert.Equal(t, 3, m.Credit)
	assert.Equal(t, 2, m.Debit)
}

func TestApplyDescriptionFallback(t *testing.T) {
	m := newColumnMapping()
	m.Date = 1

	m = m.applyDescriptionFallback()
	assert.Equal(t, 2, m.Description, "defaults to the column after the date")
}

func TestSniffAmountColumn(t *testing.T) {
	tests := []struct {
		name     string
		row      grid.Row
		expected int
	}{
		{
			name:     "numeric cell",
			row:      headerRow("12/03/2024", "Spesa supermercato", "-45.5"),
			expected: 2,
		},
		{
			name:     "monetary string",
			row:      headerRow("12/03/2024", "Spesa supermercato", "-45,50"),
			expected: 2,
		},
		{
			name:     "nothing monetary falls back to fixed index",
			row:      headerRow("12/03/2024", "solo testo", "altro testo lungo"),
			expected: defaultAmountColumn,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newColumnMapping()
			m.Date = 0
			m.Description = 1

			m = m.sniffAmountColumn(tc.row)
			assert.Equal(t, tc.expected, m.Amount)
		})
	}
}

func TestSniffAmountColumnSkipsWhenMapped(t *testing.T) {
	m := newColumnMapping()
	m.Date = 0
	m.Credit = 3

	m = m.sniffAmountColumn(headerRow("x", "y", "100"))
	assert.Equal(t, Unmapped, m.Amount, "split columns already provide the magnitude")
}
