package xlsxparser

import (
	"strings"

	"fjacquet/xlsx-csv/internal/currencyutils"
	"fjacquet/xlsx-csv/internal/grid"
)

// Unmapped marks a column role that was not resolved.
const Unmapped = -1

// defaultAmountColumn is the last-resort amount index when neither the
// header nor the first data row yields anything usable.
const defaultAmountColumn = 2

// ColumnMapping assigns semantic roles to column indices. It is a value:
// every detection step takes a mapping and returns an updated copy, which
// keeps the precedence rules explicit and each step testable in isolation.
type ColumnMapping struct {
	Date         int
	DateValuta   int
	Description  int
	ConceptPart  int
	MovementPart int
	Amount       int
	Credit       int
	Debit        int
}

func newColumnMapping() ColumnMapping {
	return ColumnMapping{
		Date:         Unmapped,
		DateValuta:   Unmapped,
		Description:  Unmapped,
		ConceptPart:  Unmapped,
		MovementPart: Unmapped,
		Amount:       Unmapped,
		Credit:       Unmapped,
		Debit:        Unmapped,
	}
}

// HasSplitColumns reports whether direction comes from separate
// credit/debit columns instead of a signed amount.
func (m ColumnMapping) HasSplitColumns() bool {
	return m.Credit != Unmapped || m.Debit != Unmapped
}

// hasAmountSource reports whether any way of reading a magnitude exists.
func (m ColumnMapping) hasAmountSource() bool {
	return m.Amount != Unmapped || m.HasSplitColumns()
}

// Column keyword tables. Matching is substring containment on lowercased,
// trimmed header text unless noted as exact.
var (
	dateExactHeaders = []string{"data", "date"}
	descKeywords     = []string{"descrizione", "description", "causale", "beneficiario", "dettagl"}
	amountExact      = []string{"importo", "amount", "importe"}
	creditKeywords   = []string{"avere", "credit", "entrat", "accredit"}
	debitKeywords    = []string{"dare", "debit", "uscit", "addebit"}
)

// mapHeaderRow resolves column roles from a header row, applying the full
// precedence chain: posting date over value date, institution-specific
// concept/movement parts, then description, amount and split columns.
func mapHeaderRow(header grid.Row) ColumnMapping {
	m := newColumnMapping()

	lower := make([]string, len(header))
	for i, cell := range header {
		lower[i] = cell.Lower()
	}

	m = m.mapDateColumns(lower)
	m = m.mapDescriptionColumns(lower)
	m = m.mapAmountColumns(lower)
	return m
}

// mapDateColumns prefers the posting date ("data"/"date" exactly, or any
// "contabile" column) over the value date ("valuta"). A generic date-like
// column is accepted only when no posting date exists, and the value date
// itself is the final fallback.
func (m ColumnMapping) mapDateColumns(lower []string) ColumnMapping {
	for i, text := range lower {
		if text == "" {
			continue
		}
		if m.DateValuta == Unmapped && strings.Contains(text, "valuta") {
			m.DateValuta = i
			continue
		}
		if m.Date == Unmapped && (exactMatch(text, dateExactHeaders) || strings.Contains(text, "contabile")) {
			m.Date = i
		}
	}

	if m.Date == Unmapped {
		for i, text := range lower {
			if i == m.DateValuta {
				continue
			}
			if containsAny(text, dateHeaderKeywords) {
				m.Date = i
				break
			}
		}
	}

	if m.Date == Unmapped {
		m.Date = m.DateValuta
	}
	return m
}

// mapDescriptionColumns resolves the description column, including the
// split "concetto" + "movimento" layout some institutions export. When no
// plain description column exists, the concept part stands in for it.
func (m ColumnMapping) mapDescriptionColumns(lower []string) ColumnMapping {
	for i, text := range lower {
		if m.ConceptPart == Unmapped && (text == "concetto" || text == "concept") {
			m.ConceptPart = i
		}
		if m.MovementPart == Unmapped && (text == "movimento" || text == "movement") {
			m.MovementPart = i
		}
		if m.Description == Unmapped && containsAny(text, descKeywords) {
			m.Description = i
		}
	}

	if m.Description == Unmapped && m.ConceptPart != Unmapped {
		m.Description = m.ConceptPart
	}
	return m
}

// mapAmountColumns resolves the signed-amount column and the split
// credit/debit pair.
func (m ColumnMapping) mapAmountColumns(lower []string) ColumnMapping {
	for i, text := range lower {
		if text == "" {
			continue
		}
		if m.Amount == Unmapped && (exactMatch(text, amountExact) || strings.Contains(text, "euro")) {
			m.Amount = i
		}
		if m.Credit == Unmapped && (containsAny(text, creditKeywords) || text == "+") {
			m.Credit = i
		}
		if m.Debit == Unmapped && (containsAny(text, debitKeywords) || text == "-") {
			m.Debit = i
		}
	}
	return m
}

// applyCollisionRule discards the credit/debit pair when both resolved to
// the same index. A shared index means the header scan matched shared text
// in one column, not two distinct directions; fabricating transactions from
// a duplicated column is worse than falling back to signed-amount handling.
func (m ColumnMapping) applyCollisionRule() ColumnMapping {
	if m.Credit != Unmapped && m.Credit == m.Debit {
		m.Credit = Unmapped
		m.Debit = Unmapped
	}
	return m
}

// applyDescriptionFallback defaults the description to the column right
// after the date, the layout virtually every statement uses.
func (m ColumnMapping) applyDescriptionFallback() ColumnMapping {
	if m.Description == Unmapped && m.Date != Unmapped {
		m.Description = m.Date + 1
	}
	return m
}

// sniffAmountColumn inspects the first data row when no amount source was
// mapped: the first column (excluding date and description) holding a
// number or a monetary-looking string becomes the amount. If nothing
// qualifies, a fixed default index applies.
func (m ColumnMapping) sniffAmountColumn(firstData grid.Row) ColumnMapping {
	if m.hasAmountSource() {
		return m
	}

	for i, cell := range firstData {
		if i == m.Date || i == m.Description {
			continue
		}
		if cell.IsNumber() || currencyutils.LooksMonetary(cell.Trimmed()) {
			m.Amount = i
			return m
		}
	}

	m.Amount = defaultAmountColumn
	return m
}

func exactMatch(text string, values []string) bool {
	for _, v := range values {
		if text == v {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
