package xlsxparser

import (
	"errors"
	"regexp"
	"strings"

	"fjacquet/xlsx-csv/internal/currencyutils"
	"fjacquet/xlsx-csv/internal/dateutils"
	"fjacquet/xlsx-csv/internal/grid"
	"fjacquet/xlsx-csv/internal/models"
	"fjacquet/xlsx-csv/internal/parsererror"

	"github.com/shopspring/decimal"
)

// placeholderDescription is used when a row carries no usable text at all.
const placeholderDescription = "Transazione"

// minMagnitude is the cutoff below which a resolved amount is treated as
// noise and the row is skipped.
var minMagnitude = decimal.New(1, -2) // 0.01

// purelyNumeric matches cell text that is only a number, which never makes
// a useful description.
var purelyNumeric = regexp.MustCompile(`^\d+([,.]\d*)?$`)

// errNoMagnitude marks rows whose amount cells resolve below the minimum
// magnitude. It only ever travels inside a ParseError.
var errNoMagnitude = errors.New("no amount above the minimum magnitude")

// normalizeRow turns one data row into a transaction. A ParseError means
// the row must be skipped (no resolvable magnitude); it carries the raw
// cell text for diagnostics and never aborts the conversion. today supplies
// the default date so one invocation is internally consistent.
func normalizeRow(row grid.Row, m ColumnMapping, today string) (models.Transaction, error) {
	amount, txType, err := resolveAmount(row, m)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		Date:        decodeDate(row.At(m.Date), today),
		Description: assembleDescription(row, m),
		Amount:      amount,
		Type:        txType,
	}, nil
}

// decodeDate resolves a date cell in priority order: D/M/Y or ISO string,
// then spreadsheet serial number, then the invocation date as default.
func decodeDate(cell grid.Cell, today string) string {
	switch cell.Kind {
	case grid.Text:
		if iso, ok := dateutils.ToISO(cell.Trimmed()); ok {
			return iso
		}
	case grid.Number:
		return dateutils.SerialToISO(cell.Num)
	}
	return today
}

// decodeAmount resolves a cell's magnitude: numbers as-is, strings through
// the locale-inferring parser, everything else zero.
func decodeAmount(cell grid.Cell) decimal.Decimal {
	switch cell.Kind {
	case grid.Number:
		return decimal.NewFromFloat(cell.Num)
	case grid.Text:
		return currencyutils.ParseLenient(cell.Trimmed())
	default:
		return decimal.Zero
	}
}

// resolveAmount extracts magnitude and direction. With split credit/debit
// columns the non-zero side decides the direction; with a single amount
// column the sign does. Rows below the magnitude threshold yield a
// ParseError identifying the offending cells.
func resolveAmount(row grid.Row, m ColumnMapping) (decimal.Decimal, models.TransactionType, error) {
	if m.HasSplitColumns() {
		credit := decodeAmount(row.At(m.Credit)).Abs()
		debit := decodeAmount(row.At(m.Debit)).Abs()

		switch {
		case credit.GreaterThan(minMagnitude):
			return credit, models.TypeIncome, nil
		case debit.GreaterThan(minMagnitude):
			return debit, models.TypeExpense, nil
		default:
			return decimal.Zero, "", &parsererror.ParseError{
				Parser: "xlsxparser",
				Field:  "credit/debit",
				Value:  row.At(m.Credit).Trimmed() + "/" + row.At(m.Debit).Trimmed(),
				Err:    errNoMagnitude,
			}
		}
	}

	raw := decodeAmount(row.At(m.Amount))
	magnitude := raw.Abs()
	if magnitude.LessThan(minMagnitude) {
		return decimal.Zero, "", &parsererror.ParseError{
			Parser: "xlsxparser",
			Field:  "amount",
			Value:  row.At(m.Amount).Trimmed(),
			Err:    errNoMagnitude,
		}
	}

	txType := models.TypeIncome
	if raw.IsNegative() {
		txType = models.TypeExpense
	}
	return magnitude, txType, nil
}

// assembleDescription builds the transaction text in priority order:
// concept+movement parts, the mapped description column, the first
// non-numeric cell longer than three characters, then a placeholder.
// The result is capped at the model's maximum length.
func assembleDescription(row grid.Row, m ColumnMapping) string {
	if desc, ok := compositeDescription(row, m); ok {
		return truncate(desc)
	}

	if m.Description != Unmapped {
		if text := row.At(m.Description).Trimmed(); text != "" {
			return truncate(text)
		}
	}

	for _, cell := range row {
		text := cell.Trimmed()
		if len(text) > 3 && !purelyNumeric.MatchString(text) {
			return truncate(text)
		}
	}

	return placeholderDescription
}

// compositeDescription joins the concept and movement parts some
// institutions split across two columns. Either part alone is enough.
func compositeDescription(row grid.Row, m ColumnMapping) (string, bool) {
	if m.ConceptPart == Unmapped && m.MovementPart == Unmapped {
		return "", false
	}

	concept := row.At(m.ConceptPart).Trimmed()
	movement := row.At(m.MovementPart).Trimmed()

	switch {
	case concept != "" && movement != "":
		return concept + " - " + movement, true
	case concept != "":
		return concept, true
	case movement != "":
		return movement, true
	default:
		return "", false
	}
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= models.MaxDescriptionLength {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(runes[:models.MaxDescriptionLength]))
}
