// Package xlsxparser infers the structure of an arbitrary bank-statement
// spreadsheet and normalizes it into transactions. The institution, column
// order, date format and decimal convention are unknown at parse time and
// are inferred from the data itself.
//
// Parsing is best-effort by design: rows with undecodable fields are
// defaulted or skipped, never reported individually. Only an input that
// cannot be decoded into a grid at all is a fatal error.
package xlsxparser

import (
	"errors"

	"fjacquet/xlsx-csv/internal/categorizer"
	"fjacquet/xlsx-csv/internal/dateutils"
	"fjacquet/xlsx-csv/internal/grid"
	"fjacquet/xlsx-csv/internal/logging"
	"fjacquet/xlsx-csv/internal/models"
	"fjacquet/xlsx-csv/internal/parsererror"
)

// Parse decodes raw spreadsheet bytes and normalizes them into a
// ParseResult using the default category rules. The filename is optional
// and only feeds the institution detector.
func Parse(data []byte, filename string, logger logging.Logger) (models.ParseResult, error) {
	return ParseWithCategorizer(data, filename, nil, logger)
}

// ParseWithCategorizer is Parse with a caller-supplied categorizer, for
// callers that load custom rule tables. A nil categorizer falls back to the
// built-in rules.
//
// The function is pure per invocation: no state survives the call and the
// same bytes always produce the same result, so concurrent invocations need
// no coordination.
func ParseWithCategorizer(data []byte, filename string, cat *categorizer.Categorizer, logger logging.Logger) (models.ParseResult, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if cat == nil {
		cat = categorizer.New(nil, "", logger)
	}

	g, err := grid.Decode(data)
	if err != nil {
		// The grid layer does not know the filename; attach it here so
		// the caller's error message names the offending input.
		var invErr *parsererror.InvalidFormatError
		if errors.As(err, &invErr) && invErr.FilePath == "" {
			invErr.FilePath = filename
		}
		logger.WithError(err).Error("Failed to decode workbook")
		return models.ParseResult{}, err
	}

	result := models.ParseResult{
		Transactions: []models.Transaction{},
		SourceLabel:  detectSourceLabel(g, filename),
	}

	mapping, dataStart := resolveLayout(g, logger)
	logger.WithFields(
		logging.Field{Key: logging.FieldSource, Value: result.SourceLabel},
		logging.Field{Key: "data_start", Value: dataStart},
		logging.Field{Key: "date_col", Value: mapping.Date},
		logging.Field{Key: "desc_col", Value: mapping.Description},
		logging.Field{Key: "amount_col", Value: mapping.Amount},
		logging.Field{Key: "credit_col", Value: mapping.Credit},
		logging.Field{Key: "debit_col", Value: mapping.Debit},
	).Debug("Resolved statement layout")

	today := dateutils.Today()
	for i := dataStart; i < len(g); i++ {
		result.TotalRowsScanned++

		tx, err := normalizeRow(g[i], mapping, today)
		if err != nil {
			logger.WithError(err).WithField(logging.FieldRow, i).Debug("Skipping row without usable amount")
			continue
		}

		tx.Category = cat.Categorize(tx.Description)
		result.Transactions = append(result.Transactions, tx)
	}

	result.ParsedCount = len(result.Transactions)
	logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: result.ParsedCount},
		logging.Field{Key: "rows_scanned", Value: result.TotalRowsScanned},
	).Info("Statement parsed")

	return result, nil
}

// resolveLayout locates the header and builds the column mapping, falling
// back to cell-shape heuristics when no header row exists. The amount
// column is sniffed from the first data row as the last step so that the
// fallback path benefits from it too.
func resolveLayout(g grid.Grid, logger logging.Logger) (ColumnMapping, int) {
	var mapping ColumnMapping
	var dataStart int

	if headerRow, found := locateHeader(g); found {
		mapping = mapHeaderRow(g[headerRow]).
			applyCollisionRule().
			applyDescriptionFallback()
		dataStart = headerRow + 1
	} else {
		logger.Debug("No header row found, applying no-header fallback")
		mapping, dataStart = applyNoHeaderFallback(g)
	}

	if dataStart < len(g) {
		mapping = mapping.sniffAmountColumn(g[dataStart])
	} else if !mapping.hasAmountSource() {
		mapping.Amount = defaultAmountColumn
	}

	return mapping, dataStart
}
