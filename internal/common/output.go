// Package common provides the standardized output writers shared by all
// commands.
package common

import (
	"encoding/json"
	"fmt"
	"os"

	"fjacquet/xlsx-csv/internal/logging"
	"fjacquet/xlsx-csv/internal/models"

	"github.com/gocarina/gocsv"
)

// Delimiter is the CSV output delimiter. Configurable because several
// downstream tools expect semicolon-separated files.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// WriteTransactionsToCSV writes transactions to a CSV file in the
// standardized layout. Every command uses this writer so output stays
// uniform regardless of the input format.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool writes to user-provided paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close CSV file")
		}
	}()

	writer := gocsv.DefaultCSVWriter(file)
	writer.Comma = Delimiter
	if err := gocsv.MarshalCSV(&transactions, writer); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}

// WriteResultToJSON writes the full parse result, counts included, as
// indented JSON. An empty path writes to stdout.
func WriteResultToJSON(result models.ParseResult, jsonFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling result: %w", err)
	}
	data = append(data, '\n')

	if jsonFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	logger.WithField(logging.FieldOutputFile, jsonFile).Info("Writing parse result to JSON file")
	if err := os.WriteFile(jsonFile, data, 0o600); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}
	return nil
}
