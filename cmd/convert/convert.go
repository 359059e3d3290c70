// Package convert handles statement conversion commands.
package convert

import (
	"os"

	"fjacquet/xlsx-csv/cmd/root"
	"fjacquet/xlsx-csv/internal/categorizer"
	"fjacquet/xlsx-csv/internal/common"
	"fjacquet/xlsx-csv/internal/xlsxparser"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a bank-statement spreadsheet to CSV or JSON",
	Long: `Convert a bank statement export (.xlsx, .xls or delimited text) to the
standardized CSV layout, or to JSON including scan counters and the
detected institution label. The statement layout is inferred from the
data; no institution-specific configuration is needed.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	input := root.SharedFlags.Input
	if input == "" {
		logger.Fatal("Input file is required (use --input)")
	}

	data, err := os.ReadFile(input) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.WithError(err).Fatal("Failed to read input file")
	}

	rules, err := categorizer.LoadRules(root.Cfg.Categorization.RulesFile, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load category rules")
	}
	cat := categorizer.New(rules, root.Cfg.Categorization.DefaultLabel, logger)

	result, err := xlsxparser.ParseWithCategorizer(data, input, cat, logger)
	if err != nil {
		logger.WithError(err).Fatal("Conversion failed")
	}

	if root.SharedFlags.JSON {
		if err := common.WriteResultToJSON(result, root.SharedFlags.Output, logger); err != nil {
			logger.WithError(err).Fatal("Failed to write JSON output")
		}
	} else {
		output := root.SharedFlags.Output
		if output == "" {
			logger.Fatal("Output file is required for CSV (use --output or --json)")
		}
		if err := common.WriteTransactionsToCSV(result.Transactions, output, logger); err != nil {
			logger.WithError(err).Fatal("Failed to write CSV output")
		}
	}

	var incomeCount, expenseCount int
	for _, tx := range result.Transactions {
		if tx.IsIncome() {
			incomeCount++
		} else if tx.IsExpense() {
			expenseCount++
		}
	}

	root.Log.Infof("Converted %d of %d rows from %s (%s): %d income / %d expense, net %s",
		result.ParsedCount, result.TotalRowsScanned, input, result.SourceLabel,
		incomeCount, expenseCount, result.NetAmount())
}
