// Package categorize handles transaction categorization commands.
package categorize

import (
	"fjacquet/xlsx-csv/cmd/root"
	"fjacquet/xlsx-csv/internal/categorizer"

	"github.com/spf13/cobra"
)

var description string

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description",
	Long: `Categorize a single transaction description using the ordered keyword
table. Useful for checking which rule a description would hit before
editing the rules file.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	rules, err := categorizer.LoadRules(root.Cfg.Categorization.RulesFile, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load category rules")
	}

	cat := categorizer.New(rules, root.Cfg.Categorization.DefaultLabel, logger)
	root.Log.Infof("Category: %s", cat.Categorize(description))
}
