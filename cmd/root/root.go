// Package root contains the root command for the application.
package root

import (
	"fjacquet/xlsx-csv/internal/common"
	"fjacquet/xlsx-csv/internal/config"
	"fjacquet/xlsx-csv/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags holds the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
	JSON   bool
}

var (
	// Log is the shared logrus instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	Cfg *config.Config

	// SharedFlags holds flag values common to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "xlsx-csv",
		Short: "Convert arbitrary bank-statement spreadsheets to CSV and categorize transactions.",
		Long: `xlsx-csv ingests bank statement exports (.xlsx, legacy .xls or delimited
text) whose institution, language, column order, date format and decimal
convention are unknown in advance. It infers the layout from the data
itself, normalizes every row into a signed transaction and assigns a
category from an ordered keyword table.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to xlsx-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Configuration error: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			if delim := cfg.CSV.Delimiter; delim != "" {
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}
)

// Init registers the persistent flags shared by all commands.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.JSON, "json", "j", false, "Write JSON instead of CSV")
}

// GetLogger returns the shared logger wrapped in the logging abstraction
// used by the parsing packages.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
