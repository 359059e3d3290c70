package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/xlsx-csv/cmd/categorize"
	"fjacquet/xlsx-csv/cmd/convert"
	"fjacquet/xlsx-csv/cmd/root"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables before any logging happens, then set the
	// global level so every logger created later inherits it.
	loadEnvSilently()
	logrus.SetLevel(resolveLogLevel())

	root.Init()
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
}

// loadEnvSilently loads a .env file without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func resolveLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
