package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestInitializeConfigDefaults(t *testing.T) {
	// Run from an empty directory so no config.yaml is picked up.
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.True(t, cfg.CSV.IncludeHeaders)
	assert.Equal(t, "Varie", cfg.Categorization.DefaultLabel)
	assert.Equal(t, "categories.yaml", cfg.Categorization.RulesFile)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XLSX_LOG_LEVEL", "debug")
	t.Setenv("XLSX_CSV_DELIMITER", ";")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{}
	valid.Log.Level = "info"
	valid.Log.Format = "text"
	valid.CSV.Delimiter = ","
	assert.NoError(t, validateConfig(valid))

	badLevel := *valid
	badLevel.Log.Level = "verbose"
	assert.Error(t, validateConfig(&badLevel))

	badFormat := *valid
	badFormat.Log.Format = "xml"
	assert.Error(t, validateConfig(&badFormat))

	badDelimiter := *valid
	badDelimiter.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(&badDelimiter))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
