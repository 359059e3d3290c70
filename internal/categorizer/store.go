package categorizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/xlsx-csv/internal/logging"
	"fjacquet/xlsx-csv/internal/models"

	"gopkg.in/yaml.v3"
)

// LoadRules reads a category rule table from a YAML file. A missing file is
// not an error: the caller falls back to the built-in table, so users only
// create the file when they want overrides.
//
// YAML sequences preserve document order, so the loaded slice keeps the
// authored first-match-wins order. Keywords are lowercased on load because
// matching is lowercase-substring based.
func LoadRules(path string, logger logging.Logger) ([]models.CategoryRule, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	resolved, ok := findRulesFile(path)
	if !ok {
		logger.WithField(logging.FieldFile, path).Debug("No category rules file found, using built-in table")
		return nil, nil
	}

	data, err := os.ReadFile(resolved) // #nosec G304 -- path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("error reading category rules file: %w", err)
	}

	var file models.CategoryRulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing category rules file '%s': %w", resolved, err)
	}

	rules := make([]models.CategoryRule, 0, len(file.Categories))
	for _, rule := range file.Categories {
		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}
		if rule.Name == "" || len(keywords) == 0 {
			continue
		}
		rules = append(rules, models.CategoryRule{Name: rule.Name, Keywords: keywords})
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: resolved},
		logging.Field{Key: logging.FieldCount, Value: len(rules)},
	).Debug("Loaded category rules")

	return rules, nil
}

// findRulesFile checks the configured path and the standard config
// locations for a rules file.
func findRulesFile(path string) (string, bool) {
	if path == "" {
		path = "categories.yaml"
	}
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
		return "", false
	}

	locations := []string{
		path,
		filepath.Join("config", path),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "xlsx-csv", path))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, true
		}
	}
	return "", false
}
