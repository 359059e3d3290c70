// Package categorizer assigns category labels to transactions using an
// ordered keyword table. Matching is deterministic by construction: rules
// are scanned in authored order and the first keyword hit wins.
package categorizer

import (
	"strings"

	"fjacquet/xlsx-csv/internal/logging"
	"fjacquet/xlsx-csv/internal/models"
)

// DefaultLabel is assigned when no rule matches a description.
const DefaultLabel = "Varie"

// Categorizer matches descriptions against an ordered rule table.
// It holds no mutable state after construction and is safe for concurrent
// use.
type Categorizer struct {
	rules        []models.CategoryRule
	defaultLabel string
	logger       logging.Logger
}

// New creates a Categorizer. Nil rules select the built-in table; an empty
// defaultLabel selects DefaultLabel.
func New(rules []models.CategoryRule, defaultLabel string, logger logging.Logger) *Categorizer {
	if rules == nil {
		rules = DefaultRules()
	}
	if defaultLabel == "" {
		defaultLabel = DefaultLabel
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Categorizer{
		rules:        rules,
		defaultLabel: defaultLabel,
		logger:       logger,
	}
}

// Categorize returns the label of the first rule whose keyword appears in
// the description (case-insensitive substring containment, no word
// boundaries). Later rules are never evaluated once one matches.
func (c *Categorizer) Categorize(description string) string {
	haystack := strings.ToLower(description)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(haystack, keyword) {
				c.logger.WithFields(
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: rule.Name},
				).Debug("Description matched category keyword")
				return rule.Name
			}
		}
	}

	return c.defaultLabel
}

// Rules exposes the active table, mainly for diagnostics and tests.
func (c *Categorizer) Rules() []models.CategoryRule {
	return c.rules
}
