package models

// CategoryRule pairs a category label with the keywords that select it.
// Rules live in a slice, never a map: matching is first-rule-wins and the
// authored order must survive loading and iteration.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoryRulesFile is the on-disk YAML layout for rule overrides.
type CategoryRulesFile struct {
	Categories []CategoryRule `yaml:"categories"`
}
