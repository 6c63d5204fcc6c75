package categorizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"fjacquet/finstatement/internal/logging"
)

// CategoryRule is one user-defined categorization rule: any description
// containing one of the keywords gets the category tag.
type CategoryRule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// RuleStore loads user-defined categorization rules.
type RuleStore interface {
	LoadRules() ([]CategoryRule, error)
}

// YAMLRuleStore reads categorization rules from a YAML file.
type YAMLRuleStore struct {
	RulesFile string
}

// NewYAMLRuleStore creates a rule store backed by the given YAML file.
// An empty filename resolves to "categories.yaml".
func NewYAMLRuleStore(rulesFile string) *YAMLRuleStore {
	if rulesFile == "" {
		rulesFile = "categories.yaml"
	}
	return &YAMLRuleStore{RulesFile: rulesFile}
}

// findRulesFile looks for the rules file in standard locations: the path as
// given, a config/ subdirectory, then the user config directory.
func (s *YAMLRuleStore) findRulesFile() (string, error) {
	if filepath.IsAbs(s.RulesFile) {
		if _, err := os.Stat(s.RulesFile); err == nil {
			return s.RulesFile, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		s.RulesFile,
		filepath.Join("config", s.RulesFile),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "finstatement", s.RulesFile))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadRules loads rules from the YAML file. A missing file is not an
// error; it just means no custom rules.
func (s *YAMLRuleStore) LoadRules() ([]CategoryRule, error) {
	path, err := s.findRulesFile()
	if err != nil {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read rules file %s: %w", path, err)
	}

	var rules []CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("could not parse rules file %s: %w", path, err)
	}
	return rules, nil
}

// SaveRules writes rules back to the YAML file, creating it if needed.
func (s *YAMLRuleStore) SaveRules(rules []CategoryRule) error {
	data, err := yaml.Marshal(rules)
	if err != nil {
		return fmt.Errorf("could not marshal rules: %w", err)
	}

	path := s.RulesFile
	if found, err := s.findRulesFile(); err == nil {
		path = found
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("could not write rules file %s: %w", path, err)
	}
	return nil
}

// storeStrategy matches descriptions against user-defined rules. Rules are
// loaded once, lazily, and keyword matching is case-insensitive substring
// matching.
type storeStrategy struct {
	store  RuleStore
	log    logging.Logger
	rules  []CategoryRule
	loaded bool
}

func newStoreStrategy(store RuleStore, log logging.Logger) *storeStrategy {
	return &storeStrategy{store: store, log: log}
}

func (s *storeStrategy) Name() string { return "rule_store" }

func (s *storeStrategy) Categorize(_ context.Context, description string) (string, bool, error) {
	if !s.loaded {
		rules, err := s.store.LoadRules()
		if err != nil {
			return "", false, err
		}
		s.rules = rules
		s.loaded = true
	}

	lower := strings.ToLower(description)
	for _, rule := range s.rules {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(lower, strings.ToLower(keyword)) {
				return rule.Category, true, nil
			}
		}
	}
	return "", false, nil
}
