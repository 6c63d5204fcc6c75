// Package categorizer assigns spending/income category tags to transaction
// descriptions. Categorization runs through a chain of strategies: custom
// rules loaded from a YAML store first, then the built-in keyword table,
// then (when enabled) an AI model as a last resort.
package categorizer

import (
	"context"

	"fjacquet/finstatement/internal/logging"
)

// Strategy is one categorization approach. Strategies are tried in order;
// the first one that finds a category wins.
type Strategy interface {
	// Categorize attempts to assign a category tag to the description.
	// The boolean reports whether a tag was found.
	Categorize(ctx context.Context, description string) (string, bool, error)

	// Name identifies the strategy in logs.
	Name() string
}

// Categorizer runs a strategy chain over transaction descriptions.
type Categorizer struct {
	strategies []Strategy
	log        logging.Logger
}

// New creates a Categorizer. The rule store and AI client are optional;
// passing nil for either simply leaves that strategy out of the chain. The
// built-in keyword table is always present.
func New(store RuleStore, ai AIClient, log logging.Logger) *Categorizer {
	var strategies []Strategy
	if store != nil {
		strategies = append(strategies, newStoreStrategy(store, log))
	}
	strategies = append(strategies, keywordStrategy{})
	if ai != nil {
		strategies = append(strategies, aiStrategy{client: ai, log: log})
	}

	return &Categorizer{strategies: strategies, log: log}
}

// NewDefault creates a Categorizer with only the built-in keyword table.
func NewDefault(log logging.Logger) *Categorizer {
	return New(nil, nil, log)
}

// Categorize assigns a category tag to a transaction description. The
// boolean reports whether any strategy found a tag; a strategy error is
// logged and the chain moves on.
func (c *Categorizer) Categorize(description string) (string, bool) {
	ctx := context.Background()

	for _, strategy := range c.strategies {
		tag, found, err := strategy.Categorize(ctx, description)
		if err != nil {
			c.log.WithError(err).Warn("categorization strategy failed",
				logging.Field{Key: logging.FieldStrategy, Value: strategy.Name()})
			continue
		}
		if found {
			return tag, true
		}
	}
	return "", false
}
