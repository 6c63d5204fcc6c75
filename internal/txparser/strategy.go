package txparser

import (
	"fjacquet/finstatement/internal/dateutils"
	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/models"
)

// Strategy parses transaction lines out of a transaction-bearing text span.
// Matches are appended in the order they appear in the text; nothing is
// re-sorted by date.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Extract parses the span and returns the transactions found.
	Extract(section string, clock dateutils.Clock) []models.Transaction
}

// Categorizer assigns a category tag to a transaction description. Only the
// generic strategy categorizes; the institution-specific strategies leave
// the category absent.
type Categorizer interface {
	Categorize(description string) (string, bool)
}

type strategyKey struct {
	institution   string
	statementType string
}

// Extractor selects a strategy by (institution, statement type) and runs it
// over the narrowed transaction section. A specific strategy that matches
// nothing falls through to the generic strategy, so an institution whose
// layout drifts from the known format still gets best-effort extraction.
type Extractor struct {
	strategies map[strategyKey]Strategy
	generic    Strategy
	clock      dateutils.Clock
	log        logging.Logger
}

// NewExtractor creates an Extractor with the full strategy table. The
// categorizer is used by the generic strategy only.
func NewExtractor(categorizer Categorizer, clock dateutils.Clock, log logging.Logger) *Extractor {
	return &Extractor{
		strategies: map[strategyKey]Strategy{
			{models.InstitutionChase, models.TypeCreditCard}: chaseStrategy{},
			{models.InstitutionBofA, models.TypeBank}:        bofaStrategy{},
			{models.InstitutionAmex, models.TypeCreditCard}:  amexStrategy{},
		},
		generic: genericStrategy{categorizer: categorizer},
		clock:   clock,
		log:     log,
	}
}

// Extract narrows text to its transaction section and runs the strategy for
// the given institution and statement type.
func (e *Extractor) Extract(text, institution, statementType string) []models.Transaction {
	section := TransactionSection(text)

	strategy, ok := e.strategies[strategyKey{institution, statementType}]
	if !ok {
		strategy = e.generic
	}

	transactions := strategy.Extract(section, e.clock)
	if len(transactions) == 0 && ok {
		e.log.Debug("strategy matched nothing, falling back to generic",
			logging.Field{Key: logging.FieldStrategy, Value: strategy.Name()},
			logging.Field{Key: logging.FieldInstitution, Value: institution})
		strategy = e.generic
		transactions = strategy.Extract(section, e.clock)
	}

	e.log.Debug("transactions extracted",
		logging.Field{Key: logging.FieldStrategy, Value: strategy.Name()},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions
}
