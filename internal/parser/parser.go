// Package parser assembles the full extraction pipeline: classify the
// statement, extract each field, parse transactions, then score the result.
package parser

import (
	"fjacquet/finstatement/internal/classifier"
	"fjacquet/finstatement/internal/confidence"
	"fjacquet/finstatement/internal/dateutils"
	"fjacquet/finstatement/internal/extractor"
	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/models"
	"fjacquet/finstatement/internal/textutils"
	"fjacquet/finstatement/internal/txparser"
	"fjacquet/finstatement/internal/validation"
)

// StatementParser turns statement text into a StatementResult. Parsing is
// best-effort and never fails: fields that cannot be extracted resolve to
// documented defaults and score low confidence instead.
type StatementParser struct {
	transactions *txparser.Extractor
	clock        dateutils.Clock
	log          logging.Logger
}

// New creates a StatementParser. The categorizer feeds the generic
// transaction strategy. A nil clock means the system clock; a nil logger
// means the process default.
func New(categorizer txparser.Categorizer, clock dateutils.Clock, log logging.Logger) *StatementParser {
	if clock == nil {
		clock = dateutils.SystemClock
	}
	if log == nil {
		log = logging.GetLogger()
	}

	return &StatementParser{
		transactions: txparser.NewExtractor(categorizer, clock, log),
		clock:        clock,
		log:          log,
	}
}

// ParseText runs the pipeline over statement text. The text may be
// anything, including the extraction-failure sentinel a text source emits;
// unusable text simply produces a result full of defaults with low
// confidence scores.
func (p *StatementParser) ParseText(text string) models.StatementResult {
	text = textutils.NormalizeNewlines(text)

	institution := classifier.DetectInstitution(text)
	statementType := classifier.DetectStatementType(text)

	p.log.Debug("statement classified",
		logging.Field{Key: logging.FieldInstitution, Value: institution},
		logging.Field{Key: logging.FieldType, Value: statementType})

	accountInfo := extractor.ExtractAccountInfo(text, institution, statementType)
	period := extractor.ExtractPeriod(text, p.clock)
	balance := extractor.ExtractBalance(text, statementType)
	transactions := p.transactions.Extract(text, institution, statementType)

	result := models.StatementResult{
		AccountInfo:  accountInfo,
		Period:       period,
		Balance:      balance,
		Transactions: transactions,
		Confidence:   confidence.Score(accountInfo, period, balance, transactions, p.clock),
	}

	for _, warning := range validation.Check(result) {
		p.log.Warn(warning,
			logging.Field{Key: logging.FieldInstitution, Value: institution})
	}

	p.log.Info("statement parsed",
		logging.Field{Key: logging.FieldInstitution, Value: institution},
		logging.Field{Key: logging.FieldType, Value: statementType},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return result
}
