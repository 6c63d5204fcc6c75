// Package models provides the data structures shared by the extraction
// pipeline. Every value here is created once per parse call and treated as
// immutable afterwards; there is no state shared between calls.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are rendered as plain JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// UnknownAccountNumber is the default account number when no masked-number
// pattern matched.
const UnknownAccountNumber = "Unknown"

// Institution identifiers produced by the institution classifier. Only the
// ones with dedicated transaction strategies get named constants; the full
// table lives in the classifier package.
const (
	InstitutionChase   = "chase"
	InstitutionBofA    = "bofa"
	InstitutionAmex    = "amex"
	InstitutionUnknown = "unknown"
)

// Statement type identifiers produced by the statement type classifier.
const (
	TypeBank       = "bank"
	TypeCreditCard = "credit_card"
	TypeInvestment = "investment"
	TypeUnknown    = "unknown"
)

// AccountInfo holds the account identity extracted from a statement.
// Number defaults to UnknownAccountNumber; Name is nil when no holder-name
// pattern matched. Institution and Type are copied through from the
// classifiers, never re-derived.
type AccountInfo struct {
	Number      string  `json:"number"`
	Name        *string `json:"name"`
	Institution string  `json:"institution"`
	Type        string  `json:"type"`
}

// Period is the statement date range. No ordering between Start and End is
// enforced; consistency checks are the validation package's concern.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Balance holds the statement balances. Closing defaults to zero when no
// pattern matched; Opening is nil when unresolved.
type Balance struct {
	Closing decimal.Decimal  `json:"closing"`
	Opening *decimal.Decimal `json:"opening"`
}

// Transaction is a single statement line item. Amount is signed: negative
// for debits and charges, positive for credits, payments and deposits.
// Balance is the running balance when the statement shows one. Category is
// nil unless the generic extraction path categorized the description.
type Transaction struct {
	Date        time.Time        `json:"date"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Balance     *decimal.Decimal `json:"balance"`
	Category    *string          `json:"category"`
}

// Confidence map keys.
const (
	ConfidenceAccountInfo  = "account_info"
	ConfidencePeriod       = "period"
	ConfidenceBalance      = "balance"
	ConfidenceTransactions = "transactions"
	ConfidenceOverall      = "overall"
)

// ConfidenceMap maps a field name to a heuristic reliability score in
// [0.0, 1.0]. It is an indicator, not a probability.
type ConfidenceMap map[string]float64

// StatementResult is the complete outcome of parsing one statement.
// Transactions keep the order they appeared in the source text, which is
// not guaranteed to be chronological.
type StatementResult struct {
	AccountInfo  AccountInfo   `json:"account_info"`
	Period       Period        `json:"period"`
	Balance      Balance       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
	Confidence   ConfidenceMap `json:"confidence"`
}

// StringPtr returns a pointer to s. Helper for optional string fields.
func StringPtr(s string) *string {
	return &s
}

// DecimalPtr returns a pointer to d. Helper for optional amount fields.
func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
