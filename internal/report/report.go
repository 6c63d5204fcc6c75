// Package report summarizes a batch run: how many documents were parsed,
// how they group into accounts, and how trustworthy the extraction looked.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/finstatement/internal/batch"
	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/models"
)

// AccountSummary is the rollup for one account.
type AccountSummary struct {
	Account      string  `json:"account"`
	Documents    int     `json:"documents"`
	Period       string  `json:"period"`
	Transactions int     `json:"transactions"`
	NetAmount    string  `json:"net_amount"`
	Confidence   float64 `json:"confidence"`
}

// RunSummary is the rollup for a whole batch run.
type RunSummary struct {
	Documents int              `json:"documents"`
	Accounts  []AccountSummary `json:"accounts"`
}

// Generator builds and renders batch run summaries.
type Generator struct {
	log logging.Logger
}

// NewGenerator creates a Generator. A nil logger means the process default.
func NewGenerator(log logging.Logger) *Generator {
	if log == nil {
		log = logging.GetLogger()
	}
	return &Generator{log: log}
}

// Build rolls batch results up into a RunSummary. The account groups come
// from the aggregator so the report and the consolidated CSV files agree.
func (g *Generator) Build(results map[string]models.StatementResult, groups []batch.AccountGroup, aggregator *batch.Aggregator) RunSummary {
	summary := RunSummary{Documents: len(results)}

	for _, group := range groups {
		transactions := aggregator.MergeTransactions(results, group)

		net := decimal.Zero
		for _, tx := range transactions {
			net = net.Add(tx.Amount)
		}

		confidence := 0.0
		for _, path := range group.Documents {
			confidence += results[path].Confidence[models.ConfidenceOverall]
		}
		if len(group.Documents) > 0 {
			confidence /= float64(len(group.Documents))
		}

		summary.Accounts = append(summary.Accounts, AccountSummary{
			Account:      group.Account,
			Documents:    len(group.Documents),
			Period:       group.Period.String(),
			Transactions: len(transactions),
			NetAmount:    net.StringFixed(2),
			Confidence:   confidence,
		})
	}

	g.log.Debug("built batch run summary",
		logging.Field{Key: logging.FieldCount, Value: summary.Documents},
		logging.Field{Key: "accounts", Value: len(summary.Accounts)})

	return summary
}

// Generate renders a summary in the specified format (json or text). It
// returns an error for unsupported formats.
func (g *Generator) Generate(summary RunSummary, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal summary: %w", err)
		}
		return data, nil
	case "text":
		return []byte(renderText(summary)), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func renderText(summary RunSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Batch run: %d document(s), %d account(s)\n", summary.Documents, len(summary.Accounts))

	for _, account := range summary.Accounts {
		period := account.Period
		if period == "" {
			period = "unknown period"
		}
		fmt.Fprintf(&sb, "\n%s (%s)\n", account.Account, period)
		fmt.Fprintf(&sb, "  documents:    %d\n", account.Documents)
		fmt.Fprintf(&sb, "  transactions: %d\n", account.Transactions)
		fmt.Fprintf(&sb, "  net amount:   %s\n", account.NetAmount)
		fmt.Fprintf(&sb, "  confidence:   %.2f\n", account.Confidence)
	}
	return sb.String()
}
