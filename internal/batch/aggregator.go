package batch

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/models"
)

// DateRange is an inclusive date span.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the range in the format "YYYY-MM-DD_YYYY-MM-DD".
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format("2006-01-02"),
		dr.End.Format("2006-01-02"))
}

// Merge combines this range with another, returning the overall span.
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// AccountGroup collects the statements of one account across a batch run:
// several monthly statements of the same account roll up into one group.
type AccountGroup struct {
	Account   string
	Documents []string
	Period    DateRange
}

// Aggregator rolls batch results up by account.
type Aggregator struct {
	log logging.Logger
}

// NewAggregator creates an Aggregator. A nil logger means the process
// default.
func NewAggregator(log logging.Logger) *Aggregator {
	if log == nil {
		log = logging.GetLogger()
	}
	return &Aggregator{log: log}
}

// GroupByAccount groups batch results by extracted account number. The
// group period is the merged span of the member statements' periods.
// Groups come back sorted by account number; documents within a group are
// sorted by path for deterministic output.
func (a *Aggregator) GroupByAccount(results map[string]models.StatementResult) []AccountGroup {
	groups := make(map[string]*AccountGroup)

	for path, result := range results {
		account := result.AccountInfo.Number

		group, exists := groups[account]
		if !exists {
			group = &AccountGroup{Account: account}
			groups[account] = group
		}

		group.Documents = append(group.Documents, path)
		group.Period = group.Period.Merge(DateRange{
			Start: result.Period.Start,
			End:   result.Period.End,
		})
	}

	out := make([]AccountGroup, 0, len(groups))
	for _, group := range groups {
		sort.Strings(group.Documents)
		out = append(out, *group)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Account < out[j].Account
	})

	a.log.Info("grouped statements by account",
		logging.Field{Key: logging.FieldCount, Value: len(results)},
		logging.Field{Key: "accounts", Value: len(out)})

	return out
}

// MergeTransactions combines the transactions of one account group into a
// single chronological list. Potential duplicates, which happen when
// statement periods overlap, are logged but kept.
func (a *Aggregator) MergeTransactions(results map[string]models.StatementResult, group AccountGroup) []models.Transaction {
	var all []models.Transaction
	for _, path := range group.Documents {
		result, ok := results[path]
		if !ok {
			continue
		}
		all = append(all, result.Transactions...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.Before(all[j].Date)
		}
		return all[i].Amount.LessThan(all[j].Amount)
	})

	a.logDuplicates(all, group.Account)
	return all
}

// logDuplicates flags transactions that share a date, amount and
// description. They are kept: overlapping statements legitimately repeat
// entries, and dropping them silently would corrupt totals.
func (a *Aggregator) logDuplicates(transactions []models.Transaction, account string) {
	duplicates := 0
	for i := 0; i < len(transactions)-1; i++ {
		for j := i + 1; j < len(transactions); j++ {
			if arePotentialDuplicates(transactions[i], transactions[j]) {
				duplicates++
				a.log.Warn("potential duplicate transaction",
					logging.Field{Key: "account", Value: account},
					logging.Field{Key: "date", Value: transactions[i].Date.Format("2006-01-02")},
					logging.Field{Key: "amount", Value: transactions[i].Amount.String()})
				break
			}
		}
	}

	if duplicates > 0 {
		a.log.Warn("found potential duplicate transactions",
			logging.Field{Key: logging.FieldCount, Value: duplicates},
			logging.Field{Key: "account", Value: account})
	}
}

func arePotentialDuplicates(tx1, tx2 models.Transaction) bool {
	if !tx1.Date.Equal(tx2.Date) {
		return false
	}
	if !tx1.Amount.Equal(tx2.Amount) {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(tx1.Description), strings.TrimSpace(tx2.Description))
}
