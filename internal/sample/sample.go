// Package sample generates fictional statement text for testing and
// demos. Generated statements look like the real thing: recognizable
// institution headers, masked account numbers, period and balance lines,
// and a transaction section that reconciles with the balances.
package sample

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/finstatement/internal/dateutils"
)

var businesses = []string{
	"AMAZON.COM", "WALMART", "TARGET", "COSTCO WHOLESALE", "WHOLE FOODS",
	"TRADER JOE'S", "STARBUCKS", "MCDONALD'S", "CHIPOTLE", "UBER", "UBER EATS",
	"LYFT", "CHEVRON", "SHELL", "NETFLIX", "SPOTIFY", "APPLE", "GOOGLE",
	"AT&T", "VERIZON", "T-MOBILE", "COMCAST", "CVS PHARMACY", "WALGREENS",
	"HOME DEPOT", "LOWE'S", "IKEA", "BEST BUY", "ZAPPOS", "NORDSTROM",
	"MACY'S", "URBAN OUTFITTERS", "GRUBHUB", "DOORDASH", "INSTACART",
}

var descriptors = []string{
	"RESTAURANT", "CAFE", "GROCERY", "RETAIL PURCHASE", "ONLINE SERVICE",
	"GAS STATION", "PHARMACY", "PHONE BILL", "RIDE SHARE", "STREAMING SERVICE",
}

type line struct {
	date        time.Time
	description string
	amount      decimal.Decimal
}

// Generator produces sample statements. A fixed seed and clock make the
// output reproducible.
type Generator struct {
	rng   *rand.Rand
	clock dateutils.Clock
}

// NewGenerator creates a Generator. A nil clock means the system clock.
func NewGenerator(seed int64, clock dateutils.Clock) *Generator {
	if clock == nil {
		clock = dateutils.SystemClock
	}
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		clock: clock,
	}
}

// ChaseCreditCard generates a Chase credit-card statement covering the
// 16th of last month through the 15th of the current month.
func (g *Generator) ChaseCreditCard(count int) string {
	now := g.clock()
	end := time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, time.UTC)
	start := dateutils.StartOfMonth(end).AddDate(0, -1, 15)

	lines := g.transactions(start, end, count, false)
	previous := g.amountBetween(500, 2000)
	previous, closing := balances(previous, lines)

	var sb strings.Builder
	sb.WriteString("CHASE\n")
	sb.WriteString("CREDIT CARD STATEMENT\n\n")
	fmt.Fprintf(&sb, "Account Number: ****%s\n", g.lastFour())
	fmt.Fprintf(&sb, "Statement Period: %s to %s\n", usDate(start), usDate(end))
	fmt.Fprintf(&sb, "Previous Balance: $%s\n", previous.StringFixed(2))
	fmt.Fprintf(&sb, "New Balance: $%s\n\n", closing.StringFixed(2))

	sb.WriteString("TRANSACTIONS\n")
	for _, l := range lines {
		fmt.Fprintf(&sb, "%s %s %s\n", l.date.Format("01/02"), l.description, signedAmount(l.amount))
	}

	sb.WriteString("\nFor Customer Service, call 1-800-555-1234\n")
	return sb.String()
}

// BofAChecking generates a Bank of America checking statement covering
// the first of the current month through the 25th.
func (g *Generator) BofAChecking(count int) string {
	now := g.clock()
	start := dateutils.StartOfMonth(now)
	end := time.Date(now.Year(), now.Month(), 25, 0, 0, 0, 0, time.UTC)

	lines := g.transactions(start, end, count, true)
	opening, closing := balances(g.amountBetween(1000, 4000), lines)

	var sb strings.Builder
	sb.WriteString("Bank of America\n")
	sb.WriteString("CHECKING ACCOUNT STATEMENT\n\n")
	fmt.Fprintf(&sb, "Account Number: ****%s\n", g.lastFour())
	fmt.Fprintf(&sb, "Statement Period: %s to %s\n", usDate(start), usDate(end))
	fmt.Fprintf(&sb, "Beginning Balance: $%s\n", opening.StringFixed(2))
	fmt.Fprintf(&sb, "Ending Balance: $%s\n\n", closing.StringFixed(2))

	sb.WriteString("Account Activity\n")
	for _, l := range lines {
		fmt.Fprintf(&sb, "%s %s %s\n", l.date.Format("01/02/2006"), l.description, signedAmount(l.amount))
	}

	sb.WriteString("\nMember FDIC\n")
	return sb.String()
}

// transactions generates count random transactions with dates inside
// [start, end], sorted by date. Roughly 70% are debits.
func (g *Generator) transactions(start, end time.Time, count int, bank bool) []line {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}

	lines := make([]line, count)
	for i := range lines {
		l := line{date: start.AddDate(0, 0, g.rng.Intn(days+1))}

		switch {
		case g.rng.Float64() > 0.7 && bank:
			l.description = "DIRECT DEPOSIT EMPLOYER PAYROLL"
			l.amount = g.amountBetween(1000, 3000)
		case g.rng.Float64() > 0.7:
			l.description = "PAYMENT THANK YOU"
			l.amount = g.amountBetween(10, 500)
		default:
			l.description = g.description()
			l.amount = g.amountBetween(5, 150).Neg()
		}
		lines[i] = l
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].date.Before(lines[j].date)
	})
	return lines
}

func (g *Generator) description() string {
	business := businesses[g.rng.Intn(len(businesses))]
	if g.rng.Float64() > 0.5 {
		return fmt.Sprintf("%s %s", business, descriptors[g.rng.Intn(len(descriptors))])
	}
	return fmt.Sprintf("%s %d", business, 10000+g.rng.Intn(90000))
}

func (g *Generator) lastFour() string {
	return fmt.Sprintf("%04d", g.rng.Intn(10000))
}

// amountBetween returns a random positive amount with cent precision.
func (g *Generator) amountBetween(low, high int) decimal.Decimal {
	cents := low*100 + g.rng.Intn((high-low)*100)
	return decimal.New(int64(cents), -2)
}

// balances returns an opening and closing balance pair that reconciles
// with the transactions. The opening balance is raised when needed so
// that both balances stay positive.
func balances(opening decimal.Decimal, lines []line) (decimal.Decimal, decimal.Decimal) {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.amount)
	}
	if sum.IsNegative() {
		opening = opening.Sub(sum)
	}
	return opening, opening.Add(sum)
}

func usDate(t time.Time) string {
	return t.Format("01/02/2006")
}

func signedAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
