package categorizer

import (
	"context"
	"regexp"
	"strings"
)

// CategoryPattern pairs a category tag with the brand/keyword pattern that
// assigns it.
type CategoryPattern struct {
	Tag     string
	Pattern *regexp.Regexp
}

// Built-in category table. Order matters: a description matching several
// patterns gets the earliest tag, so the table order is a contract.
var categoryPatterns = []CategoryPattern{
	{"dining", regexp.MustCompile(`(?i)restaurant|dining|food|cafe|coffee|starbucks|mcdonalds|chipotle|pizza|burger|taco|sushi`)},
	{"grocery", regexp.MustCompile(`(?i)grocery|groceries|supermarket|market|food|whole foods|wholefds|trader|safeway|kroger|albertsons|wegmans|publix`)},
	{"transportation", regexp.MustCompile(`(?i)uber|lyft|taxi|cab|transport|transit|metro|subway|train|bus|airline|flight|gas|fuel|chevron|shell|exxon`)},
	{"shopping", regexp.MustCompile(`(?i)amazon|ebay|walmart|target|costco|shop|store|retail|outlet|mall|clothing|apparel`)},
	{"utilities", regexp.MustCompile(`(?i)utility|utilities|electric|water|gas|power|energy|cable|internet|phone|mobile|wireless|verizon|at&t|t-mobile`)},
	{"entertainment", regexp.MustCompile(`(?i)netflix|hulu|spotify|apple|google|movie|theater|cinema|concert|ticket|entertainment`)},
	{"health", regexp.MustCompile(`(?i)medical|doctor|pharmacy|drug|health|healthcare|hospital|clinic|dental|vision|insurance`)},
	{"personal", regexp.MustCompile(`(?i)salon|spa|beauty|barber|hair|nail|gym|fitness`)},
	{"home", regexp.MustCompile(`(?i)home|apartment|rent|lease|mortgage|furniture|decor|improvement|repair|maintenance`)},
	{"subscription", regexp.MustCompile(`(?i)subscription|recurring|monthly|annual|membership|prime|fee`)},
	{"income", regexp.MustCompile(`(?i)deposit|direct deposit|salary|payroll|payment received|income|revenue`)},
	{"transfer", regexp.MustCompile(`(?i)transfer|zelle|venmo|paypal|cash app|wire|ach`)},
	{"withdrawal", regexp.MustCompile(`(?i)withdrawal|atm|cash`)},
}

// CategoryTags returns the built-in category tags in table order.
func CategoryTags() []string {
	tags := make([]string, len(categoryPatterns))
	for i, cp := range categoryPatterns {
		tags[i] = cp.Tag
	}
	return tags
}

// validTag reports whether tag is one of the built-in category tags.
func validTag(tag string) bool {
	for _, cp := range categoryPatterns {
		if cp.Tag == tag {
			return true
		}
	}
	return false
}

// keywordStrategy matches descriptions against the built-in category table,
// with a deposit/credit heuristic as a last resort.
type keywordStrategy struct{}

func (keywordStrategy) Name() string { return "keyword" }

func (keywordStrategy) Categorize(_ context.Context, description string) (string, bool, error) {
	for _, cp := range categoryPatterns {
		if cp.Pattern.MatchString(description) {
			return cp.Tag, true, nil
		}
	}

	lower := strings.ToLower(description)
	if strings.Contains(lower, "deposit") || strings.Contains(lower, "credit") {
		return "income", true, nil
	}

	return "", false, nil
}
