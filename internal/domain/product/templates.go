package product

import "strings"

// Template is one entry of the fixed loan-type catalog. Symbolic keys
// ("personal", "home", "auto") let callers apply without knowing a
// product id; intake resolves the key to the seeded product by title.
type Template struct {
	Key          string
	Title        string
	Description  string
	InterestRate float64
	MinAmount    float64
	MaxAmount    float64
	TenureMonths int
}

var templates = []Template{
	{
		Key:          "personal",
		Title:        "Personal Loan",
		Description:  "Unsecured loan for personal use.",
		InterestRate: 10.5,
		MinAmount:    10_000,
		MaxAmount:    500_000,
		TenureMonths: 60,
	},
	{
		Key:          "home",
		Title:        "Home Loan",
		Description:  "Loan for purchasing a property.",
		InterestRate: 5.5,
		MinAmount:    100_000,
		MaxAmount:    10_000_000,
		TenureMonths: 240,
	},
	{
		Key:          "auto",
		Title:        "Auto Loan",
		Description:  "Loan for purchasing a vehicle.",
		InterestRate: 7.0,
		MinAmount:    50_000,
		MaxAmount:    2_000_000,
		TenureMonths: 84,
	},
}

// Templates returns the full catalog, in seeding order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// ResolveTemplate matches a symbolic loan-type key ("home") or a full
// title ("Home Loan"), case-insensitively.
func ResolveTemplate(key string) (Template, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, t := range templates {
		if k == t.Key || k == strings.ToLower(t.Title) {
			return t, nil
		}
	}
	return Template{}, ErrUnknownLoanType
}
