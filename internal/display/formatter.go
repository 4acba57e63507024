package display

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"PackageExpress/internal/model"
)

const (
	WelcomeMessage  = "Welcome to Package Express. Please follow the instructions below."
	ThankYouMessage = "Thank you!"
	QuotePrefix     = "Your estimated total for shipping this package is: $"
)

// FormatAmount renders v with exactly two decimal places.
// Half-cent ties round away from zero.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.2f", v)
	}
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatQuote formats the quote line shown to the user.
func FormatQuote(q model.Quote) string {
	return QuotePrefix + FormatAmount(q.Cost)
}
