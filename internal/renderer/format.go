package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency amounts are displayed in when none is configured.
const DefaultCurrency = "VND"

// FormatMoney renders amount in the given ISO 4217 currency, rounded to the
// currency's minor unit (truncated), e.g. "580,000 ₫" for VND.
// Amounts whose minor units do not fit in an int64 are laid out the same way
// from their decimal representation.
func FormatMoney(amount float64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprintf("%v %s", amount, currency)
	}

	cur := money.GetCurrency(currency)
	if cur == nil || math.Abs(amount)*math.Pow10(cur.Fraction) < math.MaxInt64 {
		return money.NewFromFloat(amount, currency).Display()
	}
	return displayLarge(decimal.NewFromFloat(amount), cur)
}

// displayLarge mirrors go-money's template layout for a decimal amount
func displayLarge(amount decimal.Decimal, cur *money.Currency) string {
	places := int32(cur.Fraction)
	digits := amount.Abs().Truncate(places).StringFixed(places)
	whole, frac, _ := strings.Cut(digits, ".")

	if cur.Thousand != "" {
		var b strings.Builder
		for i, r := range whole {
			if i > 0 && (len(whole)-i)%3 == 0 {
				b.WriteString(cur.Thousand)
			}
			b.WriteRune(r)
		}
		whole = b.String()
	}

	number := whole
	if frac != "" {
		number += cur.Decimal + frac
	}
	s := strings.Replace(cur.Template, "1", number, 1)
	s = strings.Replace(s, "$", cur.Grapheme, 1)

	if amount.IsNegative() {
		s = "-" + s
	}
	return s
}

// ValidCurrency reports whether code is a currency known to go-money
func ValidCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
