package booking

import (
	"fmt"
	"strings"
	"time"
)

var currencySymbols = map[string]string{
	"eur": "€",
	"usd": "$",
	"gbp": "£",
}

// FormatPrice renders an amount for display, using the currency symbol
// when one is known and the upper-cased code otherwise.
func FormatPrice(amount float64, currency string) string {
	code := strings.ToLower(strings.TrimSpace(currency))
	if symbol, ok := currencySymbols[code]; ok {
		return fmt.Sprintf("%s%.2f", symbol, amount)
	}
	if code == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, strings.ToUpper(code))
}

// CalculateNights returns the stay length in nights, or 0 when the dates
// do not parse or are not in order.
func CalculateNights(checkIn, checkOut string) int {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}
