// Package pricing formats menu prices for display.
package pricing

import (
	"fmt"
)

// FallbackCurrency is used for an empty basket, which has no item to take
// the currency from.
const FallbackCurrency = "USD"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"HUF": "Ft",
	"CAD": "C$",
	"AUD": "A$",
}

// Symbol returns the display symbol for an ISO currency code, or the code
// itself when it is not known.
func Symbol(currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol
	}
	return currency
}

// FormatPrice renders forints without decimals after the amount ("2890 Ft")
// and every other currency with two decimals after the symbol ("$4.50").
func FormatPrice(price float64, currency string) string {
	symbol := Symbol(currency)
	if currency == "HUF" {
		return fmt.Sprintf("%.0f %s", price, symbol)
	}
	return fmt.Sprintf("%s%.2f", symbol, price)
}
