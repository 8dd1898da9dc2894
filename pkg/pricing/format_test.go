package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price    float64
		currency string
		want     string
	}{
		{2890, "HUF", "2890 Ft"},
		{2312.4, "HUF", "2312 Ft"},
		{4.5, "USD", "$4.50"},
		{3, "EUR", "€3.00"},
		{12.999, "GBP", "£13.00"},
		{7, "CAD", "C$7.00"},
		{7, "AUD", "A$7.00"},
		{10, "CHF", "CHF10.00"},
		{0, FallbackCurrency, "$0.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.price, tt.currency), "%v %s", tt.price, tt.currency)
	}
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "Ft", Symbol("HUF"))
	assert.Equal(t, "PLN", Symbol("PLN"))
}
