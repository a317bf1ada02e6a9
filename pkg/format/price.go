package format

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultCurrency is the currency label used when none is given
const DefaultCurrency = "Birr"

// Price formats a price with the default currency label
func Price(price float64) string {
	return PriceWith(price, DefaultCurrency)
}

// PriceWith formats a price with a currency label. Whole amounts render
// without decimals; fractional amounts round to 2 decimal places with
// trailing zeros stripped (12.50 -> "12.5").
func PriceWith(price float64, currency string) string {
	// Non-finite values cannot be formatted meaningfully; fall back to
	// naive concatenation of the raw value.
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Sprintf("%v %s", price, currency)
	}

	if price == math.Trunc(price) {
		return fmt.Sprintf("%d %s", int64(price), currency)
	}

	rounded := math.Round(price*100) / 100
	return fmt.Sprintf("%s %s", strconv.FormatFloat(rounded, 'f', -1, 64), currency)
}

// PricePtr formats an optional price; a missing value renders as zero
func PricePtr(price *float64, currency string) string {
	if price == nil {
		return fmt.Sprintf("0 %s", currency)
	}
	return PriceWith(*price, currency)
}
