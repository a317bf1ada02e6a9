package format

import (
	"math"
	"testing"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{0, "0 Birr"},
		{12, "12 Birr"},
		{12.00, "12 Birr"},
		{12.5, "12.5 Birr"},
		{12.50, "12.5 Birr"},
		{12.345, "12.35 Birr"}, // rounded to 2 decimal places
		{12.999, "13 Birr"},    // rounding can land on a whole amount
		{0.5, "0.5 Birr"},
		{1250, "1250 Birr"},
	}
	for _, tt := range tests {
		got := Price(tt.price)
		if got != tt.want {
			t.Errorf("Price(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestPriceWith(t *testing.T) {
	if got := PriceWith(99.9, "ETB"); got != "99.9 ETB" {
		t.Errorf("PriceWith(99.9, ETB) = %q, want %q", got, "99.9 ETB")
	}
	if got := PriceWith(math.NaN(), "Birr"); got != "NaN Birr" {
		t.Errorf("PriceWith(NaN) = %q, want %q", got, "NaN Birr")
	}
}

func TestPricePtr(t *testing.T) {
	if got := PricePtr(nil, "Birr"); got != "0 Birr" {
		t.Errorf("PricePtr(nil) = %q, want %q", got, "0 Birr")
	}
	price := 12.5
	if got := PricePtr(&price, "Birr"); got != "12.5 Birr" {
		t.Errorf("PricePtr(&12.5) = %q, want %q", got, "12.5 Birr")
	}
}
