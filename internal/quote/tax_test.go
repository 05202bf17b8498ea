package quote

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTaxRegionalRates(t *testing.T) {
	t.Parallel()

	calc := NewTaxCalculator()
	cart := testCart(t, "100.00", 1)

	cases := []struct {
		state string
		want  string
	}{
		{"CA", "8.75"},
		{"NY", "8.00"},
		{"OR", "0.00"}, // no sales tax
		{"ZZ", "7.00"}, // default rate
	}
	for _, tc := range cases {
		got := calc.Tax(cart, &ShippingAddress{State: tc.state}, nil)
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("%s: expected %s, got %s", tc.state, tc.want, got)
		}
	}
}

func TestTaxRoundsToCents(t *testing.T) {
	t.Parallel()

	calc := NewTaxCalculator()
	// 33.33 * 0.0875 = 2.916375, rounds to 2.92.
	got := calc.Tax(testCart(t, "33.33", 1), &ShippingAddress{State: "ca"}, nil)
	if !got.Equal(decimal.RequireFromString("2.92")) {
		t.Fatalf("expected 2.92, got %s", got)
	}
}

func TestTaxUsesHintWhenAddressLacksState(t *testing.T) {
	t.Parallel()

	calc := NewTaxCalculator()
	cart := testCart(t, "100.00", 1)

	got := calc.Tax(cart, &ShippingAddress{City: "Portland"}, &EstimationHints{FallbackState: "OR"})
	if !got.IsZero() {
		t.Fatalf("expected hint state to resolve OR, got %s", got)
	}

	// Address state wins over the hint when both are present.
	got = calc.Tax(cart, &ShippingAddress{State: "NY"}, &EstimationHints{FallbackState: "OR"})
	if !got.Equal(decimal.NewFromInt(8)) {
		t.Fatalf("expected address state to win, got %s", got)
	}
}
