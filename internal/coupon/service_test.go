package coupon

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateUnknownCode(t *testing.T) {
	t.Parallel()

	svc := NewService()
	ok, msg, def := svc.Validate("BOGUS", decimal.NewFromInt(500))
	if ok || def != nil || msg != "Invalid coupon code" {
		t.Fatalf("unexpected result: %v %q %+v", ok, msg, def)
	}
}

func TestValidateNormalizesCode(t *testing.T) {
	t.Parallel()

	svc := NewService()
	ok, _, def := svc.Validate("  welcome10 ", decimal.NewFromInt(100))
	if !ok || def == nil || def.Code != "WELCOME10" {
		t.Fatalf("unexpected result: %v %+v", ok, def)
	}
}

func TestValidateInactive(t *testing.T) {
	t.Parallel()

	svc := NewServiceWithCatalog([]Coupon{{Code: "DEAD", Kind: KindFixedAmount, Amount: decimal.NewFromInt(5)}})
	ok, msg, _ := svc.Validate("DEAD", decimal.NewFromInt(500))
	if ok || msg != "This coupon is no longer active" {
		t.Fatalf("unexpected result: %v %q", ok, msg)
	}
}

func TestValidateUsageLimit(t *testing.T) {
	t.Parallel()

	svc := NewServiceWithCatalog([]Coupon{{
		Code:       "CAPPED",
		Kind:       KindFixedAmount,
		Amount:     decimal.NewFromInt(5),
		Active:     true,
		UsageLimit: 2,
		UsedCount:  2,
	}})
	ok, msg, _ := svc.Validate("CAPPED", decimal.NewFromInt(500))
	if ok || msg != "This coupon has reached its usage limit" {
		t.Fatalf("unexpected result: %v %q", ok, msg)
	}
}

func TestValidateMinimumOrder(t *testing.T) {
	t.Parallel()

	svc := NewService()
	ok, msg, _ := svc.Validate("SAVE15", decimal.RequireFromString("99.99"))
	if ok || msg != "Minimum order amount is $100.00" {
		t.Fatalf("unexpected result: %v %q", ok, msg)
	}

	ok, _, def := svc.Validate("SAVE15", decimal.NewFromInt(100))
	if !ok || def == nil {
		t.Fatal("exactly the minimum must qualify")
	}
}

func TestValidateReturnsCopy(t *testing.T) {
	t.Parallel()

	svc := NewService()
	_, _, def := svc.Validate("WELCOME10", decimal.NewFromInt(100))
	def.Amount = decimal.NewFromInt(9999)

	_, _, again := svc.Validate("WELCOME10", decimal.NewFromInt(100))
	if !again.Amount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("catalog mutated through returned coupon: %s", again.Amount)
	}
}

func TestDiscountFixedAmountCapped(t *testing.T) {
	t.Parallel()

	svc := NewService()
	c := &Coupon{Kind: KindFixedAmount, Amount: decimal.NewFromInt(10)}

	if got := svc.Discount(c, decimal.NewFromInt(80), decimal.Zero); !got.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected 10, got %s", got)
	}
	// Never discounts more than the cart is worth.
	if got := svc.Discount(c, decimal.NewFromInt(6), decimal.Zero); !got.Equal(decimal.NewFromInt(6)) {
		t.Fatalf("expected cap at 6, got %s", got)
	}
}

func TestDiscountPercentageTargets(t *testing.T) {
	t.Parallel()

	svc := NewService()

	merch := &Coupon{Kind: KindPercentage, Amount: decimal.RequireFromString("0.15")}
	if got := svc.Discount(merch, decimal.RequireFromString("119.99"), decimal.NewFromInt(25)); !got.Equal(decimal.RequireFromString("18.00")) {
		t.Fatalf("expected 18.00, got %s", got)
	}

	shipping := &Coupon{Kind: KindPercentage, Amount: decimal.RequireFromString("0.5"), AppliesTo: TargetShipping}
	if got := svc.Discount(shipping, decimal.NewFromInt(200), decimal.RequireFromString("24.99")); !got.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("expected 12.50, got %s", got)
	}

	if got := svc.Discount(nil, decimal.NewFromInt(100), decimal.Zero); !got.IsZero() {
		t.Fatalf("nil coupon must discount nothing, got %s", got)
	}
}

func TestAvailableFiltersAndSorts(t *testing.T) {
	t.Parallel()

	svc := NewService()

	offers := svc.Available(decimal.NewFromInt(150))
	if len(offers) != 3 {
		t.Fatalf("expected all 3 offers at 150, got %+v", offers)
	}
	for i := 1; i < len(offers); i++ {
		if offers[i-1].Code >= offers[i].Code {
			t.Fatalf("offers not sorted: %+v", offers)
		}
	}

	offers = svc.Available(decimal.NewFromInt(60))
	if len(offers) != 1 || offers[0].Code != "SHIP50" {
		t.Fatalf("expected only SHIP50 at 60, got %+v", offers)
	}

	if offers := svc.Available(decimal.NewFromInt(10)); len(offers) != 0 {
		t.Fatalf("expected no offers at 10, got %+v", offers)
	}
}

func TestMarkUsedExhaustsLimit(t *testing.T) {
	t.Parallel()

	svc := NewServiceWithCatalog([]Coupon{{
		Code:       "once",
		Kind:       KindFixedAmount,
		Amount:     decimal.NewFromInt(5),
		Active:     true,
		UsageLimit: 1,
	}})

	ok, _, _ := svc.Validate("ONCE", decimal.NewFromInt(50))
	if !ok {
		t.Fatal("expected first validation to pass")
	}
	svc.MarkUsed("once")

	ok, msg, _ := svc.Validate("ONCE", decimal.NewFromInt(50))
	if ok || msg != "This coupon has reached its usage limit" {
		t.Fatalf("unexpected result: %v %q", ok, msg)
	}
}
