package coupon

import "github.com/shopspring/decimal"

// Kind distinguishes how a coupon's amount is interpreted.
type Kind string

const (
	KindFixedAmount Kind = "fixed_amount"
	KindPercentage  Kind = "percentage"
)

// TargetShipping marks percentage coupons that discount shipping instead of
// merchandise.
const TargetShipping = "shipping"

// Coupon is one redeemable promotion definition from the catalog.
type Coupon struct {
	Code         string
	Kind         Kind
	Amount       decimal.Decimal
	MinimumOrder decimal.Decimal
	Description  string
	AppliesTo    string
	Active       bool
	UsageLimit   int // 0 means unlimited
	UsedCount    int
}

// Offer is the client-facing view of an eligible coupon.
type Offer struct {
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	MinimumOrder decimal.Decimal `json:"minimum_order"`
}

func defaultCatalog() []Coupon {
	return []Coupon{
		{
			Code:         "WELCOME10",
			Kind:         KindFixedAmount,
			Amount:       decimal.NewFromInt(10),
			MinimumOrder: decimal.NewFromInt(75),
			Description:  "Welcome discount for orders over $75",
			Active:       true,
		},
		{
			Code:         "SHIP50",
			Kind:         KindPercentage,
			Amount:       decimal.RequireFromString("0.5"),
			MinimumOrder: decimal.NewFromInt(50),
			Description:  "50% off shipping for orders over $50",
			AppliesTo:    TargetShipping,
			Active:       true,
			UsageLimit:   100,
			UsedCount:    12,
		},
		{
			Code:         "SAVE15",
			Kind:         KindPercentage,
			Amount:       decimal.RequireFromString("0.15"),
			MinimumOrder: decimal.NewFromInt(100),
			Description:  "15% off orders over $100",
			Active:       true,
		},
	}
}
