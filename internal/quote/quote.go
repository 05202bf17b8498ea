package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status tracks how final a quote's pricing is.
type Status string

const (
	StatusProvisional Status = "provisional"
	StatusPartial     Status = "partial"
	StatusFinal       Status = "final"
)

// ShippingOption is one selectable shipping method on a quote.
type ShippingOption struct {
	ID            string
	Label         string
	Amount        decimal.Decimal
	EstimatedDays string
	Selected      bool
}

// Discount is an applied monetary reduction, automatic or coupon-driven.
type Discount struct {
	Code        string
	Amount      decimal.Decimal
	Description string
}

// Quote is the authoritative priced snapshot for a session.
type Quote struct {
	SessionID        string
	Version          int
	Status           Status
	Confidence       Confidence
	LineItems        []CartItem
	MerchandiseTotal decimal.Decimal
	ShippingOptions  []ShippingOption
	SelectedShipping *ShippingOption
	Tax              decimal.Decimal
	Discounts        []Discount
	Subtotal         decimal.Decimal
	Total            decimal.Decimal
	Currency         string
	ExpiresAt        time.Time
	RequiresAddress  bool
	Warnings         []string
	CreatedAt        time.Time
}

// recalcTotals rebuilds the derived amounts from the quote's parts.
func (q *Quote) recalcTotals() {
	total := decimal.Zero
	for _, item := range q.LineItems {
		total = total.Add(item.Subtotal())
	}
	q.MerchandiseTotal = total

	shippingCost := decimal.Zero
	if q.SelectedShipping != nil {
		shippingCost = q.SelectedShipping.Amount
	} else if len(q.ShippingOptions) > 0 {
		shippingCost = q.ShippingOptions[0].Amount
	}

	discountTotal := decimal.Zero
	for _, d := range q.Discounts {
		discountTotal = discountTotal.Add(d.Amount)
	}

	q.Subtotal = q.MerchandiseTotal.Add(shippingCost)
	q.Total = q.Subtotal.Add(q.Tax).Sub(discountTotal)
	q.RequiresAddress = q.Status != StatusFinal
}

// ShippingCost is the amount of the currently selected shipping option.
func (q *Quote) ShippingCost() decimal.Decimal {
	if q.SelectedShipping == nil {
		return decimal.Zero
	}
	return q.SelectedShipping.Amount
}

// ExpiredAt reports whether the quote is stale at the given instant.
func (q *Quote) ExpiredAt(now time.Time) bool {
	return now.After(q.ExpiresAt)
}

// Clone returns a deep copy so callers cannot mutate the stored snapshot.
func (q *Quote) Clone() *Quote {
	if q == nil {
		return nil
	}
	clone := *q
	clone.LineItems = append([]CartItem(nil), q.LineItems...)
	clone.ShippingOptions = append([]ShippingOption(nil), q.ShippingOptions...)
	clone.Discounts = append([]Discount(nil), q.Discounts...)
	clone.Warnings = append([]string(nil), q.Warnings...)
	if q.SelectedShipping != nil {
		for i := range clone.ShippingOptions {
			if clone.ShippingOptions[i].ID == q.SelectedShipping.ID {
				clone.SelectedShipping = &clone.ShippingOptions[i]
				break
			}
		}
	}
	return &clone
}
