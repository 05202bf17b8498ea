package coupon

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Service validates coupon codes against cart state and computes discount
// amounts. The catalog is fixed at construction; only usage bookkeeping
// mutates, guarded by the mutex.
type Service struct {
	mu      sync.Mutex
	catalog map[string]*Coupon
}

// NewService builds a service over the built-in demo catalog.
func NewService() *Service {
	return NewServiceWithCatalog(defaultCatalog())
}

// NewServiceWithCatalog builds a service over an explicit catalog.
func NewServiceWithCatalog(coupons []Coupon) *Service {
	catalog := make(map[string]*Coupon, len(coupons))
	for _, c := range coupons {
		entry := c
		entry.Code = normalizeCode(entry.Code)
		catalog[entry.Code] = &entry
	}
	return &Service{catalog: catalog}
}

// Validate checks a code against the catalog and the cart total. Failures
// come back as display-ready messages, in priority order: unknown, inactive,
// usage limit, minimum order.
func (s *Service) Validate(code string, cartTotal decimal.Decimal) (bool, string, *Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.catalog[normalizeCode(code)]
	if !ok {
		return false, "Invalid coupon code", nil
	}
	if !entry.Active {
		return false, "This coupon is no longer active", nil
	}
	if entry.UsageLimit > 0 && entry.UsedCount >= entry.UsageLimit {
		return false, "This coupon has reached its usage limit", nil
	}
	if cartTotal.LessThan(entry.MinimumOrder) {
		return false, fmt.Sprintf("Minimum order amount is $%s", entry.MinimumOrder.StringFixed(2)), nil
	}

	found := *entry
	return true, "", &found
}

// Discount computes the amount a valid coupon takes off, rounded to cents.
// Fixed-amount coupons never exceed the cart total; percentage coupons apply
// to shipping when targeted there, otherwise to merchandise.
func (s *Service) Discount(c *Coupon, cartTotal, shippingCost decimal.Decimal) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	switch c.Kind {
	case KindFixedAmount:
		if c.Amount.GreaterThan(cartTotal) {
			return cartTotal
		}
		return c.Amount
	case KindPercentage:
		if c.AppliesTo == TargetShipping {
			return shippingCost.Mul(c.Amount).Round(2)
		}
		return cartTotal.Mul(c.Amount).Round(2)
	}
	return decimal.Zero
}

// Available lists coupons the given cart total already qualifies for,
// excluding inactive or exhausted ones.
func (s *Service) Available(cartTotal decimal.Decimal) []Offer {
	s.mu.Lock()
	defer s.mu.Unlock()

	offers := make([]Offer, 0, len(s.catalog))
	for _, entry := range s.catalog {
		if !entry.Active {
			continue
		}
		if entry.UsageLimit > 0 && entry.UsedCount >= entry.UsageLimit {
			continue
		}
		if cartTotal.LessThan(entry.MinimumOrder) {
			continue
		}
		offers = append(offers, Offer{
			Code:         entry.Code,
			Description:  entry.Description,
			MinimumOrder: entry.MinimumOrder,
		})
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].Code < offers[j].Code })
	return offers
}

// MarkUsed bumps the usage counter. Demo-only bookkeeping: never decremented
// when a coupon is removed from a quote.
func (s *Service) MarkUsed(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.catalog[normalizeCode(code)]; ok {
		entry.UsedCount++
	}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
