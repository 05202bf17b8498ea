package quote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/merchly/quoter-backend/internal/coupon"
	pkgerrors "github.com/merchly/quoter-backend/pkg/errors"
	"github.com/merchly/quoter-backend/pkg/logger"
	"github.com/merchly/quoter-backend/pkg/metrics"
	"github.com/shopspring/decimal"
)

const defaultTTL = 10 * time.Minute

// autoDiscountCode is reserved for the engine's automatic order discount.
// It is recomputed from the current cart on every rebuild, unlike manually
// applied coupons which persist until removed.
const autoDiscountCode = "WELCOME10"

var (
	autoDiscountThreshold = decimal.NewFromInt(75)
	autoDiscountAmount    = decimal.NewFromInt(10)
)

const (
	warningProvisional = "Prices are estimated. Add shipping address for exact pricing."
	warningPartial     = "Some address information missing. Complete address for final pricing."
)

// CouponResult reports the outcome of a coupon apply/remove. Business
// failures land here as data, never as errors.
type CouponResult struct {
	Success bool
	Message string
	Quote   *Quote
}

// PaymentValidation is the gate result a caller must pass before requesting
// payment credentials.
type PaymentValidation struct {
	Valid   bool
	Message string
}

// EngineParams configure the quote engine.
type EngineParams struct {
	Logger  *logger.Logger
	Metrics *metrics.QuoteMetrics
	Coupons *coupon.Service
	TTL     time.Duration
	Now     func() time.Time
}

// Engine owns the quote lifecycle: building versioned quotes from cart and
// address state, coupon application, payment-readiness validation, and the
// session-keyed TTL store.
type Engine struct {
	logg     *logger.Logger
	metrics  *metrics.QuoteMetrics
	coupons  *coupon.Service
	shipping *ShippingCalculator
	tax      *TaxCalculator
	store    *Store
	ttl      time.Duration
	now      func() time.Time
}

// NewEngine builds an engine with compiled-in rate tables.
func NewEngine(params EngineParams) (*Engine, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Coupons == nil {
		return nil, fmt.Errorf("coupon service required")
	}
	ttl := params.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		logg:     params.Logger,
		metrics:  params.Metrics,
		coupons:  params.Coupons,
		shipping: NewShippingCalculator(),
		tax:      NewTaxCalculator(),
		store:    NewStore(now),
		ttl:      ttl,
		now:      now,
	}, nil
}

// CreateOrUpdate builds a fresh quote version for the session from the cart
// and whatever address detail the caller has. Status is recomputed from
// scratch each call, so a session can fall back from final to provisional
// when a later request omits the address. Manual coupon discounts carry
// over; the automatic discount is recomputed.
func (e *Engine) CreateOrUpdate(ctx context.Context, sessionID string, cart Cart, addr *ShippingAddress, hints *EstimationHints, selectedShippingID string) (*Quote, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote session id is required")
	}

	release := e.store.Acquire(sessionID)
	defer release()

	version := 1
	var manualDiscounts []Discount
	if existing, ok := e.store.Get(sessionID); ok {
		version = existing.Version + 1
		for _, d := range existing.Discounts {
			if !strings.EqualFold(d.Code, autoDiscountCode) {
				manualDiscounts = append(manualDiscounts, d)
			}
		}
	}

	confidence, _ := Classify(addr)
	status := statusFor(confidence)

	options := e.shipping.Options(cart, addr, hints, selectedShippingID)
	selected := selectedOption(options)

	discounts := append(e.automaticDiscounts(cart), manualDiscounts...)

	now := e.now().UTC()
	q := &Quote{
		SessionID:        sessionID,
		Version:          version,
		Status:           status,
		Confidence:       confidence,
		LineItems:        append([]CartItem(nil), cart.Items...),
		ShippingOptions:  options,
		SelectedShipping: selected,
		Tax:              e.tax.Tax(cart, addr, hints),
		Discounts:        discounts,
		Currency:         cart.Currency,
		ExpiresAt:        now.Add(e.ttl),
		CreatedAt:        now,
	}
	q.recalcTotals()

	switch status {
	case StatusProvisional:
		q.Warnings = append(q.Warnings, warningProvisional)
	case StatusPartial:
		q.Warnings = append(q.Warnings, warningPartial)
	}

	e.store.Put(q)
	e.metrics.IncBuilt(string(status))

	logCtx := e.logg.WithFields(ctx, map[string]any{
		"quote_session_id": sessionID,
		"version":          version,
		"status":           string(status),
		"total":            q.Total.StringFixed(2),
	})
	e.logg.Debug(logCtx, "quote built")

	return q, nil
}

// Get returns the live quote for a session. Expired entries are evicted and
// reported as not found; the read has no other side effect.
func (e *Engine) Get(ctx context.Context, sessionID string) (*Quote, error) {
	q, ok := e.store.Get(sessionID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quote not found or expired")
	}
	return q, nil
}

// ApplyCoupon validates and applies a coupon to the session's quote,
// bumping the version and recalculating totals on success.
func (e *Engine) ApplyCoupon(ctx context.Context, sessionID, code string) (CouponResult, error) {
	release := e.store.Acquire(sessionID)
	defer release()

	q, ok := e.store.Get(sessionID)
	if !ok {
		e.metrics.IncCouponOp("apply", false)
		return CouponResult{Message: "Quote not found or expired"}, nil
	}

	valid, msg, def := e.coupons.Validate(code, q.MerchandiseTotal)
	if !valid {
		e.metrics.IncCouponOp("apply", false)
		return CouponResult{Message: msg, Quote: q}, nil
	}

	for _, d := range q.Discounts {
		if strings.EqualFold(d.Code, def.Code) {
			e.metrics.IncCouponOp("apply", false)
			return CouponResult{Message: "Coupon already applied", Quote: q}, nil
		}
	}

	amount := e.coupons.Discount(def, q.MerchandiseTotal, q.ShippingCost())
	q.Discounts = append(q.Discounts, Discount{
		Code:        def.Code,
		Amount:      amount,
		Description: def.Description,
	})
	e.bumpVersion(q)
	q.recalcTotals()
	e.store.Put(q)
	e.coupons.MarkUsed(def.Code)
	e.metrics.IncCouponOp("apply", true)

	logCtx := e.logg.WithFields(ctx, map[string]any{
		"quote_session_id": sessionID,
		"coupon":           def.Code,
		"savings":          amount.StringFixed(2),
	})
	e.logg.Debug(logCtx, "coupon applied")

	return CouponResult{
		Success: true,
		Message: fmt.Sprintf("Coupon applied! You saved $%s", amount.StringFixed(2)),
		Quote:   q,
	}, nil
}

// RemoveCoupon strips a previously applied discount by code, bumping the
// version and recalculating totals when something was removed.
func (e *Engine) RemoveCoupon(ctx context.Context, sessionID, code string) (CouponResult, error) {
	release := e.store.Acquire(sessionID)
	defer release()

	q, ok := e.store.Get(sessionID)
	if !ok {
		e.metrics.IncCouponOp("remove", false)
		return CouponResult{Message: "Quote not found or expired"}, nil
	}

	kept := q.Discounts[:0:0]
	for _, d := range q.Discounts {
		if !strings.EqualFold(d.Code, code) {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(q.Discounts) {
		e.metrics.IncCouponOp("remove", false)
		return CouponResult{Message: "Coupon not found in this quote", Quote: q}, nil
	}

	q.Discounts = kept
	e.bumpVersion(q)
	q.recalcTotals()
	e.store.Put(q)
	e.metrics.IncCouponOp("remove", true)

	return CouponResult{Success: true, Message: "Coupon removed successfully", Quote: q}, nil
}

// ValidateForPayment is the gate before charging a payment instrument: the
// quote must exist, match the caller's version, be final, and be unexpired.
func (e *Engine) ValidateForPayment(ctx context.Context, sessionID string, version int) (PaymentValidation, error) {
	q, ok := e.store.Get(sessionID)
	if !ok {
		e.metrics.IncValidation(false)
		return PaymentValidation{Message: "Quote not found or expired"}, nil
	}

	if q.Version != version {
		e.metrics.IncValidation(false)
		return PaymentValidation{
			Message: fmt.Sprintf("Quote version mismatch. Current: %d, provided: %d", q.Version, version),
		}, nil
	}

	if q.Status != StatusFinal {
		e.metrics.IncValidation(false)
		return PaymentValidation{
			Message: fmt.Sprintf("Quote not finalized. Current status: %s", q.Status),
		}, nil
	}

	// Get already evicts expired quotes; re-check in case the TTL lapsed
	// between the read and this point.
	if q.ExpiredAt(e.now().UTC()) {
		e.metrics.IncValidation(false)
		return PaymentValidation{Message: "Quote has expired"}, nil
	}

	e.metrics.IncValidation(true)
	return PaymentValidation{Valid: true, Message: "Quote is valid for payment"}, nil
}

// AvailableCoupons lists the offers the session's current merchandise total
// qualifies for. No quote means no offers.
func (e *Engine) AvailableCoupons(ctx context.Context, sessionID string) []coupon.Offer {
	q, ok := e.store.Get(sessionID)
	if !ok {
		return []coupon.Offer{}
	}
	return e.coupons.Available(q.MerchandiseTotal)
}

// CleanupExpired sweeps expired sessions from the store. Reads already
// self-evict; this keeps memory bounded between reads.
func (e *Engine) CleanupExpired(ctx context.Context) int {
	removed := e.store.Sweep()
	e.metrics.AddSwept(removed)
	if removed > 0 {
		logCtx := e.logg.WithField(ctx, "count", removed)
		e.logg.Debug(logCtx, "expired quotes cleaned up")
	}
	return removed
}

func (e *Engine) bumpVersion(q *Quote) {
	q.Version++
	q.ExpiresAt = e.now().UTC().Add(e.ttl)
}

func (e *Engine) automaticDiscounts(cart Cart) []Discount {
	var discounts []Discount
	if cart.MerchandiseTotal().GreaterThanOrEqual(autoDiscountThreshold) {
		discounts = append(discounts, Discount{
			Code:        autoDiscountCode,
			Amount:      autoDiscountAmount,
			Description: "Welcome discount for orders over $75",
		})
	}
	return discounts
}

func statusFor(confidence Confidence) Status {
	switch confidence {
	case ConfidenceVerified:
		return StatusFinal
	case ConfidencePartial:
		return StatusPartial
	default:
		return StatusProvisional
	}
}
