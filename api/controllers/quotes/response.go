package quotes

import (
	"time"

	"github.com/merchly/quoter-backend/internal/coupon"
	"github.com/merchly/quoter-backend/internal/quote"
)

// QuoteView is the wire form of a quote: amounts as two-digit decimal
// strings, timestamps as RFC3339.
type QuoteView struct {
	QuoteSessionID    string               `json:"quote_session_id"`
	Version           int                  `json:"version"`
	Status            string               `json:"status"`
	AddressConfidence string               `json:"address_confidence"`
	LineItems         []LineItemView       `json:"line_items"`
	MerchandiseTotal  string               `json:"merchandise_total"`
	ShippingOptions   []ShippingOptionView `json:"shipping_options"`
	SelectedShipping  *ShippingOptionView  `json:"selected_shipping,omitempty"`
	Tax               string               `json:"tax"`
	Discounts         []DiscountView       `json:"discounts"`
	Subtotal          string               `json:"subtotal"`
	Total             string               `json:"total"`
	Currency          string               `json:"currency"`
	ExpiresAt         string               `json:"expires_at"`
	RequiresAddress   bool                 `json:"requires_address"`
	Warnings          []string             `json:"warnings"`
	CreatedAt         string               `json:"created_at"`
}

type LineItemView struct {
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Name      string `json:"name"`
	Subtotal  string `json:"subtotal"`
}

type ShippingOptionView struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Amount        string `json:"amount"`
	EstimatedDays string `json:"estimated_days"`
	Selected      bool   `json:"selected"`
}

type DiscountView struct {
	Code        string `json:"code"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
}

// CouponResultView is the wire form of an apply/remove outcome.
type CouponResultView struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Quote   *QuoteView `json:"quote,omitempty"`
}

// PaymentValidationView is the wire form of the payment gate check.
type PaymentValidationView struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// OfferView is one coupon the cart already qualifies for.
type OfferView struct {
	Code         string `json:"code"`
	Description  string `json:"description"`
	MinimumOrder string `json:"minimum_order"`
}

func newQuoteView(q *quote.Quote) *QuoteView {
	if q == nil {
		return nil
	}

	lineItems := make([]LineItemView, 0, len(q.LineItems))
	for _, item := range q.LineItems {
		lineItems = append(lineItems, LineItemView{
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Name:      item.Name,
			Subtotal:  item.Subtotal().StringFixed(2),
		})
	}

	options := make([]ShippingOptionView, 0, len(q.ShippingOptions))
	for _, opt := range q.ShippingOptions {
		options = append(options, newShippingOptionView(opt))
	}

	var selected *ShippingOptionView
	if q.SelectedShipping != nil {
		view := newShippingOptionView(*q.SelectedShipping)
		selected = &view
	}

	discounts := make([]DiscountView, 0, len(q.Discounts))
	for _, d := range q.Discounts {
		discounts = append(discounts, DiscountView{
			Code:        d.Code,
			Amount:      d.Amount.StringFixed(2),
			Description: d.Description,
		})
	}

	warnings := q.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &QuoteView{
		QuoteSessionID:    q.SessionID,
		Version:           q.Version,
		Status:            string(q.Status),
		AddressConfidence: string(q.Confidence),
		LineItems:         lineItems,
		MerchandiseTotal:  q.MerchandiseTotal.StringFixed(2),
		ShippingOptions:   options,
		SelectedShipping:  selected,
		Tax:               q.Tax.StringFixed(2),
		Discounts:         discounts,
		Subtotal:          q.Subtotal.StringFixed(2),
		Total:             q.Total.StringFixed(2),
		Currency:          q.Currency,
		ExpiresAt:         q.ExpiresAt.Format(time.RFC3339),
		RequiresAddress:   q.RequiresAddress,
		Warnings:          warnings,
		CreatedAt:         q.CreatedAt.Format(time.RFC3339),
	}
}

func newShippingOptionView(opt quote.ShippingOption) ShippingOptionView {
	return ShippingOptionView{
		ID:            opt.ID,
		Label:         opt.Label,
		Amount:        opt.Amount.StringFixed(2),
		EstimatedDays: opt.EstimatedDays,
		Selected:      opt.Selected,
	}
}

func newOfferViews(offers []coupon.Offer) []OfferView {
	views := make([]OfferView, 0, len(offers))
	for _, offer := range offers {
		views = append(views, OfferView{
			Code:         offer.Code,
			Description:  offer.Description,
			MinimumOrder: offer.MinimumOrder.StringFixed(2),
		})
	}
	return views
}
