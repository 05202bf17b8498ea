package quotes

import (
	"github.com/merchly/quoter-backend/internal/quote"
	"github.com/shopspring/decimal"
)

// QuoteRequest is the inbound payload for create_or_update.
type QuoteRequest struct {
	QuoteSessionID     string          `json:"quote_session_id,omitempty"`
	Cart               CartPayload     `json:"cart" validate:"required"`
	ShippingAddress    *AddressPayload `json:"shipping_address,omitempty"`
	EstimationHints    *HintsPayload   `json:"estimation_hints,omitempty"`
	SelectedShippingID string          `json:"selected_shipping_id,omitempty"`
}

// CartPayload mirrors the cart snapshot supplied per request.
type CartPayload struct {
	Currency string            `json:"currency,omitempty"`
	Items    []CartItemPayload `json:"items" validate:"required,min=1,dive"`
}

// CartItemPayload is one priced cart line.
type CartItemPayload struct {
	SKU       string          `json:"sku" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Name      string          `json:"name,omitempty"`
}

// AddressPayload is the optional shipping address.
type AddressPayload struct {
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

// HintsPayload carries fallback region signals for provisional pricing.
type HintsPayload struct {
	FallbackCountry    string `json:"fallback_country,omitempty"`
	FallbackState      string `json:"fallback_state,omitempty"`
	FallbackPostalCode string `json:"fallback_postal_code,omitempty"`
}

// CouponRequest is the inbound payload for apply_coupon.
type CouponRequest struct {
	Code string `json:"code" validate:"required"`
}

// PaymentValidationRequest carries the version the caller intends to charge.
type PaymentValidationRequest struct {
	Version int `json:"version" validate:"required,gt=0"`
}

func toCart(payload CartPayload) (quote.Cart, error) {
	items := make([]quote.CartItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, quote.CartItem{
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Name:      item.Name,
		})
	}
	return quote.NewCart(payload.Currency, items)
}

func toAddress(payload *AddressPayload) *quote.ShippingAddress {
	if payload == nil {
		return nil
	}
	country := payload.Country
	if country == "" {
		country = "US"
	}
	return &quote.ShippingAddress{
		Name:       payload.Name,
		Phone:      payload.Phone,
		Line1:      payload.AddressLine1,
		Line2:      payload.AddressLine2,
		City:       payload.City,
		State:      payload.State,
		PostalCode: payload.PostalCode,
		Country:    country,
	}
}

func toHints(payload *HintsPayload) *quote.EstimationHints {
	if payload == nil {
		return nil
	}
	country := payload.FallbackCountry
	if country == "" {
		country = "US"
	}
	return &quote.EstimationHints{
		FallbackCountry:    country,
		FallbackState:      payload.FallbackState,
		FallbackPostalCode: payload.FallbackPostalCode,
	}
}
