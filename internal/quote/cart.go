package quote

import (
	"fmt"

	pkgerrors "github.com/merchly/quoter-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

const defaultCurrency = "USD"

// CartItem is one priced line in the cart.
type CartItem struct {
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal
	Name      string
}

// Subtotal returns quantity times unit price.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the full cart snapshot used for pricing.
type Cart struct {
	Currency string
	Items    []CartItem
}

// NewCart validates the caller-supplied lines and assembles a cart. All line
// violations are reported together.
func NewCart(currency string, items []CartItem) (Cart, error) {
	var errs error
	for i, item := range items {
		if isBlank(item.SKU) {
			errs = multierr.Append(errs, fmt.Errorf("item %d: sku is required", i))
		}
		if item.Quantity <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("item %d: quantity must be positive", i))
		}
		if item.UnitPrice.IsNegative() {
			errs = multierr.Append(errs, fmt.Errorf("item %d: unit price cannot be negative", i))
		}
	}
	if errs != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeValidation, errs, "invalid cart")
	}
	if isBlank(currency) {
		currency = defaultCurrency
	}
	return Cart{Currency: currency, Items: items}, nil
}

// MerchandiseTotal sums all line subtotals before shipping and tax.
func (c Cart) MerchandiseTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
