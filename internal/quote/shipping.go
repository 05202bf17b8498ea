package quote

import "github.com/shopspring/decimal"

const (
	shippingStandardID = "standard"
	shippingExpressID  = "express"

	standardLabel     = "Standard Shipping (5-7 business days)"
	freeStandardLabel = "FREE Standard Shipping (5-7 business days)"
	expressLabel      = "Express Shipping (2-3 business days)"

	standardEstimate = "5-7 business days"
	expressEstimate  = "2-3 business days"
)

// ShippingCalculator derives the selectable shipping options for a cart and
// resolved region.
type ShippingCalculator struct {
	rates         map[string]ShippingRate
	freeThreshold decimal.Decimal
}

// NewShippingCalculator builds a calculator over the compiled-in rate table.
func NewShippingCalculator() *ShippingCalculator {
	return &ShippingCalculator{
		rates:         defaultShippingRates(),
		freeThreshold: decimal.NewFromInt(100),
	}
}

// Options returns the ordered shipping options: standard first, then express.
// Merchandise totals at or above the free threshold zero out the standard
// tier after the base lookup, so the promotion composes with any region.
// The option matching selectedID is marked selected; standard by default.
func (c *ShippingCalculator) Options(cart Cart, addr *ShippingAddress, hints *EstimationHints, selectedID string) []ShippingOption {
	rates, ok := c.rates[resolveRegion(addr, hints)]
	if !ok {
		rates = c.rates[defaultRegionKey]
	}

	options := []ShippingOption{
		{
			ID:            shippingStandardID,
			Label:         standardLabel,
			Amount:        rates.Standard,
			EstimatedDays: standardEstimate,
			Selected:      true,
		},
		{
			ID:            shippingExpressID,
			Label:         expressLabel,
			Amount:        rates.Express,
			EstimatedDays: expressEstimate,
		},
	}

	if cart.MerchandiseTotal().GreaterThanOrEqual(c.freeThreshold) {
		options[0].Amount = decimal.Zero
		options[0].Label = freeStandardLabel
	}

	if selectedID != "" {
		matched := false
		for i := range options {
			options[i].Selected = options[i].ID == selectedID
			matched = matched || options[i].Selected
		}
		if !matched {
			options[0].Selected = true
		}
	}

	return options
}

// selectedOption returns a pointer to the selected entry in options.
func selectedOption(options []ShippingOption) *ShippingOption {
	for i := range options {
		if options[i].Selected {
			return &options[i]
		}
	}
	if len(options) > 0 {
		options[0].Selected = true
		return &options[0]
	}
	return nil
}
