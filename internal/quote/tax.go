package quote

import "github.com/shopspring/decimal"

// TaxCalculator derives the sales tax owed for a cart and resolved region.
//
// The taxable base is merchandise only; shipping is never taxed here. Many
// US jurisdictions do tax shipping, so treat this as a known simplification
// before reusing the table for anything beyond demo-scope pricing.
type TaxCalculator struct {
	rates map[string]decimal.Decimal
}

// NewTaxCalculator builds a calculator over the compiled-in rate table.
func NewTaxCalculator() *TaxCalculator {
	return &TaxCalculator{rates: defaultTaxRates()}
}

// Tax returns the tax owed, rounded to cents.
func (c *TaxCalculator) Tax(cart Cart, addr *ShippingAddress, hints *EstimationHints) decimal.Decimal {
	taxRate, ok := c.rates[resolveRegion(addr, hints)]
	if !ok {
		taxRate = c.rates[defaultRegionKey]
	}
	return cart.MerchandiseTotal().Mul(taxRate).Round(2)
}
