package quote

import "github.com/shopspring/decimal"

// defaultRegionKey is the sentinel row used when the destination state is
// unknown or absent from the tables.
const defaultRegionKey = "_default"

// ShippingRate holds the per-region price for each shipping tier.
type ShippingRate struct {
	Standard decimal.Decimal
	Express  decimal.Decimal
}

func rate(standard, express string) ShippingRate {
	return ShippingRate{
		Standard: decimal.RequireFromString(standard),
		Express:  decimal.RequireFromString(express),
	}
}

// defaultShippingRates is the compiled-in per-state shipping table. Rates
// reflect distance from the central warehouse; real regional feeds are a
// later extension point.
func defaultShippingRates() map[string]ShippingRate {
	return map[string]ShippingRate{
		// West coast, farthest from the distribution center.
		"CA": rate("8.99", "24.99"),
		"WA": rate("9.99", "26.99"),
		"OR": rate("9.99", "26.99"),

		// East coast.
		"NY": rate("6.99", "19.99"),
		"FL": rate("7.99", "21.99"),
		"MA": rate("6.99", "19.99"),

		// Central, closest to the warehouse.
		"TX": rate("4.99", "16.99"),
		"IL": rate("5.99", "17.99"),
		"OH": rate("5.99", "17.99"),

		defaultRegionKey: rate("7.99", "21.99"),
	}
}

// defaultTaxRates is the compiled-in simplified sales tax table.
func defaultTaxRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"CA":             decimal.RequireFromString("0.0875"),
		"NY":             decimal.RequireFromString("0.08"),
		"TX":             decimal.RequireFromString("0.0625"),
		"FL":             decimal.RequireFromString("0.06"),
		"WA":             decimal.RequireFromString("0.065"),
		"IL":             decimal.RequireFromString("0.0625"),
		"MA":             decimal.RequireFromString("0.0625"),
		"OR":             decimal.Zero, // no sales tax
		defaultRegionKey: decimal.RequireFromString("0.07"),
	}
}

// resolveRegion picks the pricing region: explicit address state first, then
// the estimation-hint fallback, then the default sentinel.
func resolveRegion(addr *ShippingAddress, hints *EstimationHints) string {
	if addr != nil && !isBlank(addr.State) {
		return normalizeState(addr.State)
	}
	if hints != nil && !isBlank(hints.FallbackState) {
		return normalizeState(hints.FallbackState)
	}
	return defaultRegionKey
}
