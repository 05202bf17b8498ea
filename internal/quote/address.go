package quote

import "strings"

// Confidence grades how trustworthy the supplied shipping address is.
type Confidence string

const (
	ConfidenceNone     Confidence = "none"
	ConfidencePartial  Confidence = "partial"
	ConfidenceVerified Confidence = "verified"
)

// ShippingAddress is an optional delivery address supplied per request.
type ShippingAddress struct {
	Name       string
	Phone      string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// IsComplete reports whether every field needed for final pricing is present.
// Phone and Line2 are optional and ignored.
func (a ShippingAddress) IsComplete() bool {
	return !isBlank(a.Name) &&
		!isBlank(a.Line1) &&
		!isBlank(a.City) &&
		!isBlank(a.State) &&
		!isBlank(a.PostalCode)
}

// IsPartial reports whether the address carries at least one region signal.
func (a ShippingAddress) IsPartial() bool {
	return !isBlank(a.PostalCode) || !isBlank(a.State) || !isBlank(a.City)
}

// EstimationHints carry fallback region signals when no full address exists.
type EstimationHints struct {
	FallbackCountry    string
	FallbackState      string
	FallbackPostalCode string
}

// Classify maps an address (or its absence) to a confidence tier and a
// completeness flag. Pure and deterministic.
func Classify(addr *ShippingAddress) (Confidence, bool) {
	if addr == nil {
		return ConfidenceNone, false
	}
	if addr.IsComplete() {
		return ConfidenceVerified, true
	}
	if addr.IsPartial() {
		return ConfidencePartial, false
	}
	return ConfidenceNone, false
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func normalizeState(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
