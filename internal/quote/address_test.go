package quote

import "testing"

func TestClassifyNilAddress(t *testing.T) {
	t.Parallel()

	confidence, complete := Classify(nil)
	if confidence != ConfidenceNone || complete {
		t.Fatalf("expected none/false, got %s/%v", confidence, complete)
	}
}

func TestClassifyCompleteAddress(t *testing.T) {
	t.Parallel()

	addr := &ShippingAddress{
		Name:       "Jordan Smith",
		Line1:      "500 Market St",
		City:       "San Francisco",
		State:      "CA",
		PostalCode: "94105",
	}
	confidence, complete := Classify(addr)
	if confidence != ConfidenceVerified || !complete {
		t.Fatalf("expected verified/true, got %s/%v", confidence, complete)
	}
}

func TestClassifyPartialAddress(t *testing.T) {
	t.Parallel()

	cases := []ShippingAddress{
		{PostalCode: "94105"},
		{State: "CA"},
		{City: "San Francisco"},
		{Name: "Jordan Smith", State: "CA"},
	}
	for _, addr := range cases {
		confidence, complete := Classify(&addr)
		if confidence != ConfidencePartial || complete {
			t.Fatalf("expected partial/false for %+v, got %s/%v", addr, confidence, complete)
		}
	}
}

func TestClassifyWhitespaceOnlyFields(t *testing.T) {
	t.Parallel()

	addr := &ShippingAddress{Name: "  ", State: " \t", PostalCode: ""}
	confidence, complete := Classify(addr)
	if confidence != ConfidenceNone || complete {
		t.Fatalf("expected none/false for blank fields, got %s/%v", confidence, complete)
	}
}

func TestClassifyNameOnlyIsNone(t *testing.T) {
	t.Parallel()

	// Name and street alone give no region signal.
	confidence, _ := Classify(&ShippingAddress{Name: "Jordan Smith", Line1: "500 Market St"})
	if confidence != ConfidenceNone {
		t.Fatalf("expected none, got %s", confidence)
	}
}
