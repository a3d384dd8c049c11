package scheduler

import "testing"

func TestValidateElementsCompliant(t *testing.T) {
	elements := make([]Element, len(RequiredElements))
	for i, typ := range RequiredElements {
		elements[i] = Element{Type: typ, Present: true}
	}
	res := ValidateElements("WP-1", elements)
	if !res.Compliant || len(res.Missing) != 0 {
		t.Fatalf("fully declared package must be compliant: %+v", res)
	}
}

func TestValidateElementsMissing(t *testing.T) {
	elements := []Element{
		{Type: "WORK_PERMIT", Present: true},
		{Type: "WORK_ORDER", Present: false},
	}
	res := ValidateElements("WP-1", elements)
	if res.Compliant {
		t.Fatalf("package with missing elements must not be compliant")
	}
	// Everything except the present work permit is missing.
	if len(res.Missing) != len(RequiredElements)-1 {
		t.Fatalf("missing = %v", res.Missing)
	}
	for _, m := range res.Missing {
		if m == "WORK_PERMIT" {
			t.Fatalf("present element reported missing")
		}
	}
}
