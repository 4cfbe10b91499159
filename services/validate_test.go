package services

import "testing"

func TestValidate_EmptyQuotation(t *testing.T) {
	q := Quotation{}
	errs := q.Validate()

	wantKeys := []string{"customerName", "address", "mobile", "quoteNo"}
	if len(errs) != len(wantKeys) {
		t.Fatalf("expected %d errors, got %d: %v", len(wantKeys), len(errs), errs)
	}
	for _, key := range wantKeys {
		if errs[key] == "" {
			t.Errorf("expected an error under %q", key)
		}
	}
}

func TestValidate_Mobile(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		valid  bool
	}{
		{"ten digits", "9876543210", true},
		{"surrounding whitespace", " 9876543210 ", true},
		{"nine digits", "987654321", false},
		{"eleven digits", "98765432100", false},
		{"letters", "98765abcde", false},
		{"internal space", "98765 43210", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Quotation{
				CustomerName: "Acme",
				Address:      "Pune",
				MobileNumber: tt.mobile,
				QuoteNumber:  "QT-1",
			}
			errs := q.Validate()
			if tt.valid && len(errs) != 0 {
				t.Errorf("expected no errors, got %v", errs)
			}
			if !tt.valid {
				if _, ok := errs["mobile"]; !ok {
					t.Errorf("expected a mobile error for %q", tt.mobile)
				}
			}
		})
	}
}

func TestValidate_WhitespaceOnlyFields(t *testing.T) {
	q := Quotation{
		CustomerName: "   ",
		Address:      "\t",
		MobileNumber: "9876543210",
		QuoteNumber:  " ",
	}
	errs := q.Validate()

	for _, key := range []string{"customerName", "address", "quoteNo"} {
		if _, ok := errs[key]; !ok {
			t.Errorf("expected whitespace-only field to fail under %q", key)
		}
	}
	if _, ok := errs["mobile"]; ok {
		t.Error("expected valid mobile to pass")
	}
}
