package services

import (
	"regexp"
	"strings"
)

// ValidationErrors maps an error key (customerName, address, mobile,
// quoteNo) to a human-readable message.
type ValidationErrors map[string]string

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Validate checks the required fields and returns every violation at once
// so all messages can be shown simultaneously.
func (q *Quotation) Validate() ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(q.CustomerName) == "" {
		errs["customerName"] = "Customer name is required"
	}
	if strings.TrimSpace(q.Address) == "" {
		errs["address"] = "Address is required"
	}
	if !mobilePattern.MatchString(strings.TrimSpace(q.MobileNumber)) {
		errs["mobile"] = "Mobile number must be exactly 10 digits"
	}
	if strings.TrimSpace(q.QuoteNumber) == "" {
		errs["quoteNo"] = "Quotation number is required"
	}

	return errs
}
