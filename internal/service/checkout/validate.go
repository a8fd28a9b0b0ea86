package checkout

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ShippingForm carries the raw shipping form values.
type ShippingForm struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode"`
}

// FieldErrors maps a form field to its validation message. Errors are
// field-scoped and recoverable: they block the transition but keep the flow
// on the shipping step.
type FieldErrors map[string]string

var zipCodePattern = regexp.MustCompile(`^\d{5}$`)

// ValidateShipping applies the shipping form rules: full name 2-100
// characters, syntactically valid email, address 5-200, city 2-50, postal
// code exactly 5 digits. All fields are required.
func ValidateShipping(form ShippingForm) FieldErrors {
	errs := FieldErrors{}

	if n := utf8.RuneCountInString(strings.TrimSpace(form.FullName)); n < 2 || n > 100 {
		errs["fullName"] = "full name must be between 2 and 100 characters"
	}
	if !validEmail(form.Email) {
		errs["email"] = "enter a valid email address"
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(form.Address)); n < 5 || n > 200 {
		errs["address"] = "address must be between 5 and 200 characters"
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(form.City)); n < 2 || n > 50 {
		errs["city"] = "city must be between 2 and 50 characters"
	}
	if !zipCodePattern.MatchString(strings.TrimSpace(form.ZipCode)) {
		errs["zipCode"] = "postal code must be exactly 5 digits"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	// Reject display-name forms like "Name <a@b.c>"; only the bare address
	// counts as a form value.
	return err == nil && addr.Address == s
}
