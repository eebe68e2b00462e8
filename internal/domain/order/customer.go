package order

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field length limits for checkout details, counted in characters so
// multibyte names and addresses are not penalized.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 100
	MaxAddressLength = 500
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CustomerDetails is the customer-supplied part of a checkout.
type CustomerDetails struct {
	CustomerName    string
	Email           string
	ShippingAddress string
}

// FieldError is a single validation failure, addressed to the form field the
// caller should re-render.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError collects every field failure of one checkout attempt.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	reasons := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		reasons = append(reasons, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "invalid checkout details: " + strings.Join(reasons, "; ")
}

// Validate checks every field and returns nil or a *ValidationError carrying
// one entry per violated field.
func (d CustomerDetails) Validate() error {
	var fields []FieldError

	name := strings.TrimSpace(d.CustomerName)
	switch {
	case name == "":
		fields = append(fields, FieldError{Field: "customerName", Reason: "name is required"})
	case utf8.RuneCountInString(name) > MaxNameLength:
		fields = append(fields, FieldError{Field: "customerName", Reason: fmt.Sprintf("name must be at most %d characters", MaxNameLength)})
	}

	email := strings.TrimSpace(d.Email)
	switch {
	case email == "":
		fields = append(fields, FieldError{Field: "email", Reason: "email is required"})
	case utf8.RuneCountInString(email) > MaxEmailLength:
		fields = append(fields, FieldError{Field: "email", Reason: fmt.Sprintf("email must be at most %d characters", MaxEmailLength)})
	case !emailPattern.MatchString(email):
		fields = append(fields, FieldError{Field: "email", Reason: "invalid email address"})
	}

	address := strings.TrimSpace(d.ShippingAddress)
	switch {
	case address == "":
		fields = append(fields, FieldError{Field: "shippingAddress", Reason: "shipping address is required"})
	case utf8.RuneCountInString(address) > MaxAddressLength:
		fields = append(fields, FieldError{Field: "shippingAddress", Reason: fmt.Sprintf("shipping address must be at most %d characters", MaxAddressLength)})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
