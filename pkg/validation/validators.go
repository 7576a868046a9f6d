package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local "@" domain "." tld, no whitespace and no extra "@". A shape check, not RFC 5322.
	emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("email_shape", EmailShape)
}

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// EmailShape validates that a string looks like local@domain.tld
func EmailShape(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return IsEmailShape(val)
}

// IsEmailShape is the plain-string form of the email_shape tag.
func IsEmailShape(s string) bool {
	return emailShapeRegex.MatchString(s)
}
