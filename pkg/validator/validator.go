package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// lenientEmailPattern accepts local@domain.tld shapes without attempting
// full RFC validation: no spaces, a single "@", and a dot in the domain.
var lenientEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.\S+$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report errors under the json field name so the mapping keys match
	// what the form submitted (name, email, phone, date, timeSlot).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("phone10", validatePhoneDigits)
	v.RegisterValidation("lenientemail", validateLenientEmail)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// validatePhoneDigits strips every non-digit character and passes only
// when exactly 10 digits remain. No leading-digit or country-code rule.
func validatePhoneDigits(fl validator.FieldLevel) bool {
	digits := 0
	for _, r := range fl.Field().String() {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits == 10
}

func validateLenientEmail(fl validator.FieldLevel) bool {
	return lenientEmailPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// FieldErrors carries the per-field validation messages from a failed
// whole-form check. It is always recoverable by correcting input and is
// never a system error.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	return "validation failed"
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "lenientemail":
				errors[field] = field + " must be a valid email address"
			case "phone10":
				errors[field] = field + " must contain exactly 10 digits"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
