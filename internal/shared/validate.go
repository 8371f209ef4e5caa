package shared

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps validator tags to user-facing messages. Anything not
// listed falls back to a generic message rather than the raw tag error.
var fieldMessages = map[string]string{
	"required": "This field is required",
	"email":    "A valid email address is required",
	"gte":      "Value must not be negative",
	"min":      "Value is too small",
	"max":      "Value is too large",
	"oneof":    "Value is not one of the allowed options",
}

// Validator wraps go-playground struct validation and flattens the result
// into a field name to message map. An empty map means the input is valid;
// callers re-prompt the same form with the map rendered next to each field.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator using json tag names for field keys.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &Validator{validate: v}
}

// Struct validates input and returns per-field error messages.
func (v *Validator) Struct(input any) map[string]string {
	errs := make(map[string]string)
	if err := v.validate.Struct(input); err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			errs["general"] = "Invalid input"
			return errs
		}
		for _, fieldErr := range validationErrs {
			msg, ok := fieldMessages[fieldErr.Tag()]
			if !ok {
				msg = "Invalid value"
			}
			errs[fieldErr.Field()] = msg
		}
	}
	return errs
}

// ValidateFutureDate rejects dates not strictly after the reference day.
// A date equal to "today" fails; one day in the future passes. The date is
// compared at day granularity in the reference's location.
func ValidateFutureDate(date, reference time.Time) bool {
	ref := reference.Truncate(24 * time.Hour)
	day := date.Truncate(24 * time.Hour)
	return day.After(ref)
}
