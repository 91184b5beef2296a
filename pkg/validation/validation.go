package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface. Violations surface as taxonomy validation errors so handlers can
// pass them straight to apperr.JSON.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok || len(violations) == 0 {
		return apperr.Validation("Invalid request")
	}

	// Report the first violation, mirroring the short-circuit behavior of the
	// per-route field checks this replaces.
	return apperr.Validation(messageFor(violations[0]))
}

func messageFor(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return "Please provide all required fields"
	case "email":
		return "Invalid email format"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "gte":
		return field + " must be greater than or equal to " + fe.Param()
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "oneof":
		return field + " must be one of: " + fe.Param()
	default:
		return "Invalid value for " + field
	}
}
