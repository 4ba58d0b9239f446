package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldViolation describes one failed validation constraint on a draft field.
type FieldViolation struct {
	Field      string
	Constraint string
	Message    string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateDraft checks a draft record against its struct tags and returns the
// full set of violations. An empty result means the draft may be submitted.
func ValidateDraft(draft any) []FieldViolation {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldViolation{{Field: "", Constraint: "struct", Message: err.Error()}}
	}

	violations := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, FieldViolation{
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Message:    violationMessage(fe),
		})
	}
	return violations
}

// ViolationSummary flattens violations into the single top-level message shown
// to the user.
func ViolationSummary(violations []FieldViolation) string {
	if len(violations) == 0 {
		return ""
	}
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.Message)
	}
	return strings.Join(parts, "; ")
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must not be negative", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
