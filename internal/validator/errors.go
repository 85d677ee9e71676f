package validator

import (
	"fmt"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// ValidationError describes a single failed field.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrors is the error type services return for rejected requests.
// The whole operation is rejected; nothing is partially applied.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Message
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// MissingFields returns the names of fields that failed the required tag,
// for the "missing required fields" response detail.
func (ve ValidationErrors) MissingFields() []string {
	var fields []string
	for _, e := range ve {
		if e.Tag == "required" {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// ToValidationErrors converts go-playground validation output.
func ToValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "", Tag: "invalid", Message: err.Error()}}
	}
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fieldName(fe),
			Tag:     fe.Tag(),
			Message: messageFor(fe),
		})
	}
	return errs
}

func fieldName(fe playground.FieldError) string {
	return strings.ToLower(fe.Field())
}

func messageFor(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName(fe))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldName(fe))
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldName(fe), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fieldName(fe), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fieldName(fe), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fieldName(fe))
	}
}
