package form

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	gerr "github.com/jekabolt/helpdesk/internal/errors"
)

// ValidateStruct is validation.ValidateStruct that reports field violations
// as a *gerr.ValidationError keyed by JSON field name.
func ValidateStruct(structPtr interface{}, rules ...*validation.FieldRules) error {
	err := validation.ValidateStruct(structPtr, rules...)
	if err == nil {
		return nil
	}
	return convertValidationErrors(err)
}

func convertValidationErrors(err error) error {
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}
	fields := make(map[string]string, len(ve))
	for key, value := range ve {
		if value == nil {
			continue
		}
		fields[key] = value.Error()
	}
	if len(fields) == 0 {
		return nil
	}
	return &gerr.ValidationError{Fields: fields}
}
