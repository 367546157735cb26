package schema

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance; constraints live as `validate` tags on the
// insertable payload types in internal/models.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports which fields of a payload failed validation.
// Handlers map it to a 400 response; it must be raised before any store
// mutation so a rejected request leaves no partial writes.
type ValidationError struct {
	Fields []string
	err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid request payload"
	}
	return "invalid or missing fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// Validate checks an insertable payload against its declared constraints.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
		return &ValidationError{Fields: fields, err: err}
	}
	return &ValidationError{err: err}
}
