package travel

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrReviewNotFound  = errors.New("review not found")

	ErrImportJobNotFound = errors.New("import job not found")
)

// NonFieldErrors is the field name used for rules spanning several fields.
const NonFieldErrors = "non_field_errors"

// ValidationError rejects a request because of a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every field failure found while validating one entity.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

// Fields groups messages by field name, preserving their order.
func (v ValidationErrors) Fields() map[string][]string {
	out := make(map[string][]string, len(v))
	for _, fe := range v {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

// Has reports whether field already failed.
func (v ValidationErrors) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns nil for an empty set so callers never get a typed nil error.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) add(err error) {
	if err == nil {
		return
	}
	var fe *ValidationError
	if errors.As(err, &fe) {
		*v = append(*v, fe)
		return
	}
	*v = append(*v, &ValidationError{Field: NonFieldErrors, Message: err.Error()})
}

// AsValidation extracts validation failures from err, whether it wraps a
// single ValidationError or a ValidationErrors set.
func AsValidation(err error) (ValidationErrors, bool) {
	var many ValidationErrors
	if errors.As(err, &many) {
		return many, true
	}
	var one *ValidationError
	if errors.As(err, &one) {
		return ValidationErrors{one}, true
	}
	return nil, false
}
