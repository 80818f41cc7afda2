package travel

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	MinPhoneNumberLength = 8
	MinCommentLength     = 10
	MinRating            = 1
	MaxRating            = 5
	// MaxPasswordBytes is the longest input bcrypt hashes.
	MaxPasswordBytes = 72
)

var structValidator = validator.New()

func ValidatePhoneNumber(value string) (string, error) {
	if value == "" || strings.IndexFunc(value, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return "", &ValidationError{Field: "phone_number", Message: "Phone number must contain only digits."}
	}
	if len(value) < MinPhoneNumberLength {
		return "", &ValidationError{Field: "phone_number", Message: "Phone number must be at least 8 digits long."}
	}
	return value, nil
}

func ValidatePassword(value string) (string, error) {
	if len(value) > MaxPasswordBytes {
		return "", &ValidationError{Field: "password", Message: fmt.Sprintf("Ensure this field has no more than %d bytes.", MaxPasswordBytes)}
	}
	return value, nil
}

func ValidatePricePerNight(value float64) (float64, error) {
	if value < 0 {
		return 0, &ValidationError{Field: "price_per_night", Message: "Price per night must be a positive number."}
	}
	return value, nil
}

func ValidateDateRange(start, end time.Time) error {
	if !end.After(start) {
		return &ValidationError{Field: NonFieldErrors, Message: "End date must be after start date."}
	}
	return nil
}

func ValidateRating(value int) (int, error) {
	if value < MinRating || value > MaxRating {
		return 0, &ValidationError{Field: "rating", Message: "Rating must be between 1 and 5."}
	}
	return value, nil
}

func ValidateComment(value string) (string, error) {
	if utf8.RuneCountInString(value) < MinCommentLength {
		return "", &ValidationError{Field: "comment", Message: "Comment must be at least 10 characters long."}
	}
	return value, nil
}

// validateStruct runs the `validate` tags of an entity and reports every
// failure under its snake_case field name.
func validateStruct(entity any) ValidationErrors {
	err := structValidator.Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Field: NonFieldErrors, Message: err.Error()}}
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, &ValidationError{Field: snakeCase(fe.Field()), Message: tagMessage(fe)})
	}
	return out
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field may not be blank."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
