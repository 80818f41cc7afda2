package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

var checkMessages = map[string]string{
	"users_phone_number_check":       "Phone number must contain only digits.",
	"listings_price_per_night_check": "Price per night must be a positive number.",
	"bookings_total_price_check":     "Ensure this value is greater than or equal to 0.",
	"reviews_rating_check":           "Rating must be between 1 and 5.",
}

// translateError turns integrity violations reported by Postgres into
// field-level validation errors and wraps everything else with op.
func translateError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if fe := constraintViolation(pgErr); fe != nil {
			return domain.ValidationErrors{fe}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func constraintViolation(pgErr *pgconn.PgError) *domain.ValidationError {
	field := constraintField(pgErr.TableName, pgErr.ConstraintName)

	switch pgErr.Code {
	case pgUniqueViolation:
		return &domain.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s with this %s already exists.", singular(pgErr.TableName), strings.ReplaceAll(field, "_", " ")),
		}
	case pgForeignKeyViolation:
		return &domain.ValidationError{Field: field, Message: "Invalid pk - object does not exist."}
	case pgCheckViolation:
		msg, ok := checkMessages[pgErr.ConstraintName]
		if !ok {
			msg = "Invalid value."
		}
		return &domain.ValidationError{Field: field, Message: msg}
	case pgNotNullViolation:
		if pgErr.ColumnName != "" {
			field = pgErr.ColumnName
		}
		return &domain.ValidationError{Field: field, Message: "This field may not be null."}
	}
	return nil
}

// constraintField recovers the column from Postgres default constraint
// names such as users_email_key or bookings_listing_id_fkey.
func constraintField(table, constraint string) string {
	name := constraint
	if table != "" {
		name = strings.TrimPrefix(name, "idx_"+table+"_")
		name = strings.TrimPrefix(name, table+"_")
	}
	for _, suffix := range []string{"_fkey", "_key", "_check", "_idx"} {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix)
			break
		}
	}
	if name == "" || name == constraint {
		return domain.NonFieldErrors
	}
	return name
}

func singular(table string) string {
	if table == "" {
		return "object"
	}
	return strings.TrimSuffix(table, "s")
}

// likePattern builds an ILIKE pattern matching value anywhere in a column.
func likePattern(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
	return "%" + escaped + "%"
}
