package travel

import (
	"strings"
	"time"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

const DateLayout = "2006-01-02"

type options struct {
	now   func() time.Time
	newID func() uuid.UUID
}

type Option func(*options)

// WithClock overrides the source of created_at/updated_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides how new entity ids are minted.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(o *options) { o.newID = newID }
}

func buildOptions(opts []Option) options {
	// TIMESTAMPTZ keeps microseconds; responses must match later reads.
	o := options{
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

// refParser accumulates field errors for identifiers and dates sent in a
// write shape.
type refParser struct {
	errs domain.ValidationErrors
}

func (p *refParser) id(field string, raw *string) uuid.UUID {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		p.errs = append(p.errs, &domain.ValidationError{Field: field, Message: "Must be a valid UUID."})
		return uuid.Nil
	}
	return id
}

func (p *refParser) date(field string, raw *string, required bool) time.Time {
	if raw == nil {
		if required {
			p.errs = append(p.errs, &domain.ValidationError{Field: field, Message: "This field is required."})
		}
		return time.Time{}
	}
	d, err := time.Parse(DateLayout, strings.TrimSpace(*raw))
	if err != nil {
		p.errs = append(p.errs, &domain.ValidationError{
			Field:   field,
			Message: "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.",
		})
		return time.Time{}
	}
	return d
}

func (p *refParser) err() error {
	return p.errs.OrNil()
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setValue[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
