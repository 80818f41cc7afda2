package travel

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ListingParams struct {
	HostID        uuid.UUID
	Name          string
	Description   string
	Location      string
	PricePerNight float64
}

// Listing is a rentable property owned by its host.
type Listing struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	Name          string `validate:"required,max=100"`
	Description   string
	Location      string `validate:"required,max=255"`
	PricePerNight float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewListing(id uuid.UUID, p ListingParams, now time.Time) (Listing, error) {
	l := Listing{
		ID:            id,
		HostID:        p.HostID,
		Name:          strings.TrimSpace(p.Name),
		Description:   p.Description,
		Location:      strings.TrimSpace(p.Location),
		PricePerNight: p.PricePerNight,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := l.Validate(); err != nil {
		return Listing{}, err
	}
	return l, nil
}

func (l Listing) Validate() error {
	errs := validateStruct(l)
	errs.add(requireID("host_id", l.HostID))
	_, err := ValidatePricePerNight(l.PricePerNight)
	errs.add(err)
	return errs.OrNil()
}

func (l *Listing) Touch(now time.Time) {
	l.UpdatedAt = now
}

// ListingDetails is a listing with its host expanded.
type ListingDetails struct {
	Listing
	Host User
}

func requireID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return &ValidationError{Field: field, Message: "This field is required."}
	}
	return nil
}
