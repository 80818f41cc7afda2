package travel

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type BookingParams struct {
	ListingID  uuid.UUID
	UserID     uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
	Status     BookingStatus
}

// Booking reserves a listing for a guest between two calendar dates.
type Booking struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	UserID     uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64       `validate:"gte=0"`
	Status     BookingStatus `validate:"oneof=pending confirmed cancelled"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBooking(id uuid.UUID, p BookingParams, now time.Time) (Booking, error) {
	status := p.Status
	if status == "" {
		status = BookingStatusPending
	}

	b := Booking{
		ID:         id,
		ListingID:  p.ListingID,
		UserID:     p.UserID,
		StartDate:  DateOnly(p.StartDate),
		EndDate:    DateOnly(p.EndDate),
		TotalPrice: p.TotalPrice,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := b.Validate(); err != nil {
		return Booking{}, err
	}
	return b, nil
}

func (b Booking) Validate() error {
	errs := validateStruct(b)
	errs.add(requireID("listing_id", b.ListingID))
	errs.add(requireID("user_id", b.UserID))
	errs.add(ValidateDateRange(b.StartDate, b.EndDate))
	return errs.OrNil()
}

// Nights is the number of nights covered by the booking.
func (b Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

func (b *Booking) Touch(now time.Time) {
	b.UpdatedAt = now
}

type BookingDetails struct {
	Booking
	Listing ListingDetails
	User    User
}

// DateOnly drops the clock part of t, keeping its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
