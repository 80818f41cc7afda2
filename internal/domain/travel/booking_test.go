package travel_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

func bookingParams(start, end time.Time) domain.BookingParams {
	return domain.BookingParams{
		ListingID:  uuid.New(),
		UserID:     uuid.New(),
		StartDate:  start,
		EndDate:    end,
		TotalPrice: 300,
	}
}

func TestNewBookingDefaultsToPending(t *testing.T) {
	t.Parallel()

	b, err := domain.NewBooking(uuid.New(), bookingParams(
		time.Date(2024, 6, 5, 15, 30, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	), testNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if b.Status != domain.BookingStatusPending {
		t.Fatalf("expected pending, got %s", b.Status)
	}
	if b.StartDate.Hour() != 0 {
		t.Fatalf("expected start date without clock, got %v", b.StartDate)
	}
	if b.Nights() != 5 {
		t.Fatalf("expected 5 nights, got %d", b.Nights())
	}
}

func TestNewBookingEndBeforeStart(t *testing.T) {
	t.Parallel()

	_, err := domain.NewBooking(uuid.New(), bookingParams(
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	), testNow)

	errs := assertHasField(t, err, domain.NonFieldErrors)
	if errs.Fields()[domain.NonFieldErrors][0] != "End date must be after start date." {
		t.Fatalf("unexpected message: %v", errs)
	}
}

func TestNewBookingSameDayRejected(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	_, err := domain.NewBooking(uuid.New(), bookingParams(day, day.Add(5*time.Hour)), testNow)

	assertHasField(t, err, domain.NonFieldErrors)
}

func TestNewBookingUnknownStatus(t *testing.T) {
	t.Parallel()

	p := bookingParams(
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	)
	p.Status = "archived"

	_, err := domain.NewBooking(uuid.New(), p, testNow)

	errs := assertHasField(t, err, "status")
	if errs.Fields()["status"][0] != `"archived" is not a valid choice.` {
		t.Fatalf("unexpected message: %v", errs)
	}
}

func TestNewBookingNegativeTotal(t *testing.T) {
	t.Parallel()

	p := bookingParams(
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	)
	p.TotalPrice = -10

	_, err := domain.NewBooking(uuid.New(), p, testNow)

	assertHasField(t, err, "total_price")
}
