package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
	"github.com/mohammadpnp/travel-booking/internal/infrastructure/repository"
)

func TestTravelRepositoriesIntegration(t *testing.T) {
	db, _ := openIntegrationDB(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	users := repository.NewUserRepository(db)
	listings := repository.NewListingRepository(db)
	bookings := repository.NewBookingRepository(db)
	reviews := repository.NewReviewRepository(db)

	host, err := domain.NewUser(uuid.New(), domain.UserParams{FirstName: "Ana", LastName: "Lee", Email: "ana@example.com", PhoneNumber: "12345678"}, now)
	if err != nil {
		t.Fatalf("new host: %v", err)
	}
	guest, err := domain.NewUser(uuid.New(), domain.UserParams{FirstName: "Ben", LastName: "Ortiz", Email: "ben@example.com", PhoneNumber: "87654321"}, now)
	if err != nil {
		t.Fatalf("new guest: %v", err)
	}
	for _, u := range []domain.User{host, guest} {
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	dup := guest
	dup.ID = uuid.New()
	err = users.Create(ctx, dup)
	if verrs, ok := domain.AsValidation(err); !ok || verrs.Fields()["email"][0] != "user with this email already exists." {
		t.Fatalf("expected duplicate email validation error, got %v", err)
	}

	listing, err := domain.NewListing(uuid.New(), domain.ListingParams{HostID: host.ID, Name: "Loft", Location: "Lisbon", PricePerNight: 100}, now)
	if err != nil {
		t.Fatalf("new listing: %v", err)
	}
	if err := listings.Create(ctx, listing); err != nil {
		t.Fatalf("create listing: %v", err)
	}

	later, err := domain.NewBooking(uuid.New(), domain.BookingParams{
		ListingID: listing.ID, UserID: guest.ID,
		StartDate: now.AddDate(0, 1, 0), EndDate: now.AddDate(0, 1, 3),
	}, now)
	if err != nil {
		t.Fatalf("new booking: %v", err)
	}
	sooner, err := domain.NewBooking(uuid.New(), domain.BookingParams{
		ListingID: listing.ID, UserID: guest.ID,
		StartDate: now.AddDate(0, 0, 1), EndDate: now.AddDate(0, 0, 2),
	}, now)
	if err != nil {
		t.Fatalf("new booking: %v", err)
	}
	for _, b := range []domain.Booking{later, sooner} {
		if err := bookings.Create(ctx, b); err != nil {
			t.Fatalf("create booking: %v", err)
		}
	}

	listed, total, err := bookings.List(ctx, domain.ListFilter{ListingID: listing.ID, Limit: 20})
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if total != 2 || listed[0].ID != sooner.ID || listed[1].ID != later.ID {
		t.Fatalf("bookings must be ordered by start date, got %+v", listed)
	}
	if listed[0].Listing.Host.ID != host.ID || listed[0].User.Email != guest.Email {
		t.Fatalf("booking relations not expanded: %+v", listed[0])
	}

	found, _, err := bookings.List(ctx, domain.ListFilter{Search: "orti", Limit: 20})
	if err != nil || len(found) != 2 {
		t.Fatalf("expected search by guest name to match 2 bookings, got %d (%v)", len(found), err)
	}

	review, err := domain.NewReview(uuid.New(), domain.ReviewParams{ListingID: listing.ID, UserID: guest.ID, Rating: 5, Comment: "Wonderful place to stay"}, now)
	if err != nil {
		t.Fatalf("new review: %v", err)
	}
	if err := reviews.Create(ctx, review); err != nil {
		t.Fatalf("create review: %v", err)
	}

	orphan, err := domain.NewReview(uuid.New(), domain.ReviewParams{ListingID: uuid.New(), UserID: guest.ID, Rating: 3, Comment: "Listing never existed"}, now)
	if err != nil {
		t.Fatalf("new review: %v", err)
	}
	err = reviews.Create(ctx, orphan)
	if verrs, ok := domain.AsValidation(err); !ok || !verrs.Has("listing_id") {
		t.Fatalf("expected listing_id validation error, got %v", err)
	}

	if err := users.Delete(ctx, host.ID); err != nil {
		t.Fatalf("delete host: %v", err)
	}

	if _, err := listings.GetByID(ctx, listing.ID); !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected listing removed with its host, got %v", err)
	}
	if _, err := bookings.GetByID(ctx, sooner.ID); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected booking removed with its listing, got %v", err)
	}
	if _, err := reviews.GetByID(ctx, review.ID); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected review removed with its listing, got %v", err)
	}
	if _, err := users.GetByID(ctx, guest.ID); err != nil {
		t.Fatalf("guest must survive host deletion: %v", err)
	}
}
