package travel_test

import (
	"testing"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

func TestNewListingValid(t *testing.T) {
	t.Parallel()

	l, err := domain.NewListing(uuid.New(), domain.ListingParams{
		HostID:        uuid.New(),
		Name:          "Beach House",
		Location:      "Lisbon",
		PricePerNight: 0,
	}, testNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if l.Description != "" {
		t.Fatalf("expected empty description, got %q", l.Description)
	}
}

func TestNewListingNegativePrice(t *testing.T) {
	t.Parallel()

	_, err := domain.NewListing(uuid.New(), domain.ListingParams{
		HostID:        uuid.New(),
		Name:          "Beach House",
		Location:      "Lisbon",
		PricePerNight: -1,
	}, testNow)

	errs := assertHasField(t, err, "price_per_night")
	if errs.Fields()["price_per_night"][0] != "Price per night must be a positive number." {
		t.Fatalf("unexpected message: %v", errs)
	}
}

func TestNewListingRequiresHostAndName(t *testing.T) {
	t.Parallel()

	_, err := domain.NewListing(uuid.New(), domain.ListingParams{Location: "Lisbon"}, testNow)

	errs := assertHasField(t, err, "host_id")
	if !errs.Has("name") {
		t.Fatalf("expected name failure, got %v", errs)
	}
	if errs.Has("location") {
		t.Fatalf("did not expect location failure, got %v", errs)
	}
}
