package travel_test

import (
	"testing"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

func TestNewReviewRating(t *testing.T) {
	t.Parallel()

	p := domain.ReviewParams{
		ListingID: uuid.New(),
		UserID:    uuid.New(),
		Rating:    6,
		Comment:   "this is long enough",
	}

	_, err := domain.NewReview(uuid.New(), p, testNow)
	assertHasField(t, err, "rating")

	p.Rating = 5
	if _, err := domain.NewReview(uuid.New(), p, testNow); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestNewReviewComment(t *testing.T) {
	t.Parallel()

	p := domain.ReviewParams{
		ListingID: uuid.New(),
		UserID:    uuid.New(),
		Rating:    4,
		Comment:   "short",
	}

	_, err := domain.NewReview(uuid.New(), p, testNow)
	assertHasField(t, err, "comment")

	p.Comment = "this is long enough"
	if _, err := domain.NewReview(uuid.New(), p, testNow); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestNewReviewRequiresReferences(t *testing.T) {
	t.Parallel()

	_, err := domain.NewReview(uuid.New(), domain.ReviewParams{Rating: 3, Comment: "this is long enough"}, testNow)

	errs := assertHasField(t, err, "listing_id")
	if !errs.Has("user_id") {
		t.Fatalf("expected user_id failure, got %v", errs)
	}
}
