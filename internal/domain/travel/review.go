package travel

import (
	"time"

	"github.com/google/uuid"
)

type ReviewParams struct {
	ListingID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Comment   string
}

type Review struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReview(id uuid.UUID, p ReviewParams, now time.Time) (Review, error) {
	r := Review{
		ID:        id,
		ListingID: p.ListingID,
		UserID:    p.UserID,
		Rating:    p.Rating,
		Comment:   p.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.Validate(); err != nil {
		return Review{}, err
	}
	return r, nil
}

func (r Review) Validate() error {
	var errs ValidationErrors
	errs.add(requireID("listing_id", r.ListingID))
	errs.add(requireID("user_id", r.UserID))
	_, err := ValidateRating(r.Rating)
	errs.add(err)
	_, err = ValidateComment(r.Comment)
	errs.add(err)
	return errs.OrNil()
}

func (r *Review) Touch(now time.Time) {
	r.UpdatedAt = now
}

type ReviewDetails struct {
	Review
	Listing ListingDetails
	User    User
}
