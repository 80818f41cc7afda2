package travel

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

type ReviewInput struct {
	ListingID *string
	UserID    *string
	Rating    *int
	Comment   *string
}

type ReviewService interface {
	Create(ctx context.Context, in ReviewInput) (ReviewOutput, error)
	Get(ctx context.Context, id string) (ReviewOutput, error)
	List(ctx context.Context, q ListQuery) (Page[ReviewOutput], error)
	Update(ctx context.Context, id string, in ReviewInput) (ReviewOutput, error)
	Delete(ctx context.Context, id string) error
}

type reviewService struct {
	repo domain.ReviewRepository
	opts options
}

func NewReviewService(repo domain.ReviewRepository, opts ...Option) ReviewService {
	return &reviewService{repo: repo, opts: buildOptions(opts)}
}

func (s *reviewService) Create(ctx context.Context, in ReviewInput) (ReviewOutput, error) {
	var refs refParser
	listingID := refs.id("listing_id", in.ListingID)
	userID := refs.id("user_id", in.UserID)
	if err := refs.err(); err != nil {
		return ReviewOutput{}, err
	}

	r, err := domain.NewReview(s.opts.newID(), domain.ReviewParams{
		ListingID: listingID,
		UserID:    userID,
		Rating:    deref(in.Rating),
		Comment:   deref(in.Comment),
	}, s.opts.now())
	if err != nil {
		return ReviewOutput{}, err
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return ReviewOutput{}, s.storageError(err)
	}
	return s.reload(ctx, r.ID)
}

func (s *reviewService) Get(ctx context.Context, id string) (ReviewOutput, error) {
	reviewID, err := parseID(id)
	if err != nil {
		return ReviewOutput{}, err
	}
	return s.reload(ctx, reviewID)
}

func (s *reviewService) List(ctx context.Context, q ListQuery) (Page[ReviewOutput], error) {
	filter, page, size, err := q.filter()
	if err != nil {
		return Page[ReviewOutput]{}, err
	}

	reviews, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return Page[ReviewOutput]{}, s.storageError(err)
	}

	return Page[ReviewOutput]{
		Count:    total,
		Page:     page,
		PageSize: size,
		Results:  mapOutputs(reviews, newReviewOutput),
	}, nil
}

func (s *reviewService) Update(ctx context.Context, id string, in ReviewInput) (ReviewOutput, error) {
	reviewID, err := parseID(id)
	if err != nil {
		return ReviewOutput{}, err
	}
	existing, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return ReviewOutput{}, s.storageError(err)
	}

	var refs refParser
	r := existing.Review
	if in.ListingID != nil {
		r.ListingID = refs.id("listing_id", in.ListingID)
	}
	if in.UserID != nil {
		r.UserID = refs.id("user_id", in.UserID)
	}
	if err := refs.err(); err != nil {
		return ReviewOutput{}, err
	}
	setValue(&r.Rating, in.Rating)
	setValue(&r.Comment, in.Comment)
	if err := r.Validate(); err != nil {
		return ReviewOutput{}, err
	}
	r.Touch(s.opts.now())

	if err := s.repo.Update(ctx, r); err != nil {
		return ReviewOutput{}, s.storageError(err)
	}
	return s.reload(ctx, r.ID)
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	reviewID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, reviewID); err != nil {
		return s.storageError(err)
	}
	return nil
}

func (s *reviewService) reload(ctx context.Context, id uuid.UUID) (ReviewOutput, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ReviewOutput{}, s.storageError(err)
	}
	return newReviewOutput(*r), nil
}

func (s *reviewService) storageError(err error) error {
	return storageError(err, domain.ErrReviewNotFound, ErrReviewNotFound, ErrReviewStorage)
}
