package travel

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

type ListingInput struct {
	HostID        *string
	Name          *string
	Description   *string
	Location      *string
	PricePerNight *float64
}

type ListingService interface {
	Create(ctx context.Context, in ListingInput) (ListingOutput, error)
	Get(ctx context.Context, id string) (ListingOutput, error)
	List(ctx context.Context, q ListQuery) (Page[ListingOutput], error)
	Update(ctx context.Context, id string, in ListingInput) (ListingOutput, error)
	Delete(ctx context.Context, id string) error
}

type listingService struct {
	repo domain.ListingRepository
	opts options
}

func NewListingService(repo domain.ListingRepository, opts ...Option) ListingService {
	return &listingService{repo: repo, opts: buildOptions(opts)}
}

func (s *listingService) Create(ctx context.Context, in ListingInput) (ListingOutput, error) {
	var refs refParser
	hostID := refs.id("host_id", in.HostID)
	if err := refs.err(); err != nil {
		return ListingOutput{}, err
	}

	l, err := domain.NewListing(s.opts.newID(), domain.ListingParams{
		HostID:        hostID,
		Name:          deref(in.Name),
		Description:   deref(in.Description),
		Location:      deref(in.Location),
		PricePerNight: deref(in.PricePerNight),
	}, s.opts.now())
	if err != nil {
		return ListingOutput{}, err
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return ListingOutput{}, s.storageError(err)
	}
	return s.reload(ctx, l.ID)
}

func (s *listingService) Get(ctx context.Context, id string) (ListingOutput, error) {
	listingID, err := parseID(id)
	if err != nil {
		return ListingOutput{}, err
	}
	return s.reload(ctx, listingID)
}

func (s *listingService) List(ctx context.Context, q ListQuery) (Page[ListingOutput], error) {
	q.ListingID = ""
	filter, page, size, err := q.filter()
	if err != nil {
		return Page[ListingOutput]{}, err
	}

	listings, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return Page[ListingOutput]{}, s.storageError(err)
	}

	return Page[ListingOutput]{
		Count:    total,
		Page:     page,
		PageSize: size,
		Results:  mapOutputs(listings, newListingOutput),
	}, nil
}

func (s *listingService) Update(ctx context.Context, id string, in ListingInput) (ListingOutput, error) {
	listingID, err := parseID(id)
	if err != nil {
		return ListingOutput{}, err
	}
	existing, err := s.repo.GetByID(ctx, listingID)
	if err != nil {
		return ListingOutput{}, s.storageError(err)
	}

	var refs refParser
	l := existing.Listing
	if in.HostID != nil {
		l.HostID = refs.id("host_id", in.HostID)
	}
	if err := refs.err(); err != nil {
		return ListingOutput{}, err
	}
	setString(&l.Name, in.Name)
	setValue(&l.Description, in.Description)
	setString(&l.Location, in.Location)
	setValue(&l.PricePerNight, in.PricePerNight)
	if err := l.Validate(); err != nil {
		return ListingOutput{}, err
	}
	l.Touch(s.opts.now())

	if err := s.repo.Update(ctx, l); err != nil {
		return ListingOutput{}, s.storageError(err)
	}
	return s.reload(ctx, l.ID)
}

func (s *listingService) Delete(ctx context.Context, id string) error {
	listingID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, listingID); err != nil {
		return s.storageError(err)
	}
	return nil
}

func (s *listingService) reload(ctx context.Context, id uuid.UUID) (ListingOutput, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ListingOutput{}, s.storageError(err)
	}
	return newListingOutput(*l), nil
}

func (s *listingService) storageError(err error) error {
	return storageError(err, domain.ErrListingNotFound, ErrListingNotFound, ErrListingStorage)
}
