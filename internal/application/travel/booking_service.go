package travel

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

// BookingInput is the write shape of a booking. Dates use DateLayout.
type BookingInput struct {
	ListingID  *string
	UserID     *string
	StartDate  *string
	EndDate    *string
	TotalPrice *float64
	Status     *string
}

type BookingService interface {
	Create(ctx context.Context, in BookingInput) (BookingOutput, error)
	Get(ctx context.Context, id string) (BookingOutput, error)
	List(ctx context.Context, q ListQuery) (Page[BookingOutput], error)
	Update(ctx context.Context, id string, in BookingInput) (BookingOutput, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo domain.BookingRepository
	opts options
}

func NewBookingService(repo domain.BookingRepository, opts ...Option) BookingService {
	return &bookingService{repo: repo, opts: buildOptions(opts)}
}

func (s *bookingService) Create(ctx context.Context, in BookingInput) (BookingOutput, error) {
	var refs refParser
	listingID := refs.id("listing_id", in.ListingID)
	userID := refs.id("user_id", in.UserID)
	start := refs.date("start_date", in.StartDate, true)
	end := refs.date("end_date", in.EndDate, true)
	if err := refs.err(); err != nil {
		return BookingOutput{}, err
	}

	b, err := domain.NewBooking(s.opts.newID(), domain.BookingParams{
		ListingID:  listingID,
		UserID:     userID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: deref(in.TotalPrice),
		Status:     domain.BookingStatus(deref(in.Status)),
	}, s.opts.now())
	if err != nil {
		return BookingOutput{}, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return BookingOutput{}, s.storageError(err)
	}
	return s.reload(ctx, b.ID)
}

func (s *bookingService) Get(ctx context.Context, id string) (BookingOutput, error) {
	bookingID, err := parseID(id)
	if err != nil {
		return BookingOutput{}, err
	}
	return s.reload(ctx, bookingID)
}

func (s *bookingService) List(ctx context.Context, q ListQuery) (Page[BookingOutput], error) {
	filter, page, size, err := q.filter()
	if err != nil {
		return Page[BookingOutput]{}, err
	}

	bookings, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return Page[BookingOutput]{}, s.storageError(err)
	}

	return Page[BookingOutput]{
		Count:    total,
		Page:     page,
		PageSize: size,
		Results:  mapOutputs(bookings, newBookingOutput),
	}, nil
}

func (s *bookingService) Update(ctx context.Context, id string, in BookingInput) (BookingOutput, error) {
	bookingID, err := parseID(id)
	if err != nil {
		return BookingOutput{}, err
	}
	existing, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return BookingOutput{}, s.storageError(err)
	}

	var refs refParser
	b := existing.Booking
	if in.ListingID != nil {
		b.ListingID = refs.id("listing_id", in.ListingID)
	}
	if in.UserID != nil {
		b.UserID = refs.id("user_id", in.UserID)
	}
	if in.StartDate != nil {
		b.StartDate = refs.date("start_date", in.StartDate, false)
	}
	if in.EndDate != nil {
		b.EndDate = refs.date("end_date", in.EndDate, false)
	}
	if err := refs.err(); err != nil {
		return BookingOutput{}, err
	}
	setValue(&b.TotalPrice, in.TotalPrice)
	if in.Status != nil {
		b.Status = domain.BookingStatus(*in.Status)
	}
	if err := b.Validate(); err != nil {
		return BookingOutput{}, err
	}
	b.Touch(s.opts.now())

	if err := s.repo.Update(ctx, b); err != nil {
		return BookingOutput{}, s.storageError(err)
	}
	return s.reload(ctx, b.ID)
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	bookingID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, bookingID); err != nil {
		return s.storageError(err)
	}
	return nil
}

func (s *bookingService) reload(ctx context.Context, id uuid.UUID) (BookingOutput, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return BookingOutput{}, s.storageError(err)
	}
	return newBookingOutput(*b), nil
}

func (s *bookingService) storageError(err error) error {
	return storageError(err, domain.ErrBookingNotFound, ErrBookingNotFound, ErrBookingStorage)
}
