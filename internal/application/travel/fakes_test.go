package travel_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeUserRepo struct {
	users     map[uuid.UUID]domain.User
	returnErr error
	lastList  domain.ListFilter
	deleted   []uuid.UUID
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uuid.UUID]domain.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user domain.User) error {
	if f.returnErr != nil {
		return f.returnErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return domain.ValidationErrors{{Field: "email", Message: "user with this email already exists."}}
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, filter domain.ListFilter) ([]domain.User, int64, error) {
	f.lastList = filter
	if f.returnErr != nil {
		return nil, 0, f.returnErr
	}
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user domain.User) error {
	if f.returnErr != nil {
		return f.returnErr
	}
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.returnErr != nil {
		return f.returnErr
	}
	if _, ok := f.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeListingRepo struct {
	hosts    map[uuid.UUID]domain.User
	listings map[uuid.UUID]domain.Listing
	lastList domain.ListFilter
}

func newFakeListingRepo(hosts ...domain.User) *fakeListingRepo {
	repo := &fakeListingRepo{hosts: map[uuid.UUID]domain.User{}, listings: map[uuid.UUID]domain.Listing{}}
	for _, h := range hosts {
		repo.hosts[h.ID] = h
	}
	return repo
}

func (f *fakeListingRepo) Create(ctx context.Context, listing domain.Listing) error {
	if _, ok := f.hosts[listing.HostID]; !ok {
		return domain.ValidationErrors{{Field: "host_id", Message: "Invalid pk - object does not exist."}}
	}
	f.listings[listing.ID] = listing
	return nil
}

func (f *fakeListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ListingDetails, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return &domain.ListingDetails{Listing: l, Host: f.hosts[l.HostID]}, nil
}

func (f *fakeListingRepo) List(ctx context.Context, filter domain.ListFilter) ([]domain.ListingDetails, int64, error) {
	f.lastList = filter
	out := make([]domain.ListingDetails, 0, len(f.listings))
	for _, l := range f.listings {
		out = append(out, domain.ListingDetails{Listing: l, Host: f.hosts[l.HostID]})
	}
	return out, int64(len(out)), nil
}

func (f *fakeListingRepo) Update(ctx context.Context, listing domain.Listing) error {
	if _, ok := f.listings[listing.ID]; !ok {
		return domain.ErrListingNotFound
	}
	f.listings[listing.ID] = listing
	return nil
}

func (f *fakeListingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.listings[id]; !ok {
		return domain.ErrListingNotFound
	}
	delete(f.listings, id)
	return nil
}

type fakeBookingRepo struct {
	listing   domain.ListingDetails
	guest     domain.User
	bookings  map[uuid.UUID]domain.Booking
	lastList  domain.ListFilter
	returnErr error
}

func newFakeBookingRepo(listing domain.ListingDetails, guest domain.User) *fakeBookingRepo {
	return &fakeBookingRepo{listing: listing, guest: guest, bookings: map[uuid.UUID]domain.Booking{}}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking domain.Booking) error {
	if f.returnErr != nil {
		return f.returnErr
	}
	if booking.ListingID != f.listing.ID {
		return domain.ValidationErrors{{Field: "listing_id", Message: "Invalid pk - object does not exist."}}
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingDetails, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &domain.BookingDetails{Booking: b, Listing: f.listing, User: f.guest}, nil
}

func (f *fakeBookingRepo) List(ctx context.Context, filter domain.ListFilter) ([]domain.BookingDetails, int64, error) {
	f.lastList = filter
	if f.returnErr != nil {
		return nil, 0, f.returnErr
	}
	out := make([]domain.BookingDetails, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, domain.BookingDetails{Booking: b, Listing: f.listing, User: f.guest})
	}
	return out, int64(len(out)), nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking domain.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return domain.ErrBookingNotFound
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

type fakeReviewRepo struct {
	listing  domain.ListingDetails
	author   domain.User
	reviews  map[uuid.UUID]domain.Review
	lastList domain.ListFilter
}

func newFakeReviewRepo(listing domain.ListingDetails, author domain.User) *fakeReviewRepo {
	return &fakeReviewRepo{listing: listing, author: author, reviews: map[uuid.UUID]domain.Review{}}
}

func (f *fakeReviewRepo) Create(ctx context.Context, review domain.Review) error {
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewDetails, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	return &domain.ReviewDetails{Review: r, Listing: f.listing, User: f.author}, nil
}

func (f *fakeReviewRepo) List(ctx context.Context, filter domain.ListFilter) ([]domain.ReviewDetails, int64, error) {
	f.lastList = filter
	out := make([]domain.ReviewDetails, 0, len(f.reviews))
	for _, r := range f.reviews {
		out = append(out, domain.ReviewDetails{Review: r, Listing: f.listing, User: f.author})
	}
	return out, int64(len(out)), nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review domain.Review) error {
	if _, ok := f.reviews[review.ID]; !ok {
		return domain.ErrReviewNotFound
	}
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

type fakeHasher struct {
	err error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func mustUser(first, last, email string) domain.User {
	u, err := domain.NewUser(uuid.New(), domain.UserParams{
		FirstName:   first,
		LastName:    last,
		Email:       email,
		PhoneNumber: "12345678",
	}, fixedNow)
	if err != nil {
		panic(err)
	}
	return u
}

func mustListing(host domain.User) domain.ListingDetails {
	l, err := domain.NewListing(uuid.New(), domain.ListingParams{
		HostID:        host.ID,
		Name:          "Beach House",
		Location:      "Lisbon",
		PricePerNight: 120,
	}, fixedNow)
	if err != nil {
		panic(err)
	}
	return domain.ListingDetails{Listing: l, Host: host}
}

func ptr[T any](v T) *T {
	return &v
}
