package travel

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ListFilter narrows and pages a collection read. Ordering is fixed per
// entity type and is not part of the filter.
type ListFilter struct {
	Search    string
	ListingID uuid.UUID
	Limit     int
	Offset    int
}

// Repositories return ErrXNotFound for missing rows and ValidationErrors
// for integrity violations (duplicate email, unknown foreign key).
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter ListFilter) ([]User, int64, error)
	Update(ctx context.Context, user User) error
	// Delete removes the user together with hosted listings and every
	// booking or review made by the user or placed on those listings.
	Delete(ctx context.Context, id uuid.UUID) error
}

type ListingRepository interface {
	Create(ctx context.Context, listing Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*ListingDetails, error)
	List(ctx context.Context, filter ListFilter) ([]ListingDetails, int64, error)
	Update(ctx context.Context, listing Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*BookingDetails, error)
	List(ctx context.Context, filter ListFilter) ([]BookingDetails, int64, error)
	Update(ctx context.Context, booking Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewDetails, error)
	List(ctx context.Context, filter ListFilter) ([]ReviewDetails, int64, error)
	Update(ctx context.Context, review Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ImportJobRepository interface {
	Enqueue(ctx context.Context, sourcePath string) (string, error)
	ClaimNext(ctx context.Context, leaseDuration time.Duration) (*ImportJob, error)
	Heartbeat(ctx context.Context, jobID string, leaseDuration time.Duration) error
	UpdateProgress(ctx context.Context, jobID string, progress ImportProgress) error
	Complete(ctx context.Context, jobID string, summary ImportSummary) error
	Requeue(ctx context.Context, jobID string, reason string) error
	Fail(ctx context.Context, jobID string, reason string) error
}
