package travel

import (
	"time"

	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

// Read shapes expand related entities; write shapes (the *Input types) only
// carry their identifiers.

type UserOutput struct {
	ID          string    `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	FullName    string    `json:"full_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListingOutput struct {
	ID            string     `json:"listing_id"`
	Host          UserOutput `json:"host"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	PricePerNight float64    `json:"price_per_night"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BookingOutput struct {
	ID         string        `json:"booking_id"`
	Listing    ListingOutput `json:"listing"`
	User       UserOutput    `json:"user"`
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	TotalPrice float64       `json:"total_price"`
	Status     string        `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type ReviewOutput struct {
	ID        string        `json:"review_id"`
	Listing   ListingOutput `json:"listing"`
	User      UserOutput    `json:"user"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func newUserOutput(u domain.User) UserOutput {
	return UserOutput{
		ID:          u.ID.String(),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		FullName:    u.FullName(),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func newListingOutput(l domain.ListingDetails) ListingOutput {
	return ListingOutput{
		ID:            l.ID.String(),
		Host:          newUserOutput(l.Host),
		Name:          l.Name,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: l.PricePerNight,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func newBookingOutput(b domain.BookingDetails) BookingOutput {
	return BookingOutput{
		ID:         b.ID.String(),
		Listing:    newListingOutput(b.Listing),
		User:       newUserOutput(b.User),
		StartDate:  b.StartDate.Format(DateLayout),
		EndDate:    b.EndDate.Format(DateLayout),
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func newReviewOutput(r domain.ReviewDetails) ReviewOutput {
	return ReviewOutput{
		ID:        r.ID.String(),
		Listing:   newListingOutput(r.Listing),
		User:      newUserOutput(r.User),
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func mapOutputs[In, Out any](in []In, conv func(In) Out) []Out {
	out := make([]Out, 0, len(in))
	for _, v := range in {
		out = append(out, conv(v))
	}
	return out
}
