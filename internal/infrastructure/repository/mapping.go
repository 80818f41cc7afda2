package repository

import (
	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
	"github.com/mohammadpnp/travel-booking/internal/infrastructure/db/models"
)

func toUUID(value string) uuid.UUID {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func userToModel(u domain.User) models.User {
	return models.User{
		ID:           u.ID.String(),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		PhoneNumber:  u.PhoneNumber,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func userFromModel(row models.User) domain.User {
	return domain.User{
		ID:           toUUID(row.ID),
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		PhoneNumber:  row.PhoneNumber,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func listingToModel(l domain.Listing) models.Listing {
	return models.Listing{
		ID:            l.ID.String(),
		HostID:        l.HostID.String(),
		Name:          l.Name,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: l.PricePerNight,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func listingFromModel(row models.Listing) domain.ListingDetails {
	return domain.ListingDetails{
		Listing: domain.Listing{
			ID:            toUUID(row.ID),
			HostID:        toUUID(row.HostID),
			Name:          row.Name,
			Description:   row.Description,
			Location:      row.Location,
			PricePerNight: row.PricePerNight,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		},
		Host: userFromModel(row.Host),
	}
}

func bookingToModel(b domain.Booking) models.Booking {
	return models.Booking{
		ID:         b.ID.String(),
		ListingID:  b.ListingID.String(),
		UserID:     b.UserID.String(),
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func bookingFromModel(row models.Booking) domain.BookingDetails {
	return domain.BookingDetails{
		Booking: domain.Booking{
			ID:         toUUID(row.ID),
			ListingID:  toUUID(row.ListingID),
			UserID:     toUUID(row.UserID),
			StartDate:  domain.DateOnly(row.StartDate),
			EndDate:    domain.DateOnly(row.EndDate),
			TotalPrice: row.TotalPrice,
			Status:     domain.BookingStatus(row.Status),
			CreatedAt:  row.CreatedAt,
			UpdatedAt:  row.UpdatedAt,
		},
		Listing: listingFromModel(row.Listing),
		User:    userFromModel(row.User),
	}
}

func reviewToModel(r domain.Review) models.Review {
	return models.Review{
		ID:        r.ID.String(),
		ListingID: r.ListingID.String(),
		UserID:    r.UserID.String(),
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func reviewFromModel(row models.Review) domain.ReviewDetails {
	return domain.ReviewDetails{
		Review: domain.Review{
			ID:        toUUID(row.ID),
			ListingID: toUUID(row.ListingID),
			UserID:    toUUID(row.UserID),
			Rating:    row.Rating,
			Comment:   row.Comment,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		Listing: listingFromModel(row.Listing),
		User:    userFromModel(row.User),
	}
}
