package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
	"github.com/mohammadpnp/travel-booking/internal/infrastructure/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking domain.Booking) error {
	row := bookingToModel(booking)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return translateError(err, "create booking")
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingDetails, error) {
	var row models.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing.Host").
		Preload("User").
		Where("id = ?", id.String()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	booking := bookingFromModel(row)
	return &booking, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.BookingDetails, int64, error) {
	scope := listingAndPartyScope(r.db, filter)

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Booking{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	var rows []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing.Host").
		Preload("User").
		Scopes(scope, page(filter)).
		Order("start_date, id").
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}

	bookings := make([]domain.BookingDetails, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, bookingFromModel(row))
	}
	return bookings, total, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking domain.Booking) error {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", booking.ID.String()).
		Updates(map[string]any{
			"listing_id":  booking.ListingID.String(),
			"user_id":     booking.UserID.String(),
			"start_date":  booking.StartDate,
			"end_date":    booking.EndDate,
			"total_price": booking.TotalPrice,
			"status":      string(booking.Status),
			"updated_at":  booking.UpdatedAt,
		})
	if res.Error != nil {
		return translateError(res.Error, "update booking")
	}
	if res.RowsAffected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&models.Booking{})
	if res.Error != nil {
		return fmt.Errorf("delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// listingAndPartyScope filters rows that reference a listing and a user:
// by listing id, and by a search over the listing name and the user's names.
func listingAndPartyScope(base *gorm.DB, filter domain.ListFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.ListingID != uuid.Nil {
			db = db.Where("listing_id = ?", filter.ListingID.String())
		}
		if filter.Search != "" {
			p := likePattern(filter.Search)
			listings := base.Model(&models.Listing{}).Select("id").Where("name ILIKE ?", p)
			users := base.Model(&models.User{}).Select("id").Where("first_name ILIKE ? OR last_name ILIKE ?", p, p)
			db = db.Where("listing_id IN (?) OR user_id IN (?)", listings, users)
		}
		return db
	}
}
