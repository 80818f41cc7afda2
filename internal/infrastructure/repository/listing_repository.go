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

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, listing domain.Listing) error {
	row := listingToModel(listing)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return translateError(err, "create listing")
	}
	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ListingDetails, error) {
	var row models.Listing
	err := r.db.WithContext(ctx).
		Preload("Host").
		Where("id = ?", id.String()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("get listing by id: %w", err)
	}

	listing := listingFromModel(row)
	return &listing, nil
}

func (r *ListingRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.ListingDetails, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Search == "" {
			return db
		}
		p := likePattern(filter.Search)
		return db.Where("name ILIKE ? OR location ILIKE ?", p, p)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Listing{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count listings: %w", err)
	}

	var rows []models.Listing
	err := r.db.WithContext(ctx).
		Preload("Host").
		Scopes(scope, page(filter)).
		Order("name, id").
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list listings: %w", err)
	}

	listings := make([]domain.ListingDetails, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, listingFromModel(row))
	}
	return listings, total, nil
}

func (r *ListingRepository) Update(ctx context.Context, listing domain.Listing) error {
	res := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", listing.ID.String()).
		Updates(map[string]any{
			"host_id":         listing.HostID.String(),
			"name":            listing.Name,
			"description":     listing.Description,
			"location":        listing.Location,
			"price_per_night": listing.PricePerNight,
			"updated_at":      listing.UpdatedAt,
		})
	if res.Error != nil {
		return translateError(res.Error, "update listing")
	}
	if res.RowsAffected == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// Delete removes the listing's reviews and bookings before the listing.
func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	listingID := id.String()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", listingID).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("delete listing reviews: %w", err)
		}
		if err := tx.Where("listing_id = ?", listingID).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("delete listing bookings: %w", err)
		}

		res := tx.Where("id = ?", listingID).Delete(&models.Listing{})
		if res.Error != nil {
			return fmt.Errorf("delete listing: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrListingNotFound
		}
		return nil
	})
}
