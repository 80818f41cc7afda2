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

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review domain.Review) error {
	row := reviewToModel(review)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return translateError(err, "create review")
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewDetails, error) {
	var row models.Review
	err := r.db.WithContext(ctx).
		Preload("Listing.Host").
		Preload("User").
		Where("id = ?", id.String()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review by id: %w", err)
	}

	review := reviewFromModel(row)
	return &review, nil
}

func (r *ReviewRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.ReviewDetails, int64, error) {
	scope := listingAndPartyScope(r.db, filter)

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Review{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	var rows []models.Review
	err := r.db.WithContext(ctx).
		Preload("Listing.Host").
		Preload("User").
		Scopes(scope, page(filter)).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}

	reviews := make([]domain.ReviewDetails, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, reviewFromModel(row))
	}
	return reviews, total, nil
}

func (r *ReviewRepository) Update(ctx context.Context, review domain.Review) error {
	res := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", review.ID.String()).
		Updates(map[string]any{
			"listing_id": review.ListingID.String(),
			"user_id":    review.UserID.String(),
			"rating":     review.Rating,
			"comment":    review.Comment,
			"updated_at": review.UpdatedAt,
		})
	if res.Error != nil {
		return translateError(res.Error, "update review")
	}
	if res.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&models.Review{})
	if res.Error != nil {
		return fmt.Errorf("delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
