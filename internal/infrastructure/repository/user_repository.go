package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
	"github.com/mohammadpnp/travel-booking/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	row := userToModel(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translateError(err, "create user")
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.first(ctx, "id = ?", id.String())
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepository) first(ctx context.Context, query string, arg any) (*domain.User, error) {
	var row models.User
	err := r.db.WithContext(ctx).Where(query, arg).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	user := userFromModel(row)
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.User, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Search == "" {
			return db
		}
		p := likePattern(filter.Search)
		return db.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", p, p, p)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	var rows []models.User
	err := r.db.WithContext(ctx).
		Scopes(scope, page(filter)).
		Order("first_name, id").
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, userFromModel(row))
	}
	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID.String()).
		Updates(map[string]any{
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"email":         user.Email,
			"password_hash": user.PasswordHash,
			"phone_number":  user.PhoneNumber,
			"updated_at":    user.UpdatedAt,
		})
	if res.Error != nil {
		return translateError(res.Error, "update user")
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes, in order: reviews and bookings that reference the user or
// one of the user's listings, the listings hosted by the user, the user.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	userID := id.String()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hosted := tx.Model(&models.Listing{}).Select("id").Where("host_id = ?", userID)

		if err := tx.Where("user_id = ? OR listing_id IN (?)", userID, hosted).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("delete user reviews: %w", err)
		}
		if err := tx.Where("user_id = ? OR listing_id IN (?)", userID, hosted).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("delete user bookings: %w", err)
		}
		if err := tx.Where("host_id = ?", userID).Delete(&models.Listing{}).Error; err != nil {
			return fmt.Errorf("delete user listings: %w", err)
		}

		res := tx.Where("id = ?", userID).Delete(&models.User{})
		if res.Error != nil {
			return fmt.Errorf("delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}

// page applies the limit/offset of a list filter.
func page(filter domain.ListFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Limit > 0 {
			db = db.Limit(filter.Limit)
		}
		if filter.Offset > 0 {
			db = db.Offset(filter.Offset)
		}
		return db
	}
}
