package travel

import (
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

var (
	ErrInvalidID          = errors.New("invalid id")
	ErrUserNotFound       = errors.New("user not found")
	ErrListingNotFound    = errors.New("listing not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrUserStorage        = errors.New("user storage failure")
	ErrListingStorage     = errors.New("listing storage failure")
	ErrBookingStorage     = errors.New("booking storage failure")
	ErrReviewStorage      = errors.New("review storage failure")
	ErrHashPassword       = errors.New("failed to hash password")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIssueToken         = errors.New("failed to issue token")

	ErrInvalidImportSource = errors.New("invalid import source")
	ErrImportJobNotFound   = errors.New("import job not found")
	ErrImportJobStorage    = errors.New("import job storage failure")
)

// storageError lets validation failures through untouched, maps the
// repository not-found sentinel and wraps everything else.
func storageError(err, repoNotFound, notFound, failed error) error {
	if _, ok := domain.AsValidation(err); ok {
		return err
	}
	if errors.Is(err, repoNotFound) {
		return notFound
	}
	return fmt.Errorf("%w: %v", failed, err)
}
