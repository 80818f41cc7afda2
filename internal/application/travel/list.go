package travel

import (
	"strings"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListQuery is the caller-controlled part of a collection read. ListingID
// scopes bookings and reviews to one listing and is ignored elsewhere.
type ListQuery struct {
	Search    string
	Page      int
	PageSize  int
	ListingID string
}

type Page[T any] struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Results  []T   `json:"results"`
}

func (q ListQuery) filter() (domain.ListFilter, int, int, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	listingID := uuid.Nil
	if strings.TrimSpace(q.ListingID) != "" {
		id, err := parseID(q.ListingID)
		if err != nil {
			return domain.ListFilter{}, 0, 0, err
		}
		listingID = id
	}

	return domain.ListFilter{
		Search:    strings.TrimSpace(q.Search),
		ListingID: listingID,
		Limit:     size,
		Offset:    (page - 1) * size,
	}, page, size, nil
}
