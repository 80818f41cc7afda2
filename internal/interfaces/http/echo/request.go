package echo

import (
	"strconv"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/travel-booking/internal/application/travel"
)

// listQuery reads search and paging parameters. Routes nested under a
// listing also pass the listing id from the path.
func listQuery(c echo.Context) app.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	return app.ListQuery{
		Search:    c.QueryParam("search"),
		Page:      page,
		PageSize:  pageSize,
		ListingID: c.Param("listing_id"),
	}
}

// pathListingID returns the enclosing listing of a nested route, or nil.
func pathListingID(c echo.Context) *string {
	id := c.Param("listing_id")
	if id == "" {
		return nil
	}
	return &id
}
