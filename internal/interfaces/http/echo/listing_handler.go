package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/travel-booking/internal/application/travel"
)

type ListingHandler struct {
	service app.ListingService
}

type listingRequest struct {
	HostID        *string  `json:"host_id"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Location      *string  `json:"location"`
	PricePerNight *float64 `json:"price_per_night"`
}

func (r listingRequest) input() app.ListingInput {
	return app.ListingInput{
		HostID:        r.HostID,
		Name:          r.Name,
		Description:   r.Description,
		Location:      r.Location,
		PricePerNight: r.PricePerNight,
	}
}

func NewListingHandler(service app.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

func (h *ListingHandler) List(c echo.Context) error {
	out, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ListingHandler) Create(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	out, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *ListingHandler) Get(c echo.Context) error {
	out, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ListingHandler) Update(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	out, err := h.service.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ListingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
