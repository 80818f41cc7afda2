package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/travel-booking/internal/application/travel"
)

// BookingHandler serves routes mounted behind RequireAuth.
type BookingHandler struct {
	service app.BookingService
}

type bookingRequest struct {
	ListingID  *string  `json:"listing_id"`
	UserID     *string  `json:"user_id"`
	StartDate  *string  `json:"start_date"`
	EndDate    *string  `json:"end_date"`
	TotalPrice *float64 `json:"total_price"`
	Status     *string  `json:"status"`
}

func (r bookingRequest) input() app.BookingInput {
	return app.BookingInput{
		ListingID:  r.ListingID,
		UserID:     r.UserID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		TotalPrice: r.TotalPrice,
		Status:     r.Status,
	}
}

func NewBookingHandler(service app.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) List(c echo.Context) error {
	out, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

// Create books for the caller unless user_id is given, and under a nested
// route books the enclosing listing unless listing_id is given.
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}
	if req.ListingID == nil {
		req.ListingID = pathListingID(c)
	}
	if req.UserID == nil {
		if callerID, ok := CallerID(c); ok {
			id := callerID.String()
			req.UserID = &id
		}
	}

	out, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *BookingHandler) Get(c echo.Context) error {
	out, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *BookingHandler) Update(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	out, err := h.service.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
