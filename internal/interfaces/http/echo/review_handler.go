package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/travel-booking/internal/application/travel"
)

type ReviewHandler struct {
	service app.ReviewService
}

type reviewRequest struct {
	ListingID *string `json:"listing_id"`
	UserID    *string `json:"user_id"`
	Rating    *int    `json:"rating"`
	Comment   *string `json:"comment"`
}

func (r reviewRequest) input() app.ReviewInput {
	return app.ReviewInput{
		ListingID: r.ListingID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func NewReviewHandler(service app.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) List(c echo.Context) error {
	out, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ReviewHandler) Create(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}
	if req.ListingID == nil {
		req.ListingID = pathListingID(c)
	}

	out, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *ReviewHandler) Get(c echo.Context) error {
	out, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ReviewHandler) Update(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	out, err := h.service.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
