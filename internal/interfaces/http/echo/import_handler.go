package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/travel-booking/internal/application/travel"
)

type ImportHandler struct {
	service app.ImportService
}

type importUsersRequest struct {
	SourcePath string `json:"source_path"`
}

func NewImportHandler(service app.ImportService) *ImportHandler {
	return &ImportHandler{service: service}
}

// StartUsers queues a bulk import; the job runs asynchronously and is polled
// through Get.
func (h *ImportHandler) StartUsers(c echo.Context) error {
	var req importUsersRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	out, err := h.service.StartUsersImport(c.Request().Context(), app.ImportUsersInput{SourcePath: req.SourcePath})
	if err != nil {
		return respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse("imports.get", out.ID))
	return c.JSON(http.StatusAccepted, apiResponse{Data: out})
}

func (h *ImportHandler) Get(c echo.Context) error {
	out, err := h.service.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
