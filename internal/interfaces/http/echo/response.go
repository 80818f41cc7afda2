package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/travel-booking/internal/application/travel"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

type errorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

func badRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
		Code:    "bad_request",
		Message: "invalid request body",
	}})
}

// respondError writes the envelope for errors returned by the application
// layer. Unknown errors become a 500 HTTPError so the request logger records
// the cause.
func respondError(c echo.Context, err error) error {
	if verrs, ok := domain.AsValidation(err); ok {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "validation_error",
			Message: "invalid input",
			Fields:  verrs.Fields(),
		}})
	}

	switch {
	case errors.Is(err, app.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "invalid_id",
			Message: "id must be a valid UUID",
		}})
	case errors.Is(err, app.ErrUserNotFound),
		errors.Is(err, app.ErrListingNotFound),
		errors.Is(err, app.ErrBookingNotFound),
		errors.Is(err, app.ErrReviewNotFound),
		errors.Is(err, app.ErrImportJobNotFound):
		return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
			Code:    "not_found",
			Message: err.Error(),
		}})
	case errors.Is(err, app.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
			Code:    "invalid_credentials",
			Message: err.Error(),
		}})
	case errors.Is(err, app.ErrInvalidImportSource):
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "invalid_source",
			Message: "source_path must be a relative .json file",
		}})
	}

	return &echo.HTTPError{
		Code:     http.StatusInternalServerError,
		Message:  "failed to process request",
		Internal: err,
	}
}

// HTTPErrorHandler renders framework and unhandled errors in the same
// envelope as handler responses.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}

	body := apiResponse{Error: &errorBody{Code: errorCode(code), Message: message}}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusInternalServerError:
		return "internal_error"
	default:
		return "error"
	}
}
