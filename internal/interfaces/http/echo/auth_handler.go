package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/travel-booking/internal/application/travel"
)

type AuthHandler struct {
	login app.Login
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(login app.Login) *AuthHandler {
	return &AuthHandler{login: login}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	out, err := h.login.Execute(c.Request().Context(), app.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
