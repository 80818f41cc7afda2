package echo

import (
	"net/http"

	e "github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Listings *ListingHandler
	Bookings *BookingHandler
	Reviews  *ReviewHandler
	Imports  *ImportHandler
	Tokens   TokenVerifier
}

type resourceHandler interface {
	List(c e.Context) error
	Create(c e.Context) error
	Get(c e.Context) error
	Update(c e.Context) error
	Delete(c e.Context) error
}

// RegisterRoutes mounts every non-nil handler. Each resource is reachable at
// the top level and nested under /listings/:listing_id.
func RegisterRoutes(server *e.Echo, h Handlers) {
	server.HTTPErrorHandler = HTTPErrorHandler

	server.GET("/healthz", func(c e.Context) error {
		return c.JSON(http.StatusOK, apiResponse{Data: map[string]string{"status": "ok"}})
	})

	api := server.Group("/api/v1")
	nested := api.Group("/listings/:listing_id")

	if h.Auth != nil {
		api.POST("/auth/login", h.Auth.Login)
	}
	if h.Users != nil {
		registerResource(api, "/users", h.Users)
		registerResource(nested, "/users", h.Users)
	}
	if h.Listings != nil {
		registerResource(api, "/listings", h.Listings)
		registerResource(nested, "/listings", h.Listings)
	}
	if h.Bookings != nil && h.Tokens != nil {
		auth := RequireAuth(h.Tokens)
		registerResource(api, "/bookings", h.Bookings, auth)
		registerResource(nested, "/bookings", h.Bookings, auth)
	}
	if h.Reviews != nil {
		registerResource(api, "/reviews", h.Reviews)
		registerResource(nested, "/reviews", h.Reviews)
	}
	if h.Imports != nil {
		api.POST("/imports/users", h.Imports.StartUsers)
		api.GET("/imports/:id", h.Imports.Get).Name = "imports.get"
	}
}

func registerResource(g *e.Group, path string, h resourceHandler, mw ...e.MiddlewareFunc) {
	g.GET(path, h.List, mw...)
	g.POST(path, h.Create, mw...)
	g.GET(path+"/:id", h.Get, mw...)
	g.PUT(path+"/:id", h.Update, mw...)
	g.PATCH(path+"/:id", h.Update, mw...)
	g.DELETE(path+"/:id", h.Delete, mw...)
}
