package bootstrap

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	app "github.com/mohammadpnp/travel-booking/internal/application/travel"
	"github.com/mohammadpnp/travel-booking/internal/infrastructure/repository"
	"github.com/mohammadpnp/travel-booking/internal/infrastructure/security"
	httpecho "github.com/mohammadpnp/travel-booking/internal/interfaces/http/echo"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Security struct {
	Hasher *security.BcryptHasher
	Tokens *security.JWTManager
}

func NewHTTPServer(db *gorm.DB, sec Security, logger logrus.FieldLogger) *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(httpecho.RequestLogger(logger))
	server.Use(middleware.BodyLimit("10M"))

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	importJobRepo := repository.NewImportJobRepository(db)

	httpecho.RegisterRoutes(server, httpecho.Handlers{
		Auth:     httpecho.NewAuthHandler(app.NewLogin(userRepo, sec.Hasher, sec.Tokens)),
		Users:    httpecho.NewUserHandler(app.NewUserService(userRepo, sec.Hasher)),
		Listings: httpecho.NewListingHandler(app.NewListingService(listingRepo)),
		Bookings: httpecho.NewBookingHandler(app.NewBookingService(bookingRepo)),
		Reviews:  httpecho.NewReviewHandler(app.NewReviewService(reviewRepo)),
		Imports:  httpecho.NewImportHandler(app.NewImportService(importJobRepo)),
		Tokens:   sec.Tokens,
	})

	return server
}
