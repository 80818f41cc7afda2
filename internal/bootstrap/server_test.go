package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mohammadpnp/travel-booking/internal/infrastructure/security"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestNewHTTPServerWiresRoutes(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}

	logger, hook := test.NewNullLogger()
	server := NewHTTPServer(db, Security{
		Hasher: security.NewBcryptHasher(bcrypt.MinCost),
		Tokens: security.NewJWTManager("secret", time.Hour),
	}, logger)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from healthz, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous bookings request, got %d", rec.Code)
	}

	if len(hook.AllEntries()) != 2 {
		t.Fatalf("expected one log entry per request, got %d", len(hook.AllEntries()))
	}
	if got := hook.LastEntry().Data["status"]; got != http.StatusUnauthorized {
		t.Fatalf("unexpected logged status: %v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected sql: %v", err)
	}
}
