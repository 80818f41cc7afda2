package echo_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/travel-booking/internal/application/travel"
	httpecho "github.com/mohammadpnp/travel-booking/internal/interfaces/http/echo"
)

func newAuthServer(login *fakeLogin) *echo.Echo {
	e := echo.New()
	httpecho.RegisterRoutes(e, httpecho.Handlers{Auth: httpecho.NewAuthHandler(login)})
	return e
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	login := &fakeLogin{out: app.LoginOutput{
		AccessToken: "jwt",
		TokenType:   "Bearer",
		ExpiresAt:   time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC),
		UserID:      userID,
	}}
	rec := doRequest(newAuthServer(login), http.MethodPost, "/api/v1/auth/login",
		`{"email":"ana@example.com","password":"s3cret"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if login.lastInput.Email != "ana@example.com" || login.lastInput.Password != "s3cret" {
		t.Fatalf("unexpected login input: %+v", login.lastInput)
	}

	var out app.LoginOutput
	if err := json.Unmarshal(decodeEnvelope(t, rec.Body.Bytes()).Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if out.AccessToken != "jwt" || out.TokenType != "Bearer" {
		t.Fatalf("unexpected token: %+v", out)
	}
}

func TestAuthHandlerInvalidCredentials(t *testing.T) {
	t.Parallel()

	rec := doRequest(newAuthServer(&fakeLogin{err: app.ErrInvalidCredentials}), http.MethodPost, "/api/v1/auth/login",
		`{"email":"ana@example.com","password":"wrong"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if code := errorCodeOf(t, rec.Body.Bytes()); code != "invalid_credentials" {
		t.Fatalf("unexpected code %q", code)
	}
}
