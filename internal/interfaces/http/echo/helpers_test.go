package echo_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/travel-booking/internal/application/travel"
)

func doRequest(e *echo.Echo, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Fields  map[string][]string `json:"fields"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("unexpected json %q: %v", body, err)
	}
	return env
}

func errorCodeOf(t *testing.T, body []byte) string {
	t.Helper()
	env := decodeEnvelope(t, body)
	if env.Error == nil {
		t.Fatalf("expected error body, got %s", body)
	}
	return env.Error.Code
}

type fakeUserService struct {
	lastInput app.UserInput
	lastID    string
	lastQuery app.ListQuery
	out       app.UserOutput
	err       error
}

func (f *fakeUserService) Create(ctx context.Context, in app.UserInput) (app.UserOutput, error) {
	f.lastInput = in
	return f.out, f.err
}

func (f *fakeUserService) Get(ctx context.Context, id string) (app.UserOutput, error) {
	f.lastID = id
	return f.out, f.err
}

func (f *fakeUserService) List(ctx context.Context, q app.ListQuery) (app.Page[app.UserOutput], error) {
	f.lastQuery = q
	if f.err != nil {
		return app.Page[app.UserOutput]{}, f.err
	}
	return app.Page[app.UserOutput]{Count: 1, Page: 1, PageSize: 20, Results: []app.UserOutput{f.out}}, nil
}

func (f *fakeUserService) Update(ctx context.Context, id string, in app.UserInput) (app.UserOutput, error) {
	f.lastID = id
	f.lastInput = in
	return f.out, f.err
}

func (f *fakeUserService) Delete(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

type fakeListingService struct {
	lastQuery app.ListQuery
	lastID    string
	out       app.ListingOutput
	err       error
}

func (f *fakeListingService) Create(ctx context.Context, in app.ListingInput) (app.ListingOutput, error) {
	return f.out, f.err
}

func (f *fakeListingService) Get(ctx context.Context, id string) (app.ListingOutput, error) {
	f.lastID = id
	return f.out, f.err
}

func (f *fakeListingService) List(ctx context.Context, q app.ListQuery) (app.Page[app.ListingOutput], error) {
	f.lastQuery = q
	return app.Page[app.ListingOutput]{Results: []app.ListingOutput{}}, f.err
}

func (f *fakeListingService) Update(ctx context.Context, id string, in app.ListingInput) (app.ListingOutput, error) {
	f.lastID = id
	return f.out, f.err
}

func (f *fakeListingService) Delete(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

type fakeBookingService struct {
	lastInput app.BookingInput
	lastQuery app.ListQuery
	out       app.BookingOutput
	err       error
}

func (f *fakeBookingService) Create(ctx context.Context, in app.BookingInput) (app.BookingOutput, error) {
	f.lastInput = in
	return f.out, f.err
}

func (f *fakeBookingService) Get(ctx context.Context, id string) (app.BookingOutput, error) {
	return f.out, f.err
}

func (f *fakeBookingService) List(ctx context.Context, q app.ListQuery) (app.Page[app.BookingOutput], error) {
	f.lastQuery = q
	return app.Page[app.BookingOutput]{Results: []app.BookingOutput{}}, f.err
}

func (f *fakeBookingService) Update(ctx context.Context, id string, in app.BookingInput) (app.BookingOutput, error) {
	f.lastInput = in
	return f.out, f.err
}

func (f *fakeBookingService) Delete(ctx context.Context, id string) error {
	return f.err
}

type fakeReviewService struct {
	lastInput app.ReviewInput
	lastQuery app.ListQuery
	out       app.ReviewOutput
	err       error
}

func (f *fakeReviewService) Create(ctx context.Context, in app.ReviewInput) (app.ReviewOutput, error) {
	f.lastInput = in
	return f.out, f.err
}

func (f *fakeReviewService) Get(ctx context.Context, id string) (app.ReviewOutput, error) {
	return f.out, f.err
}

func (f *fakeReviewService) List(ctx context.Context, q app.ListQuery) (app.Page[app.ReviewOutput], error) {
	f.lastQuery = q
	return app.Page[app.ReviewOutput]{Results: []app.ReviewOutput{}}, f.err
}

func (f *fakeReviewService) Update(ctx context.Context, id string, in app.ReviewInput) (app.ReviewOutput, error) {
	f.lastInput = in
	return f.out, f.err
}

func (f *fakeReviewService) Delete(ctx context.Context, id string) error {
	return f.err
}

type fakeLogin struct {
	lastInput app.LoginInput
	out       app.LoginOutput
	err       error
}

func (f *fakeLogin) Execute(ctx context.Context, in app.LoginInput) (app.LoginOutput, error) {
	f.lastInput = in
	return f.out, f.err
}

// fakeVerifier accepts exactly one token.
type fakeVerifier struct {
	token  string
	userID uuid.UUID
}

func (f fakeVerifier) Verify(token string) (uuid.UUID, error) {
	if token != f.token {
		return uuid.Nil, errors.New("bad token")
	}
	return f.userID, nil
}
