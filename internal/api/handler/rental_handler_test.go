package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-system/internal/core/domain"
)

// stubRentalService returns canned responses so handler tests exercise only
// the HTTP mapping.
type stubRentalService struct {
	createRental *domain.Rental
	createErr    error
	returnRental *domain.Rental
	returnErr    error
	rentals      []*domain.Rental
	listErr      error
}

func (s *stubRentalService) Create(_ context.Context, movieID, customerID string) (*domain.Rental, error) {
	return s.createRental, s.createErr
}

func (s *stubRentalService) Return(_ context.Context, customerID, movieID string) (*domain.Rental, error) {
	return s.returnRental, s.returnErr
}

func (s *stubRentalService) List(_ context.Context) ([]*domain.Rental, error) {
	return s.rentals, s.listErr
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleRental() *domain.Rental {
	return &domain.Rental{
		ID: "rental-1",
		Movie: domain.MovieSnapshot{
			ID:              "movie-1",
			Title:           "the terminator",
			DailyRentalRate: 2,
		},
		Customer: domain.CustomerSnapshot{
			ID:    "customer-1",
			Name:  "Maria Lopez",
			Phone: "5551234",
		},
		RentalDate: time.Now().UTC(),
	}
}

func TestRentalHandler_Create_Success(t *testing.T) {
	svc := &stubRentalService{createRental: sampleRental()}
	h := NewRentalHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/rentals",
		`{"movieId":"movie-1","customerId":"customer-1"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"rental-1"`) {
		t.Errorf("response must carry the rental: %s", rec.Body.String())
	}
}

func TestRentalHandler_Create_MissingFields(t *testing.T) {
	h := NewRentalHandler(&stubRentalService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/rentals", `{"movieId":"movie-1"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestRentalHandler_Create_MalformedBody(t *testing.T) {
	h := NewRentalHandler(&stubRentalService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/rentals", `{not json`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRentalHandler_Create_DomainRejections(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"invalid movie", domain.ErrInvalidMovie},
		{"invalid customer", domain.ErrInvalidCustomer},
		{"out of stock", domain.ErrOutOfStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewRentalHandler(&stubRentalService{createErr: tc.err})
			c, rec := newTestContext(t, http.MethodPost, "/api/rentals",
				`{"movieId":"movie-1","customerId":"customer-1"}`)

			if err := h.Create(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.err.Error()) {
				t.Errorf("response must carry the rejection reason: %s", rec.Body.String())
			}
		})
	}
}

func TestRentalHandler_List(t *testing.T) {
	svc := &stubRentalService{rentals: []*domain.Rental{sampleRental()}}
	h := NewRentalHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/rentals", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
