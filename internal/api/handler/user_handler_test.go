package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

type stubAuthService struct {
	user        *domain.User
	token       string
	registerErr error
	loginErr    error
	getErr      error
}

func (s *stubAuthService) Register(_ context.Context, input ports.UserInput) (*domain.User, string, error) {
	if s.registerErr != nil {
		return nil, "", s.registerErr
	}
	return s.user, s.token, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) Get(_ context.Context, id string) (*domain.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.user, nil
}

func (s *stubAuthService) List(_ context.Context) ([]*domain.User, error) {
	return []*domain.User{s.user}, nil
}

func (s *stubAuthService) Update(_ context.Context, id string, input ports.UserInput) (*domain.User, error) {
	return s.user, nil
}

func (s *stubAuthService) Delete(_ context.Context, id string) (*domain.User, error) {
	return s.user, nil
}

func sampleUser() *domain.User {
	return &domain.User{
		ID:    "user-1",
		Name:  "Alice Johnson",
		Email: "alice@example.com",
	}
}

func TestUserHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{user: sampleUser(), token: "signed-token"}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/users",
		`{"name":"Alice Johnson","email":"alice@example.com","password":"s3cret-password"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "signed-token") {
		t.Errorf("response must carry the token: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("response must not leak password material: %s", rec.Body.String())
	}
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewUserHandler(&stubAuthService{registerErr: domain.ErrUserExists})

	c, rec := newTestContext(t, http.MethodPost, "/api/users",
		`{"name":"Alice Johnson","email":"alice@example.com","password":"s3cret-password"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestUserHandler_Register_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"short name", `{"name":"Al","email":"alice@example.com","password":"s3cret-password"}`},
		{"bad email", `{"name":"Alice Johnson","email":"not-an-email","password":"s3cret-password"}`},
		{"short password", `{"name":"Alice Johnson","email":"alice@example.com","password":"pw"}`},
		{"missing fields", `{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewUserHandler(&stubAuthService{})
			c, rec := newTestContext(t, http.MethodPost, "/api/users", tc.body)

			if err := h.Register(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", rec.Code)
			}
		})
	}
}

func TestUserHandler_Me(t *testing.T) {
	h := NewUserHandler(&stubAuthService{user: sampleUser()})

	c, rec := newTestContext(t, http.MethodGet, "/api/users/me", "")
	c.Set("user_id", "user-1")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "alice@example.com") {
		t.Errorf("response must carry the user: %s", rec.Body.String())
	}
}

func TestUserHandler_Me_MissingClaim(t *testing.T) {
	h := NewUserHandler(&stubAuthService{user: sampleUser()})

	c, rec := newTestContext(t, http.MethodGet, "/api/users/me", "")

	if err := h.Me(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{user: sampleUser(), token: "signed-token"}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth",
		`{"email":"alice@example.com","password":"s3cret-password"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "signed-token") {
		t.Errorf("response must carry the token: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth",
		`{"email":"alice@example.com","password":"wrong"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth", `{"password":"s3cret-password"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}
