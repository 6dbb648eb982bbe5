package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

// UserInput carries the data needed to register or update a user.
type UserInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService implements registration, login, and user administration.
type AuthService interface {
	// Register creates a user with a hashed password and returns it together
	// with a freshly issued token. Errors: ErrUserExists.
	Register(ctx context.Context, input UserInput) (*domain.User, string, error)

	// Login verifies the credentials and returns a signed token.
	// Errors: ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
