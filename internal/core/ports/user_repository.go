package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// List returns all users sorted by email.
	List(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts the user. Returns ErrUserExists when the email is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
