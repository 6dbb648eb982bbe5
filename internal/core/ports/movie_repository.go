package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

// MovieRepository defines persistence operations for movies, including the
// conditional stock writes the rental lifecycle depends on.
type MovieRepository interface {
	// List returns all movies sorted by title.
	List(ctx context.Context) ([]*domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	Create(ctx context.Context, m *domain.Movie) error
	Update(ctx context.Context, m *domain.Movie) error
	Delete(ctx context.Context, id string) error

	// DecrementStock atomically decrements numberInStock by one, but only if
	// the stored value is still positive at write time. Returns false when no
	// document matched (movie gone or stock exhausted); the caller must treat
	// that as out-of-stock, not retry.
	DecrementStock(ctx context.Context, id string) (bool, error)

	// IncrementStock atomically increments numberInStock by one. Returns false
	// when the movie no longer exists.
	IncrementStock(ctx context.Context, id string) (bool, error)
}
