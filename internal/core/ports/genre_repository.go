package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

// GenreRepository defines persistence operations for genres.
type GenreRepository interface {
	// List returns all genres sorted by name.
	List(ctx context.Context) ([]*domain.Genre, error)
	FindByID(ctx context.Context, id string) (*domain.Genre, error)
	// Create inserts the genre and fills in its generated ID.
	Create(ctx context.Context, g *domain.Genre) error
	Update(ctx context.Context, g *domain.Genre) error
	Delete(ctx context.Context, id string) error
}
