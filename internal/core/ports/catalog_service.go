package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

// GenreService defines use-case operations for genres.
type GenreService interface {
	List(ctx context.Context) ([]*domain.Genre, error)
	Get(ctx context.Context, id string) (*domain.Genre, error)
	Create(ctx context.Context, name string) (*domain.Genre, error)
	Update(ctx context.Context, id, name string) (*domain.Genre, error)
	Delete(ctx context.Context, id string) (*domain.Genre, error)
}

// CustomerInput carries the data needed to create or update a customer.
type CustomerInput struct {
	Name   string
	Phone  string
	IsGold bool
}

// CustomerService defines use-case operations for customers.
type CustomerService interface {
	List(ctx context.Context) ([]*domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, input CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id string, input CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) (*domain.Customer, error)
}

// MovieInput carries the data needed to create or update a movie. GenreID
// must reference an existing genre; the service embeds a snapshot of it.
type MovieInput struct {
	Title           string
	GenreID         string
	NumberInStock   int
	DailyRentalRate float64
}

// MovieService defines use-case operations for movies.
type MovieService interface {
	List(ctx context.Context) ([]*domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	Create(ctx context.Context, input MovieInput) (*domain.Movie, error)
	Update(ctx context.Context, id string, input MovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id string) (*domain.Movie, error)
}
