package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// List returns all customers sorted by name.
	List(ctx context.Context) ([]*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id string) error
}
