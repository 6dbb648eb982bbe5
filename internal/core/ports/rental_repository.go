package ports

import (
	"context"
	"time"

	"github.com/vidly/rental-system/internal/core/domain"
)

// RentalRepository defines persistence operations for rentals.
type RentalRepository interface {
	// List returns all rentals sorted by rental date, newest first.
	List(ctx context.Context) ([]*domain.Rental, error)

	// Create inserts the rental and fills in its generated ID.
	Create(ctx context.Context, r *domain.Rental) error

	// FindByCustomerAndMovie matches on the customer and movie IDs embedded in
	// the rental snapshots, open or closed. Returns ErrRentalNotFound when no
	// rental exists for the pair.
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*domain.Rental, error)

	// Close sets return_date and rentalFee, but only if return_date is still
	// unset at write time. Returns false when the rental was already closed
	// (or no longer exists), the losing side of a concurrent return.
	Close(ctx context.Context, id string, returnDate time.Time, fee float64) (bool, error)
}
