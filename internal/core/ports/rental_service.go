package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

// RentalService implements the rental lifecycle: checkout with a stock
// decrement and return processing with fee calculation and a stock increment.
// Both are multi-record transitions applied as one transaction.
type RentalService interface {
	// Create checks that the movie and customer exist and that the movie is in
	// stock, then inserts a rental (with snapshots of both records) and
	// decrements the movie's stock as a single atomic unit.
	// Errors: ErrInvalidMovie, ErrInvalidCustomer, ErrOutOfStock.
	Create(ctx context.Context, movieID, customerID string) (*domain.Rental, error)

	// Return closes the open rental for the customer/movie pair: sets the
	// return date, computes the fee from the snapshot rate, and increments the
	// movie's stock, atomically.
	// Errors: ErrRentalNotFound, ErrAlreadyReturned.
	Return(ctx context.Context, customerID, movieID string) (*domain.Rental, error)

	List(ctx context.Context) ([]*domain.Rental, error)
}
