package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-system/internal/api/metrics"
	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

// RentalService orchestrates the rental lifecycle. Every state change runs as
// one transaction so the pair of effects (rental record, stock count) is
// never observably inconsistent: either both land or neither does.
type RentalService struct {
	rentals   ports.RentalRepository
	movies    ports.MovieRepository
	customers ports.CustomerRepository
	tx        ports.TxRunner
	cache     CatalogCache
	logger    zerolog.Logger
}

func NewRentalService(
	rentals ports.RentalRepository,
	movies ports.MovieRepository,
	customers ports.CustomerRepository,
	tx ports.TxRunner,
	cache CatalogCache,
	logger zerolog.Logger,
) *RentalService {
	return &RentalService{
		rentals:   rentals,
		movies:    movies,
		customers: customers,
		tx:        tx,
		cache:     cache,
		logger:    logger,
	}
}

// Create checks out a movie for a customer: inserts a rental carrying
// snapshots of both records and decrements the movie's stock.
//
// The stock precheck only produces a friendly early failure; the authoritative
// check is the conditional decrement inside the transaction, which requires
// stock > 0 at write time. Two concurrent checkouts of the last copy therefore
// resolve to exactly one rental.
func (s *RentalService) Create(ctx context.Context, movieID, customerID string) (*domain.Rental, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			metrics.RentalsRejectedTotal.WithLabelValues("invalid_movie").Inc()
			return nil, domain.ErrInvalidMovie
		}
		return nil, fmt.Errorf("create rental: %w", err)
	}

	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			metrics.RentalsRejectedTotal.WithLabelValues("invalid_customer").Inc()
			return nil, domain.ErrInvalidCustomer
		}
		return nil, fmt.Errorf("create rental: %w", err)
	}

	if movie.NumberInStock <= 0 {
		metrics.RentalsRejectedTotal.WithLabelValues("out_of_stock").Inc()
		return nil, domain.ErrOutOfStock
	}

	rental := &domain.Rental{
		Movie: domain.MovieSnapshot{
			ID:              movie.ID,
			Title:           movie.Title,
			DailyRentalRate: movie.DailyRentalRate,
		},
		Customer: domain.CustomerSnapshot{
			ID:     customer.ID,
			Name:   customer.Name,
			Phone:  customer.Phone,
			IsGold: customer.IsGold,
		},
		RentalDate: time.Now().UTC(),
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		ok, err := s.movies.DecrementStock(ctx, movie.ID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrOutOfStock
		}
		return s.rentals.Create(ctx, rental)
	})
	if err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			metrics.RentalsRejectedTotal.WithLabelValues("out_of_stock").Inc()
			return nil, domain.ErrOutOfStock
		}
		s.logger.Error().Err(err).Str("movie_id", movieID).Str("customer_id", customerID).Msg("failed to create rental")
		return nil, fmt.Errorf("create rental: %w", err)
	}

	s.invalidateMovieCache(ctx)
	metrics.RentalsCreatedTotal.Inc()
	s.logger.Info().
		Str("rental_id", rental.ID).
		Str("movie_id", movie.ID).
		Str("customer_id", customer.ID).
		Msg("rental created")

	return rental, nil
}

// Return closes the open rental for the customer/movie pair: sets the return
// date, computes the fee from the snapshot rate, and restores the stock.
//
// The close is conditional on return_date still being unset at write time, so
// a second return attempt, sequential or concurrent, fails with
// ErrAlreadyReturned and the stock is incremented exactly once.
func (s *RentalService) Return(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	rental, err := s.rentals.FindByCustomerAndMovie(ctx, customerID, movieID)
	if err != nil {
		if errors.Is(err, domain.ErrRentalNotFound) {
			metrics.ReturnsRejectedTotal.WithLabelValues("not_found").Inc()
			return nil, domain.ErrRentalNotFound
		}
		return nil, fmt.Errorf("process return: %w", err)
	}

	if rental.Returned() {
		metrics.ReturnsRejectedTotal.WithLabelValues("already_returned").Inc()
		return nil, domain.ErrAlreadyReturned
	}

	returnDate := time.Now().UTC()
	fee := domain.RentalFee(rental.RentalDate, returnDate, rental.Movie.DailyRentalRate)

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		closed, err := s.rentals.Close(ctx, rental.ID, returnDate, fee)
		if err != nil {
			return err
		}
		if !closed {
			return domain.ErrAlreadyReturned
		}

		ok, err := s.movies.IncrementStock(ctx, rental.Movie.ID)
		if err != nil {
			return err
		}
		if !ok {
			// The movie was deleted while the rental was open. The return still
			// stands; surface the skipped restock instead of ignoring it.
			metrics.StockInconsistenciesTotal.Inc()
			s.logger.Warn().
				Str("rental_id", rental.ID).
				Str("movie_id", rental.Movie.ID).
				Msg("stock increment skipped: movie no longer exists")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyReturned) {
			metrics.ReturnsRejectedTotal.WithLabelValues("already_returned").Inc()
			return nil, domain.ErrAlreadyReturned
		}
		s.logger.Error().Err(err).Str("rental_id", rental.ID).Msg("failed to process return")
		return nil, fmt.Errorf("process return: %w", err)
	}

	rental.ReturnDate = &returnDate
	rental.RentalFee = &fee

	s.invalidateMovieCache(ctx)
	metrics.ReturnsProcessedTotal.Inc()
	metrics.RentalFeeCharged.Observe(fee)
	s.logger.Info().
		Str("rental_id", rental.ID).
		Str("movie_id", rental.Movie.ID).
		Float64("fee", fee).
		Msg("return processed")

	return rental, nil
}

// List returns all rentals, newest first.
func (s *RentalService) List(ctx context.Context) ([]*domain.Rental, error) {
	return s.rentals.List(ctx)
}

// invalidateMovieCache drops the cached movie list after a stock change.
func (s *RentalService) invalidateMovieCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, moviesCacheKey); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate movie cache")
	}
}
