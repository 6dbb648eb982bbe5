package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-system/internal/api/metrics"
	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

type MovieService struct {
	repo   ports.MovieRepository
	genres ports.GenreRepository
	cache  CatalogCache
	logger zerolog.Logger
}

func NewMovieService(repo ports.MovieRepository, genres ports.GenreRepository, cache CatalogCache, logger zerolog.Logger) *MovieService {
	return &MovieService{repo: repo, genres: genres, cache: cache, logger: logger}
}

// List returns all movies sorted by title, served from the cache when warm.
func (s *MovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	if s.cache != nil {
		var cached []*domain.Movie
		hit, err := s.cache.Get(ctx, moviesCacheKey, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Msg("movie cache read failed, falling back to database")
		} else if hit {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, moviesCacheKey, movies); err != nil {
			s.logger.Warn().Err(err).Msg("movie cache write failed")
		}
	}
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a new movie with a snapshot of the referenced genre.
func (s *MovieService) Create(ctx context.Context, input ports.MovieInput) (*domain.Movie, error) {
	genre, err := s.lookupGenre(ctx, input.GenreID)
	if err != nil {
		return nil, err
	}

	movie := &domain.Movie{
		Title:           input.Title,
		Genre:           domain.GenreRef{ID: genre.ID, Name: genre.Name},
		NumberInStock:   input.NumberInStock,
		DailyRentalRate: input.DailyRentalRate,
	}
	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info().Str("movie_id", movie.ID).Str("title", movie.Title).Msg("movie created")
	return movie, nil
}

func (s *MovieService) Update(ctx context.Context, id string, input ports.MovieInput) (*domain.Movie, error) {
	genre, err := s.lookupGenre(ctx, input.GenreID)
	if err != nil {
		return nil, err
	}

	movie := &domain.Movie{
		ID:              id,
		Title:           input.Title,
		Genre:           domain.GenreRef{ID: genre.ID, Name: genre.Name},
		NumberInStock:   input.NumberInStock,
		DailyRentalRate: input.DailyRentalRate,
	}
	if err := s.repo.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return movie, nil
}

// Delete removes the movie and returns the deleted record.
func (s *MovieService) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("movie_id", id).Msg("movie deleted")
	return movie, nil
}

func (s *MovieService) lookupGenre(ctx context.Context, id string) (*domain.Genre, error) {
	genre, err := s.genres.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrGenreNotFound) {
			return nil, domain.ErrInvalidGenre
		}
		return nil, fmt.Errorf("lookup genre: %w", err)
	}
	return genre, nil
}

func (s *MovieService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, moviesCacheKey); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate movie cache")
	}
}
