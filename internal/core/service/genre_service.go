package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-system/internal/api/metrics"
	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

type GenreService struct {
	repo   ports.GenreRepository
	cache  CatalogCache
	logger zerolog.Logger
}

func NewGenreService(repo ports.GenreRepository, cache CatalogCache, logger zerolog.Logger) *GenreService {
	return &GenreService{repo: repo, cache: cache, logger: logger}
}

// List returns all genres sorted by name, served from the cache when warm.
func (s *GenreService) List(ctx context.Context) ([]*domain.Genre, error) {
	if s.cache != nil {
		var cached []*domain.Genre
		hit, err := s.cache.Get(ctx, genresCacheKey, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Msg("genre cache read failed, falling back to database")
		} else if hit {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	genres, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, genresCacheKey, genres); err != nil {
			s.logger.Warn().Err(err).Msg("genre cache write failed")
		}
	}
	return genres, nil
}

func (s *GenreService) Get(ctx context.Context, id string) (*domain.Genre, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a new genre. Names are normalised to lowercase.
func (s *GenreService) Create(ctx context.Context, name string) (*domain.Genre, error) {
	genre := &domain.Genre{Name: normalizeGenreName(name)}
	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info().Str("genre_id", genre.ID).Str("name", genre.Name).Msg("genre created")
	return genre, nil
}

func (s *GenreService) Update(ctx context.Context, id, name string) (*domain.Genre, error) {
	genre := &domain.Genre{ID: id, Name: normalizeGenreName(name)}
	if err := s.repo.Update(ctx, genre); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return genre, nil
}

// Delete removes the genre and returns the deleted record.
func (s *GenreService) Delete(ctx context.Context, id string) (*domain.Genre, error) {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("genre_id", id).Msg("genre deleted")
	return genre, nil
}

func (s *GenreService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, genresCacheKey); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate genre cache")
	}
}

func normalizeGenreName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
