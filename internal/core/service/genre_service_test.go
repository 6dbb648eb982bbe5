package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/vidly/rental-system/internal/core/domain"
)

type stubGenreRepo struct {
	genres    map[string]*domain.Genre
	listCalls int
	nextID    int
}

func newStubGenreRepo() *stubGenreRepo {
	return &stubGenreRepo{genres: make(map[string]*domain.Genre)}
}

func (r *stubGenreRepo) List(_ context.Context) ([]*domain.Genre, error) {
	r.listCalls++
	out := make([]*domain.Genre, 0, len(r.genres))
	for _, g := range r.genres {
		clone := *g
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubGenreRepo) FindByID(_ context.Context, id string) (*domain.Genre, error) {
	g, ok := r.genres[id]
	if !ok {
		return nil, domain.ErrGenreNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *stubGenreRepo) Create(_ context.Context, g *domain.Genre) error {
	r.nextID++
	g.ID = fmt.Sprintf("genre-%d", r.nextID)
	clone := *g
	r.genres[g.ID] = &clone
	return nil
}

func (r *stubGenreRepo) Update(_ context.Context, g *domain.Genre) error {
	if _, ok := r.genres[g.ID]; !ok {
		return domain.ErrGenreNotFound
	}
	clone := *g
	r.genres[g.ID] = &clone
	return nil
}

func (r *stubGenreRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.genres[id]; !ok {
		return domain.ErrGenreNotFound
	}
	delete(r.genres, id)
	return nil
}

func TestGenreService_Create_NormalizesName(t *testing.T) {
	repo := newStubGenreRepo()
	svc := NewGenreService(repo, nil, discardLogger)

	genre, err := svc.Create(context.Background(), "  Science Fiction ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if genre.Name != "science fiction" {
		t.Errorf("expected lowercased trimmed name, got %q", genre.Name)
	}
	if genre.ID == "" {
		t.Error("genre ID must be assigned")
	}
}

func TestGenreService_List_CacheMissThenHit(t *testing.T) {
	repo := newStubGenreRepo()
	cache := newStubCache()
	svc := NewGenreService(repo, cache, discardLogger)

	_, _ = svc.Create(context.Background(), "action")

	// First call misses the cache and hits the repo.
	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.listCalls)
	}

	// Second call is served from the cache.
	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listCalls != 1 {
		t.Errorf("expected cached list, repo called %d times", repo.listCalls)
	}
	if len(second) != len(first) {
		t.Errorf("cached list length %d, want %d", len(second), len(first))
	}
}

func TestGenreService_List_CacheErrorFallsBack(t *testing.T) {
	repo := newStubGenreRepo()
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	svc := NewGenreService(repo, cache, discardLogger)

	_, _ = svc.Create(context.Background(), "drama")

	genres, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not break listing: %v", err)
	}
	if len(genres) != 1 {
		t.Errorf("expected 1 genre from the database, got %d", len(genres))
	}
}

func TestGenreService_Create_InvalidatesCache(t *testing.T) {
	repo := newStubGenreRepo()
	cache := newStubCache()
	svc := NewGenreService(repo, cache, discardLogger)

	_, _ = svc.Create(context.Background(), "action")
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A write must drop the cached list so the next read sees the new genre.
	_, _ = svc.Create(context.Background(), "horror")
	genres, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(genres) != 2 {
		t.Errorf("expected 2 genres after invalidation, got %d", len(genres))
	}
}

func TestGenreService_Delete_ReturnsDeleted(t *testing.T) {
	repo := newStubGenreRepo()
	svc := NewGenreService(repo, nil, discardLogger)

	created, _ := svc.Create(context.Background(), "western")

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.Name != "western" {
		t.Errorf("expected deleted genre back, got %+v", deleted)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrGenreNotFound) {
		t.Errorf("expected ErrGenreNotFound after delete, got %v", err)
	}
}

func TestGenreService_Delete_NotFound(t *testing.T) {
	repo := newStubGenreRepo()
	svc := NewGenreService(repo, nil, discardLogger)

	_, err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, domain.ErrGenreNotFound) {
		t.Errorf("expected ErrGenreNotFound, got %v", err)
	}
}
