package service

import "context"

// Cache keys for the catalog list endpoints.
const (
	genresCacheKey = "cache:genres"
	moviesCacheKey = "cache:movies"
)

// CatalogCache abstracts the list cache (Redis). A nil CatalogCache disables
// caching; cache failures are logged and the database is used instead.
type CatalogCache interface {
	// Get unmarshals the cached payload for key into v. The boolean reports
	// whether the key was present.
	Get(ctx context.Context, key string, v any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, keys ...string) error
}
