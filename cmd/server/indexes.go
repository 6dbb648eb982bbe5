package main

import (
	"context"

	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/vidly/rental-system/internal/infrastructure/db/mongo"
)

// ensureIndexes creates the indexes each collection relies on. Run at
// startup so a fresh database is usable immediately.
func ensureIndexes(ctx context.Context, db *driver.Database) error {
	if err := mongo.NewMovieRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongo.NewRentalRepository(db).EnsureIndexes(ctx)
}
