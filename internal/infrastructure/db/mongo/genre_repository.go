package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vidly/rental-system/internal/core/domain"
)

const collectionGenres = "genres"

type GenreRepository struct {
	col *mongo.Collection
}

func NewGenreRepository(db *mongo.Database) *GenreRepository {
	return &GenreRepository{col: db.Collection(collectionGenres)}
}

type genreDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (d genreDoc) toDomain() *domain.Genre {
	return &domain.Genre{ID: d.ID.Hex(), Name: d.Name}
}

func (r *GenreRepository) List(ctx context.Context) ([]*domain.Genre, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}

	var docs []genreDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}

	genres := make([]*domain.Genre, len(docs))
	for i, d := range docs {
		genres[i] = d.toDomain()
	}
	return genres, nil
}

func (r *GenreRepository) FindByID(ctx context.Context, id string) (*domain.Genre, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGenreNotFound
	}

	var d genreDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, fmt.Errorf("find genre: %w", err)
	}
	return d.toDomain(), nil
}

func (r *GenreRepository) Create(ctx context.Context, g *domain.Genre) error {
	res, err := r.col.InsertOne(ctx, genreDoc{Name: g.Name})
	if err != nil {
		return fmt.Errorf("insert genre: %w", err)
	}
	g.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *GenreRepository) Update(ctx context.Context, g *domain.Genre) error {
	oid, err := primitive.ObjectIDFromHex(g.ID)
	if err != nil {
		return domain.ErrGenreNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"name": g.Name}})
	if err != nil {
		return fmt.Errorf("update genre: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGenreNotFound
	}
	return nil
}

func (r *GenreRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGenreNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGenreNotFound
	}
	return nil
}
