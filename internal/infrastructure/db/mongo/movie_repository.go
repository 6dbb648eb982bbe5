package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vidly/rental-system/internal/core/domain"
)

const collectionMovies = "movies"

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection(collectionMovies)}
}

type genreRefDoc struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

type movieDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Genre           genreRefDoc        `bson:"genre"`
	NumberInStock   int                `bson:"number_in_stock"`
	DailyRentalRate float64            `bson:"daily_rental_rate"`
}

func (d movieDoc) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Genre:           domain.GenreRef{ID: d.Genre.ID.Hex(), Name: d.Genre.Name},
		NumberInStock:   d.NumberInStock,
		DailyRentalRate: d.DailyRentalRate,
	}
}

func toMovieDoc(m *domain.Movie) (movieDoc, error) {
	genreID, err := primitive.ObjectIDFromHex(m.Genre.ID)
	if err != nil {
		return movieDoc{}, fmt.Errorf("movie genre id: %w", err)
	}
	return movieDoc{
		Title:           m.Title,
		Genre:           genreRefDoc{ID: genreID, Name: m.Genre.Name},
		NumberInStock:   m.NumberInStock,
		DailyRentalRate: m.DailyRentalRate,
	}, nil
}

func (r *MovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	var docs []movieDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}

	movies := make([]*domain.Movie, len(docs))
	for i, d := range docs {
		movies[i] = d.toDomain()
	}
	return movies, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	var d movieDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return d.toDomain(), nil
}

func (r *MovieRepository) Create(ctx context.Context, m *domain.Movie) error {
	doc, err := toMovieDoc(m)
	if err != nil {
		return err
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert movie: %w", err)
	}
	m.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *MovieRepository) Update(ctx context.Context, m *domain.Movie) error {
	oid, err := primitive.ObjectIDFromHex(m.ID)
	if err != nil {
		return domain.ErrMovieNotFound
	}
	doc, err := toMovieDoc(m)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"title":             doc.Title,
		"genre":             doc.Genre,
		"number_in_stock":   doc.NumberInStock,
		"daily_rental_rate": doc.DailyRentalRate,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// DecrementStock decrements numberInStock by one, conditioned on the stored
// value still being positive at write time. The condition is part of the
// write predicate, not a separately-read snapshot, which closes the race of
// two checkouts against the last copy.
func (r *MovieRepository) DecrementStock(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	filter := bson.M{"_id": oid, "number_in_stock": bson.M{"$gt": 0}}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"number_in_stock": -1}})
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return res.ModifiedCount == 1, nil
}

// IncrementStock increments numberInStock by one. Returns false when the
// movie no longer exists so the caller can report the inconsistency.
func (r *MovieRepository) IncrementStock(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"number_in_stock": 1}})
	if err != nil {
		return false, fmt.Errorf("increment stock: %w", err)
	}
	return res.ModifiedCount == 1, nil
}

// EnsureIndexes creates necessary indexes on the movies collection.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}},
	})
	return err
}
