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

const collectionRentals = "rentals"

type RentalRepository struct {
	col *mongo.Collection
}

func NewRentalRepository(db *mongo.Database) *RentalRepository {
	return &RentalRepository{col: db.Collection(collectionRentals)}
}

// Snapshots carry the ObjectID of the source record so returns can be matched
// on the customer/movie pair embedded at rental time.
type movieSnapshotDoc struct {
	ID              primitive.ObjectID `bson:"_id"`
	Title           string             `bson:"title"`
	DailyRentalRate float64            `bson:"daily_rental_rate"`
}

type customerSnapshotDoc struct {
	ID     primitive.ObjectID `bson:"_id"`
	Name   string             `bson:"name"`
	Phone  string             `bson:"phone"`
	IsGold bool               `bson:"is_gold"`
}

type rentalDoc struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	Movie      movieSnapshotDoc    `bson:"movie"`
	Customer   customerSnapshotDoc `bson:"customer"`
	RentalDate time.Time           `bson:"rental_date"`
	ReturnDate *time.Time          `bson:"return_date,omitempty"`
	RentalFee  *float64            `bson:"rental_fee,omitempty"`
}

func (d rentalDoc) toDomain() *domain.Rental {
	return &domain.Rental{
		ID: d.ID.Hex(),
		Movie: domain.MovieSnapshot{
			ID:              d.Movie.ID.Hex(),
			Title:           d.Movie.Title,
			DailyRentalRate: d.Movie.DailyRentalRate,
		},
		Customer: domain.CustomerSnapshot{
			ID:     d.Customer.ID.Hex(),
			Name:   d.Customer.Name,
			Phone:  d.Customer.Phone,
			IsGold: d.Customer.IsGold,
		},
		RentalDate: d.RentalDate,
		ReturnDate: d.ReturnDate,
		RentalFee:  d.RentalFee,
	}
}

func (r *RentalRepository) List(ctx context.Context) ([]*domain.Rental, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "rental_date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}

	var docs []rentalDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode rentals: %w", err)
	}

	rentals := make([]*domain.Rental, len(docs))
	for i, d := range docs {
		rentals[i] = d.toDomain()
	}
	return rentals, nil
}

func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	movieID, err := primitive.ObjectIDFromHex(rental.Movie.ID)
	if err != nil {
		return fmt.Errorf("rental movie id: %w", err)
	}
	customerID, err := primitive.ObjectIDFromHex(rental.Customer.ID)
	if err != nil {
		return fmt.Errorf("rental customer id: %w", err)
	}

	doc := rentalDoc{
		Movie: movieSnapshotDoc{
			ID:              movieID,
			Title:           rental.Movie.Title,
			DailyRentalRate: rental.Movie.DailyRentalRate,
		},
		Customer: customerSnapshotDoc{
			ID:     customerID,
			Name:   rental.Customer.Name,
			Phone:  rental.Customer.Phone,
			IsGold: rental.Customer.IsGold,
		},
		RentalDate: rental.RentalDate,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert rental: %w", err)
	}
	rental.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// FindByCustomerAndMovie matches on the IDs stored in the rental snapshots,
// not on the current customer/movie records.
func (r *RentalRepository) FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	custOID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, domain.ErrRentalNotFound
	}
	movOID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, domain.ErrRentalNotFound
	}

	var d rentalDoc
	filter := bson.M{"customer._id": custOID, "movie._id": movOID}
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, fmt.Errorf("find rental: %w", err)
	}
	return d.toDomain(), nil
}

// Close sets return_date and the fee. The unset-check on return_date is part
// of the write predicate, so of two concurrent returns only one can modify
// the document.
func (r *RentalRepository) Close(ctx context.Context, id string, returnDate time.Time, fee float64) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	filter := bson.M{"_id": oid, "return_date": bson.M{"$exists": false}}
	update := bson.M{"$set": bson.M{"return_date": returnDate, "rental_fee": fee}}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("close rental: %w", err)
	}
	return res.ModifiedCount == 1, nil
}

// EnsureIndexes creates necessary indexes on the rentals collection.
func (r *RentalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer._id", Value: 1}, {Key: "movie._id", Value: 1}}},
		{Keys: bson.D{{Key: "rental_date", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
