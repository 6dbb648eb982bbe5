package domain

// Movie is a title available for rent. The genre is embedded as a snapshot
// taken when the movie was created or last updated.
//
// Invariant: NumberInStock is never negative. The rental repositories only
// decrement through a conditional write that requires stock > 0.
type Movie struct {
	ID              string   `json:"id" bson:"_id,omitempty"`
	Title           string   `json:"title" bson:"title"`
	Genre           GenreRef `json:"genre" bson:"genre"`
	NumberInStock   int      `json:"numberInStock" bson:"number_in_stock"`
	DailyRentalRate float64  `json:"dailyRentalRate" bson:"daily_rental_rate"`
}
