package domain

import "time"

// MovieSnapshot is the movie data copied into a Rental at creation time.
// It is an owned value, not a reference: later edits to the Movie (price
// changes, renames) must not rewrite rental history.
type MovieSnapshot struct {
	ID              string  `json:"id" bson:"_id"`
	Title           string  `json:"title" bson:"title"`
	DailyRentalRate float64 `json:"dailyRentalRate" bson:"daily_rental_rate"`
}

// CustomerSnapshot is the customer data copied into a Rental at creation time.
type CustomerSnapshot struct {
	ID     string `json:"id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	Phone  string `json:"phone" bson:"phone"`
	IsGold bool   `json:"isGold" bson:"is_gold"`
}

// Rental records one checkout of a movie by a customer.
//
// Lifecycle: open (ReturnDate unset) → closed (ReturnDate set). Closing is
// terminal and happens exactly once; a second return attempt is an error,
// not a no-op.
type Rental struct {
	ID         string           `json:"id" bson:"_id,omitempty"`
	Movie      MovieSnapshot    `json:"movie" bson:"movie"`
	Customer   CustomerSnapshot `json:"customer" bson:"customer"`
	RentalDate time.Time        `json:"rental_date" bson:"rental_date"`
	ReturnDate *time.Time       `json:"return_date,omitempty" bson:"return_date,omitempty"`
	RentalFee  *float64         `json:"rentalFee,omitempty" bson:"rental_fee,omitempty"`
}

// Returned reports whether the rental has already been closed.
func (r *Rental) Returned() bool {
	return r.ReturnDate != nil
}

// RentalFee computes the fee for a rental returned at returnDate: whole days
// elapsed (floored) times the daily rate from the rental's movie snapshot.
// Negative elapsed time (clock skew, bad data) is clamped to zero days so the
// fee can never be negative.
func RentalFee(rentalDate, returnDate time.Time, dailyRate float64) float64 {
	days := int(returnDate.Sub(rentalDate).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return float64(days) * dailyRate
}
