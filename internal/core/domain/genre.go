package domain

// Genre is a movie category. Names are stored lowercase so that lookups and
// sorting are case-insensitive.
type Genre struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}

// GenreRef is the denormalized genre snapshot embedded in a Movie.
type GenreRef struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}
