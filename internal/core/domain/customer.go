package domain

// Customer is a member of the rental store.
type Customer struct {
	ID     string `json:"id" bson:"_id,omitempty"`
	Name   string `json:"name" bson:"name"`
	Phone  string `json:"phone" bson:"phone"`
	IsGold bool   `json:"isGold" bson:"is_gold"`
}
