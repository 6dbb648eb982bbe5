package domain

// User models an authenticated actor in the system. Only authentication and
// authorization read it; the rental lifecycle never touches users.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
}
