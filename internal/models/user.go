package models

// User is an application account that can authenticate and call the API.
type User struct {
	ID           int64   `json:"id" db:"id"`
	FirstName    string  `json:"first_name" db:"first_name"`
	LastName     *string `json:"last_name" db:"last_name"`
	Email        string  `json:"email" db:"email"`
	PasswordHash string  `json:"-" db:"password_hash"` // Never serialize in JSON
}
