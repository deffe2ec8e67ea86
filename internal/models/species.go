package models

// Species is a pet species, unique by name (case-insensitive).
type Species struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
