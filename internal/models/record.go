package models

import "time"

// Record is a medical procedure performed on a pet. Records are persisted
// but not exposed through the API yet.
type Record struct {
	ID         int64       `json:"id" db:"id"`
	Procedure  string      `json:"procedure" db:"procedure"`
	Date       time.Time   `json:"date" db:"date"`
	PetID      int64       `json:"pet_id" db:"pet_id"`
	Categories []*Category `json:"categories,omitempty"`
}

// Category labels medical records, many-to-many through record_category.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
