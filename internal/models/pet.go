package models

// Pet belongs to an Owner and has a Species. The JSON representation
// flattens the species to its name and omits medical records.
type Pet struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	OwnerID   int64     `json:"owner_id" db:"owner_id"`
	Age       int       `json:"age" db:"age"`
	SpeciesID int64     `json:"-" db:"species_id"`
	Species   string    `json:"species"`
	Records   []*Record `json:"-"`
}
