package models

// Owner is a pet owner. Pets are nested in its JSON representation.
type Owner struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Phone     string `json:"phone" db:"phone"`
	Mobile    string `json:"mobile" db:"mobile"`
	Email     string `json:"email" db:"email"`
	Pets      []*Pet `json:"pets"`
}
