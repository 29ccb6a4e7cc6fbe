package models

import "time"

// User is a registered chat participant, keyed by normalized email.
// Email and names are stored trimmed and lowercased; rows are never
// mutated or deleted after registration completes.
type User struct {
	Email     string    `gorm:"size:255;primaryKey" json:"email"`
	FirstName string    `gorm:"size:32;not null" json:"first_name"`
	LastName  string    `gorm:"size:32;not null" json:"last_name"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
