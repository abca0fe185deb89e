package models

import (
	"time"
)

// User is a mobile account registered under an establishment.
type User struct {
	ID              int64     `json:"id"`
	EstablishmentID int64     `json:"establishment_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}
