package models

import (
	"time"
)

// Fireduino is a fire-detection device, identified within its establishment
// by its MAC address.
type Fireduino struct {
	ID              int64     `json:"id"`
	EstablishmentID int64     `json:"establishment_id"`
	MAC             string    `json:"mac"`
	Name            string    `json:"name"`
	CreatedAt       time.Time `json:"created_at"`
}
