package models

import (
	"time"
)

// FireDepartment is a dispatch target; it is not owned by any establishment.
type FireDepartment struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Latitude  string    `json:"latitude"`
	Longitude string    `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Coordinate parses the stored decimal-string location.
func (d *FireDepartment) Coordinate() (LatLng, error) {
	return ParseLatLng(d.Latitude, d.Longitude)
}
