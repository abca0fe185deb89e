package models

import (
	"time"
)

// Establishment is a subscriber site with fireduinos installed. The invite
// key gates mobile user registration under the establishment.
type Establishment struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Latitude      string    `json:"latitude"`
	Longitude     string    `json:"longitude"`
	InviteKey     string    `json:"invite_key"`
	AlertTemplate string    `json:"alert_template,omitempty"`
	DeviceCount   int       `json:"device_count,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Coordinate parses the stored decimal-string location.
func (e *Establishment) Coordinate() (LatLng, error) {
	return ParseLatLng(e.Latitude, e.Longitude)
}
