package models

import (
	"time"
)

// AccessLog records one user opening a device from the mobile app.
type AccessLog struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	FireduinoID int64     `json:"fireduino_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginRecord is one successful mobile sign-in.
type LoginRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportEdit snapshots the cause text a report held before an edit
// overwrote it.
type ReportEdit struct {
	ID           int64     `json:"id"`
	ReportID     int64     `json:"report_id"`
	UserID       int64     `json:"user_id"`
	PreviousText string    `json:"previous_text"`
	CreatedAt    time.Time `json:"created_at"`
}
