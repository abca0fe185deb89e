package models

import (
	"time"
)

// Incident is one fire-detection event and its resulting dispatch record.
// SMSRecordID is nil when persisting the SMS record failed; the selected
// department is never re-evaluated after creation.
type Incident struct {
	ID           int64     `json:"id"`
	FireduinoID  int64     `json:"fireduino_id"`
	DepartmentID int64     `json:"department_id"`
	SMSRecordID  *int64    `json:"sms_record_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SMSRecord is an append-only log entry tying a department to the time an
// alert was sent to it.
type SMSRecord struct {
	ID           int64     `json:"id"`
	DepartmentID int64     `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// IncidentReport is the free-text cause attached to an incident by a user.
// Created once, editable in place.
type IncidentReport struct {
	ID         int64     `json:"id"`
	IncidentID int64     `json:"incident_id"`
	UserID     int64     `json:"user_id"`
	CauseText  string    `json:"cause_text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
