package v1

import (
	"time"
)

// LoginRequest is shared by the admin and mobile login endpoints
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an issued session token
type TokenResponse struct {
	Token string `json:"token"`
}

// ValidateTokenRequest checks an existing session token
type ValidateTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// DepartmentRequest is the create/update body for fire departments
type DepartmentRequest struct {
	Name      string `json:"name" validate:"required,notblank,max=255"`
	Phone     string `json:"phone" validate:"required,telphone"`
	Address   string `json:"address" validate:"required,notblank"`
	Latitude  string `json:"latitude" validate:"required,latitude"`
	Longitude string `json:"longitude" validate:"required,longitude"`
}

// DepartmentResponse describes one fire department
type DepartmentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Latitude  string    `json:"latitude"`
	Longitude string    `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EstablishmentRequest is the create/update body for establishments
type EstablishmentRequest struct {
	Name          string `json:"name" validate:"required,notblank,max=255"`
	Phone         string `json:"phone" validate:"required,telphone"`
	Address       string `json:"address" validate:"required,notblank"`
	Latitude      string `json:"latitude" validate:"required,latitude"`
	Longitude     string `json:"longitude" validate:"required,longitude"`
	InviteKey     string `json:"invite_key" validate:"required,notblank"`
	AlertTemplate string `json:"alert_template,omitempty"`
}

// EstablishmentResponse describes one establishment
type EstablishmentResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Latitude    string    `json:"latitude"`
	Longitude   string    `json:"longitude"`
	InviteKey   string    `json:"invite_key,omitempty"`
	DeviceCount int       `json:"device_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RegisterFireduinoRequest registers a device under an establishment
type RegisterFireduinoRequest struct {
	EstablishmentID int64  `json:"estb_id" validate:"required,gt=0"`
	MAC             string `json:"mac" validate:"required,notblank"`
	Name            string `json:"name" validate:"required,notblank,max=255"`
}

// FireduinoResponse describes one registered device
type FireduinoResponse struct {
	ID              int64     `json:"id"`
	EstablishmentID int64     `json:"establishment_id"`
	MAC             string    `json:"mac"`
	Name            string    `json:"name"`
	CreatedAt       time.Time `json:"created_at"`
}

// RegisterUserRequest creates a mobile account gated by an invite key
type RegisterUserRequest struct {
	FirstName       string `json:"first_name" validate:"required,notblank"`
	LastName        string `json:"last_name" validate:"required,notblank"`
	Username        string `json:"username" validate:"required,notblank,min=3,max=64"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	EstablishmentID int64  `json:"establishment_id" validate:"required,gt=0"`
	InviteKey       string `json:"invite_key" validate:"required,notblank"`
}

// ValidateEmailRequest checks whether an email is free to register
type ValidateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyInviteKeyRequest checks an invite key before registration
type VerifyInviteKeyRequest struct {
	EstablishmentID int64  `json:"establishment_id" validate:"required,gt=0"`
	InviteKey       string `json:"invite_key" validate:"required,notblank"`
}

// DeviceAccessRequest reports that the caller opened a device
type DeviceAccessRequest struct {
	FireduinoID int64 `json:"fireduino_id" validate:"required,gt=0"`
}

// CreateReportRequest attaches a cause report to an incident
type CreateReportRequest struct {
	IncidentID int64  `json:"incident_id" validate:"required,gt=0"`
	Report     string `json:"report" validate:"required,notblank"`
}

// EditReportRequest edits an existing cause report in place
type EditReportRequest struct {
	ReportID int64  `json:"report_id" validate:"required,gt=0"`
	Report   string `json:"report" validate:"required,notblank"`
}

// IncidentResponse describes one dispatch record
type IncidentResponse struct {
	ID           int64     `json:"id"`
	FireduinoID  int64     `json:"fireduino_id"`
	DepartmentID int64     `json:"department_id"`
	SMSRecordID  *int64    `json:"sms_record_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SMSRecordResponse describes one SMS history entry
type SMSRecordResponse struct {
	ID           int64     `json:"id"`
	DepartmentID int64     `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReportResponse describes one cause report
type ReportResponse struct {
	ID         int64     `json:"id"`
	IncidentID int64     `json:"incident_id"`
	UserID     int64     `json:"user_id"`
	CauseText  string    `json:"cause_text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AccessLogResponse describes one device access entry
type AccessLogResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	FireduinoID int64     `json:"fireduino_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginRecordResponse describes one sign-in entry
type LoginRecordResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportEditResponse describes one report edit snapshot
type ReportEditResponse struct {
	ID           int64     `json:"id"`
	ReportID     int64     `json:"report_id"`
	UserID       int64     `json:"user_id"`
	PreviousText string    `json:"previous_text"`
	CreatedAt    time.Time `json:"created_at"`
}

// DashboardResponse carries establishment dashboard stats
type DashboardResponse struct {
	IncidentCount int `json:"incident_count"`
}

// ConfigResponse exposes the map keys mobile clients need
type ConfigResponse struct {
	MapsAPI             string `json:"mapsApi"`
	ReverseGeocodingAPI string `json:"reverseGeocodingApi"`
}

// InviteKeyResponse carries a freshly generated invite key
type InviteKeyResponse struct {
	InviteKey string `json:"invite_key"`
}
