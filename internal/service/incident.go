package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fireduino/fireduino-api/internal/config"
	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentRepository defines the persistence contract for incidents, their
// SMS records and attached reports
type IncidentRepository interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	CreateSMSRecord(ctx context.Context, record *models.SMSRecord) error
	GetByID(ctx context.Context, id int64) (*models.Incident, error)
	ListByEstablishment(ctx context.Context, establishmentID int64, page, pageSize int) ([]*models.Incident, error)
	CountSince(ctx context.Context, establishmentID int64, since time.Time) (int, error)
	CreateReport(ctx context.Context, report *models.IncidentReport) error
	UpdateReport(ctx context.Context, report *models.IncidentReport) error
	GetReportByID(ctx context.Context, id int64) (*models.IncidentReport, error)
	ListReportsByEstablishment(ctx context.Context, establishmentID int64) ([]*models.IncidentReport, error)
	ListSMSHistory(ctx context.Context, establishmentID int64) ([]*models.SMSRecord, error)
}

// IncidentService defines the read/report side of incidents. Incident
// creation happens only through DispatchService.
type IncidentService interface {
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	ListIncidents(ctx context.Context, establishmentID int64, page, pageSize int) ([]*models.Incident, error)
	GetDashboardStats(ctx context.Context, establishmentID int64) (int, error)
	CreateReport(ctx context.Context, report *models.IncidentReport) error
	EditReport(ctx context.Context, reportID, authorID int64, causeText string) error
	ListReports(ctx context.Context, establishmentID int64) ([]*models.IncidentReport, error)
	ListSMSHistory(ctx context.Context, establishmentID int64) ([]*models.SMSRecord, error)
}

type incidentService struct {
	repo   IncidentRepository
	audit  AuditRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewIncidentService(repo IncidentRepository, audit AuditRepository, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		repo:   repo,
		audit:  audit,
		logger: logger,
		cfg:    cfg,
	}
}

// GetIncident fetches an incident by ID
func (s *incidentService) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents returns an establishment's incidents with pagination
func (s *incidentService) ListIncidents(ctx context.Context, establishmentID int64, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":          "incident",
		"method":           "ListIncidents",
		"establishment_id": establishmentID,
		"page":             page,
		"page_size":        pageSize,
	})

	incidents, err := s.repo.ListByEstablishment(ctx, establishmentID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed")
	return incidents, nil
}

// GetDashboardStats returns the incident count within the configured recent
// window for an establishment's dashboard
func (s *incidentService) GetDashboardStats(ctx context.Context, establishmentID int64) (int, error) {
	since := time.Now().Add(-time.Duration(s.cfg.StatsTimeWindowMinutes) * time.Minute)
	count, err := s.repo.CountSince(ctx, establishmentID, since)
	if err != nil {
		return 0, fmt.Errorf("service: could not get incident stats: %w", err)
	}
	return count, nil
}

// CreateReport attaches a free-text cause report to an incident. One report
// per incident; the incident must exist.
func (s *incidentService) CreateReport(ctx context.Context, report *models.IncidentReport) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "CreateReport",
		"incident_id": report.IncidentID,
		"user_id":     report.UserID,
	})
	log.Info("Attempting to create an incident report")

	if _, err := s.repo.GetByID(ctx, report.IncidentID); err != nil {
		log.WithError(err).Warn("Report for non-existent incident")
		return fmt.Errorf("service: incident with id %d not found for report: %w", report.IncidentID, err)
	}

	if err := s.repo.CreateReport(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return fmt.Errorf("service: could not create report: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Incident report created successfully")
	return nil
}

// EditReport updates the cause text of an existing report in place. Only the
// author may edit.
func (s *incidentService) EditReport(ctx context.Context, reportID, authorID int64, causeText string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "EditReport",
		"report_id": reportID,
	})

	report, err := s.repo.GetReportByID(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Attempted to edit a non-existent report")
		return fmt.Errorf("service: report with id %d not found for edit: %w", reportID, err)
	}

	// Hide reports of other authors; to the caller they do not exist.
	if report.UserID != authorID {
		log.Warn("Report edit by non-author")
		return fmt.Errorf("service: edit report %d: %w", reportID, ErrNotFound)
	}

	previous := report.CauseText
	report.CauseText = causeText
	if err := s.repo.UpdateReport(ctx, report); err != nil {
		log.WithError(err).Error("Failed to update report in repository")
		return fmt.Errorf("service: could not edit report: %w", err)
	}

	// Snapshot the overwritten text; best-effort, the edit itself stands.
	edit := &models.ReportEdit{ReportID: report.ID, UserID: authorID, PreviousText: previous}
	if err := s.audit.CreateReportEdit(ctx, edit); err != nil {
		log.WithError(err).Warn("Failed to record report edit history")
	}

	log.Info("Incident report edited successfully")
	return nil
}

// ListReports returns all cause reports attached to an establishment's
// incidents
func (s *incidentService) ListReports(ctx context.Context, establishmentID int64) ([]*models.IncidentReport, error) {
	reports, err := s.repo.ListReportsByEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}
	return reports, nil
}

// ListSMSHistory returns the SMS records tied to an establishment's incidents
func (s *incidentService) ListSMSHistory(ctx context.Context, establishmentID int64) ([]*models.SMSRecord, error) {
	records, err := s.repo.ListSMSHistory(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list sms history: %w", err)
	}
	return records, nil
}
