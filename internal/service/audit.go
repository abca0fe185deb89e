package service

import (
	"context"
	"fmt"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=audit.go -destination=mocks/mock_audit.go -package=mocks

// AuditRepository defines the persistence contract for the history tables:
// device access logs, login history and report edit snapshots.
type AuditRepository interface {
	CreateAccessLog(ctx context.Context, log *models.AccessLog) error
	ListAccessLogs(ctx context.Context, establishmentID int64) ([]*models.AccessLog, error)
	CreateLoginRecord(ctx context.Context, record *models.LoginRecord) error
	ListLoginHistory(ctx context.Context, establishmentID int64) ([]*models.LoginRecord, error)
	CreateReportEdit(ctx context.Context, edit *models.ReportEdit) error
	ListReportEdits(ctx context.Context, establishmentID int64) ([]*models.ReportEdit, error)
}

// AuditService exposes the history trail to mobile clients. Writing to the
// trail mostly happens inside the services owning the audited operations;
// device access is the one event the client reports explicitly.
type AuditService interface {
	RecordDeviceAccess(ctx context.Context, userID, fireduinoID int64) error
	ListAccessLogs(ctx context.Context, establishmentID int64) ([]*models.AccessLog, error)
	ListLoginHistory(ctx context.Context, establishmentID int64) ([]*models.LoginRecord, error)
	ListReportEdits(ctx context.Context, establishmentID int64) ([]*models.ReportEdit, error)
}

type auditService struct {
	repo   AuditRepository
	logger *logrus.Logger
}

func NewAuditService(repo AuditRepository, logger *logrus.Logger) AuditService {
	return &auditService{
		repo:   repo,
		logger: logger,
	}
}

// RecordDeviceAccess logs that a user opened a device. An unknown device
// surfaces as ErrNotFound.
func (s *auditService) RecordDeviceAccess(ctx context.Context, userID, fireduinoID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "audit",
		"method":       "RecordDeviceAccess",
		"user_id":      userID,
		"fireduino_id": fireduinoID,
	})

	entry := &models.AccessLog{UserID: userID, FireduinoID: fireduinoID}
	if err := s.repo.CreateAccessLog(ctx, entry); err != nil {
		log.WithError(err).Warn("Failed to record device access")
		return fmt.Errorf("service: could not record device access: %w", err)
	}

	log.Debug("Device access recorded")
	return nil
}

// ListAccessLogs returns an establishment's device access trail
func (s *auditService) ListAccessLogs(ctx context.Context, establishmentID int64) ([]*models.AccessLog, error) {
	logs, err := s.repo.ListAccessLogs(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list access logs: %w", err)
	}
	return logs, nil
}

// ListLoginHistory returns sign-ins by the establishment's users
func (s *auditService) ListLoginHistory(ctx context.Context, establishmentID int64) ([]*models.LoginRecord, error) {
	records, err := s.repo.ListLoginHistory(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list login history: %w", err)
	}
	return records, nil
}

// ListReportEdits returns edit snapshots for the establishment's reports
func (s *auditService) ListReportEdits(ctx context.Context, establishmentID int64) ([]*models.ReportEdit, error) {
	edits, err := s.repo.ListReportEdits(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list report edits: %w", err)
	}
	return edits, nil
}
