package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fireduino/fireduino-api/internal/alert"
	"github.com/fireduino/fireduino-api/internal/config"
	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/fireduino/fireduino-api/internal/sms"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=dispatch.go -destination=mocks/mock_dispatch.go -package=mocks

// NearestResolver selects the minimum-travel-distance department for an
// origin. Implemented by routing.Resolver.
type NearestResolver interface {
	Nearest(ctx context.Context, origin models.LatLng, candidates []*models.FireDepartment) (*models.FireDepartment, error)
}

// DispatchService turns a device fire event into exactly one incident record
// and one best-effort SMS alert.
type DispatchService interface {
	DispatchFireEvent(ctx context.Context, establishmentID int64, mac string) (int64, error)
}

type dispatchService struct {
	fireduinos     FireduinoRepository
	establishments EstablishmentRepository
	departments    DepartmentRepository
	incidents      IncidentRepository
	resolver       NearestResolver
	publisher      alert.Publisher
	logger         *logrus.Logger
	cfg            *config.Config
}

func NewDispatchService(
	fireduinos FireduinoRepository,
	establishments EstablishmentRepository,
	departments DepartmentRepository,
	incidents IncidentRepository,
	resolver NearestResolver,
	publisher alert.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) DispatchService {
	return &dispatchService{
		fireduinos:     fireduinos,
		establishments: establishments,
		departments:    departments,
		incidents:      incidents,
		resolver:       resolver,
		publisher:      publisher,
		logger:         logger,
		cfg:            cfg,
	}
}

// DispatchFireEvent runs the dispatch pipeline: resolve device, resolve
// establishment, pick the nearest department, render and queue the SMS,
// persist the incident. Failures before the SMS step abort with no partial
// state; a notification failure is logged and does not abort incident
// creation.
func (s *dispatchService) DispatchFireEvent(ctx context.Context, establishmentID int64, mac string) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "dispatch",
		"method":           "DispatchFireEvent",
		"establishment_id": establishmentID,
		"mac":              mac,
	})
	log.Info("Dispatching fire event")

	device, err := s.fireduinos.GetByMAC(ctx, establishmentID, mac)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Fire event from unregistered device")
			return 0, fmt.Errorf("dispatch: device %s: %w", mac, ErrDeviceNotFound)
		}
		log.WithError(err).Error("Failed to resolve device")
		return 0, fmt.Errorf("dispatch: resolve device: %w: %v", ErrSystem, err)
	}

	// The device row references this establishment; a miss here is a data
	// inconsistency, not a caller mistake.
	estb, err := s.establishments.GetByID(ctx, establishmentID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve establishment referenced by device")
		return 0, fmt.Errorf("dispatch: resolve establishment %d: %w: %v", establishmentID, ErrSystem, err)
	}

	origin, err := estb.Coordinate()
	if err != nil {
		log.WithError(err).Error("Establishment has unparseable coordinates")
		return 0, fmt.Errorf("dispatch: establishment location: %w: %v", ErrSystem, err)
	}

	candidates, err := s.departments.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list fire departments")
		return 0, fmt.Errorf("dispatch: list departments: %w: %v", ErrSystem, err)
	}

	dept, err := s.resolver.Nearest(ctx, origin, candidates)
	if err != nil {
		log.WithError(err).Error("Failed to resolve nearest department")
		return 0, fmt.Errorf("dispatch: nearest department: %w", err)
	}

	template := estb.AlertTemplate
	if template == "" {
		template = s.cfg.AlertTemplate
	}
	body := sms.Render(template, map[string]string{
		"establishment": estb.Name,
		"location":      origin.String(),
		"address":       estb.Address,
	})
	to := sms.NormalizePhone(dept.Phone, s.cfg.CountryCode)

	// The SMS record and the queued delivery are best-effort with respect to
	// the incident: the incident row must exist for audit even if the alert
	// could not be recorded or queued.
	var smsRecordID *int64
	record := &models.SMSRecord{DepartmentID: dept.ID, CreatedAt: time.Now()}
	if err := s.incidents.CreateSMSRecord(ctx, record); err != nil {
		log.WithError(err).Warn("Failed to persist SMS record; incident will carry no SMS reference")
	} else {
		smsRecordID = &record.ID
	}

	job := alert.Job{
		ID:          uuid.New(),
		To:          to,
		Body:        body,
		SMSRecordID: smsRecordID,
		QueuedAt:    time.Now(),
	}
	if err := s.publisher.Publish(ctx, job); err != nil {
		log.WithError(fmt.Errorf("%w: %v", sms.ErrSendFailed, err)).Warn("Failed to queue alert SMS")
	}

	incident := &models.Incident{
		FireduinoID:  device.ID,
		DepartmentID: dept.ID,
		SMSRecordID:  smsRecordID,
	}
	if err := s.incidents.CreateIncident(ctx, incident); err != nil {
		// The SMS may already be out; nothing to roll back, report upward.
		log.WithError(err).Error("Failed to persist incident")
		return 0, fmt.Errorf("dispatch: create incident: %w: %v", ErrPersistenceFailed, err)
	}

	log.WithFields(logrus.Fields{
		"incident_id":   incident.ID,
		"department_id": dept.ID,
	}).Info("Fire event dispatched")

	return incident.ID, nil
}
