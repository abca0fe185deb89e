package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=fireduino.go -destination=mocks/mock_fireduino.go -package=mocks

// FireduinoRepository defines the persistence contract for devices
type FireduinoRepository interface {
	Create(ctx context.Context, device *models.Fireduino) error
	GetByMAC(ctx context.Context, establishmentID int64, mac string) (*models.Fireduino, error)
	ListByEstablishment(ctx context.Context, establishmentID int64) ([]*models.Fireduino, error)
}

// FireduinoService defines the business-logic contract for devices
type FireduinoService interface {
	RegisterFireduino(ctx context.Context, device *models.Fireduino) error
	GetFireduino(ctx context.Context, establishmentID int64, mac string) (*models.Fireduino, error)
	ListFireduinos(ctx context.Context, establishmentID int64) ([]*models.Fireduino, error)
}

type fireduinoService struct {
	repo   FireduinoRepository
	logger *logrus.Logger
}

func NewFireduinoService(repo FireduinoRepository, logger *logrus.Logger) FireduinoService {
	return &fireduinoService{
		repo:   repo,
		logger: logger,
	}
}

// RegisterFireduino creates a device under its establishment. A MAC or name
// already registered there is rejected with ErrAlreadyRegistered.
func (s *fireduinoService) RegisterFireduino(ctx context.Context, device *models.Fireduino) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "fireduino",
		"method":           "RegisterFireduino",
		"establishment_id": device.EstablishmentID,
		"mac":              device.MAC,
	})
	log.Info("Attempting to register a fireduino")

	_, err := s.repo.GetByMAC(ctx, device.EstablishmentID, device.MAC)
	if err == nil {
		log.Warn("Fireduino is already registered")
		return fmt.Errorf("service: fireduino %s: %w", device.MAC, ErrAlreadyRegistered)
	}
	if !errors.Is(err, ErrNotFound) {
		log.WithError(err).Error("Failed to check fireduino registration")
		return fmt.Errorf("service: could not check fireduino registration: %w", err)
	}

	if err := s.repo.Create(ctx, device); err != nil {
		// The repository reports unique-constraint hits, which here means
		// the device name is taken within the establishment (the MAC was
		// pre-checked above).
		if errors.Is(err, ErrAlreadyRegistered) {
			log.Warn("Fireduino name is already in use")
			return fmt.Errorf("service: fireduino %q: %w", device.Name, err)
		}
		log.WithError(err).Error("Failed to create fireduino in repository")
		return fmt.Errorf("service: could not register fireduino: %w", err)
	}

	log.WithField("fireduino_id", device.ID).Info("Fireduino registered successfully")
	return nil
}

// GetFireduino fetches a device by its (establishment, mac) pair
func (s *fireduinoService) GetFireduino(ctx context.Context, establishmentID int64, mac string) (*models.Fireduino, error) {
	device, err := s.repo.GetByMAC(ctx, establishmentID, mac)
	if err != nil {
		return nil, fmt.Errorf("service: could not get fireduino: %w", err)
	}
	return device, nil
}

// ListFireduinos returns all devices of an establishment
func (s *fireduinoService) ListFireduinos(ctx context.Context, establishmentID int64) ([]*models.Fireduino, error) {
	devices, err := s.repo.ListByEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list fireduinos: %w", err)
	}
	return devices, nil
}
