package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=establishment.go -destination=mocks/mock_establishment.go -package=mocks

// EstablishmentRepository defines the persistence contract for establishments
type EstablishmentRepository interface {
	Create(ctx context.Context, establishment *models.Establishment) error
	Update(ctx context.Context, establishment *models.Establishment) error
	GetByID(ctx context.Context, id int64) (*models.Establishment, error)
	List(ctx context.Context) ([]*models.Establishment, error)
}

// EstablishmentService defines the business-logic contract for establishments
type EstablishmentService interface {
	CreateEstablishment(ctx context.Context, establishment *models.Establishment) error
	UpdateEstablishment(ctx context.Context, establishment *models.Establishment) error
	GetEstablishment(ctx context.Context, id int64) (*models.Establishment, error)
	ListEstablishments(ctx context.Context) ([]*models.Establishment, error)
	VerifyInviteKey(ctx context.Context, id int64, inviteKey string) (bool, error)
	GenerateInviteKey() (string, error)
}

type establishmentService struct {
	repo   EstablishmentRepository
	logger *logrus.Logger
}

func NewEstablishmentService(repo EstablishmentRepository, logger *logrus.Logger) EstablishmentService {
	return &establishmentService{
		repo:   repo,
		logger: logger,
	}
}

// CreateEstablishment registers a new subscriber site
func (s *establishmentService) CreateEstablishment(ctx context.Context, establishment *models.Establishment) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "establishment",
		"method":  "CreateEstablishment",
		"name":    establishment.Name,
	})
	log.Info("Attempting to create a new establishment")

	if err := s.repo.Create(ctx, establishment); err != nil {
		log.WithError(err).Error("Failed to create establishment in repository")
		return fmt.Errorf("service: could not create establishment: %w", err)
	}

	log.WithField("establishment_id", establishment.ID).Info("Establishment created successfully")
	return nil
}

// UpdateEstablishment updates an existing establishment
func (s *establishmentService) UpdateEstablishment(ctx context.Context, establishment *models.Establishment) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "establishment",
		"method":           "UpdateEstablishment",
		"establishment_id": establishment.ID,
	})
	log.Info("Attempting to update establishment")

	existing, err := s.repo.GetByID(ctx, establishment.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent establishment")
		return fmt.Errorf("service: establishment with id %d not found for update: %w", establishment.ID, err)
	}

	existing.Name = establishment.Name
	existing.Phone = establishment.Phone
	existing.Address = establishment.Address
	existing.Latitude = establishment.Latitude
	existing.Longitude = establishment.Longitude
	existing.InviteKey = establishment.InviteKey
	existing.AlertTemplate = establishment.AlertTemplate

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update establishment in repository")
		return fmt.Errorf("service: could not update establishment: %w", err)
	}
	log.Info("Establishment updated successfully")
	return nil
}

// GetEstablishment fetches an establishment by ID
func (s *establishmentService) GetEstablishment(ctx context.Context, id int64) (*models.Establishment, error) {
	establishment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get establishment: %w", err)
	}
	return establishment, nil
}

// ListEstablishments returns all establishments with their device counts
func (s *establishmentService) ListEstablishments(ctx context.Context) ([]*models.Establishment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "establishment",
		"method":  "ListEstablishments",
	})

	establishments, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list establishments from repository")
		return nil, fmt.Errorf("service: could not list establishments: %w", err)
	}
	return establishments, nil
}

// VerifyInviteKey reports whether a key matches the establishment's current
// invite key, without creating anything. Comparison is exact, the same rule
// registration applies.
func (s *establishmentService) VerifyInviteKey(ctx context.Context, id int64, inviteKey string) (bool, error) {
	establishment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("service: could not verify invite key: %w", err)
	}
	return establishment.InviteKey == inviteKey, nil
}

// GenerateInviteKey produces a fresh 8-hex-char registration key
func (s *establishmentService) GenerateInviteKey() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("service: could not generate invite key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
