package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=department.go -destination=mocks/mock_department.go -package=mocks

// DepartmentRepository defines the persistence contract for fire departments
type DepartmentRepository interface {
	Create(ctx context.Context, department *models.FireDepartment) error
	Update(ctx context.Context, department *models.FireDepartment) error
	GetByID(ctx context.Context, id int64) (*models.FireDepartment, error)
	List(ctx context.Context) ([]*models.FireDepartment, error)
}

// DepartmentService defines the business-logic contract for fire departments
type DepartmentService interface {
	CreateDepartment(ctx context.Context, department *models.FireDepartment) error
	UpdateDepartment(ctx context.Context, department *models.FireDepartment) error
	GetDepartment(ctx context.Context, id int64) (*models.FireDepartment, error)
	ListDepartments(ctx context.Context) ([]*models.FireDepartment, error)
}

type departmentService struct {
	repo   DepartmentRepository
	logger *logrus.Logger
}

func NewDepartmentService(repo DepartmentRepository, logger *logrus.Logger) DepartmentService {
	return &departmentService{
		repo:   repo,
		logger: logger,
	}
}

// CreateDepartment registers a new fire department as a dispatch target
func (s *departmentService) CreateDepartment(ctx context.Context, department *models.FireDepartment) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "department",
		"method":  "CreateDepartment",
		"name":    department.Name,
	})
	log.Info("Attempting to create a new fire department")

	if err := s.repo.Create(ctx, department); err != nil {
		log.WithError(err).Error("Failed to create department in repository")
		return fmt.Errorf("service: could not create department: %w", err)
	}

	log.WithField("department_id", department.ID).Info("Fire department created successfully")
	return nil
}

// UpdateDepartment updates an existing fire department
func (s *departmentService) UpdateDepartment(ctx context.Context, department *models.FireDepartment) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "department",
		"method":        "UpdateDepartment",
		"department_id": department.ID,
	})
	log.Info("Attempting to update fire department")

	existing, err := s.repo.GetByID(ctx, department.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent department")
		return fmt.Errorf("service: department with id %d not found for update: %w", department.ID, err)
	}

	existing.Name = department.Name
	existing.Phone = department.Phone
	existing.Address = department.Address
	existing.Latitude = department.Latitude
	existing.Longitude = department.Longitude

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update department in repository")
		return fmt.Errorf("service: could not update department: %w", err)
	}
	log.Info("Fire department updated successfully")
	return nil
}

// GetDepartment fetches a fire department by ID
func (s *departmentService) GetDepartment(ctx context.Context, id int64) (*models.FireDepartment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "department",
		"method":        "GetDepartment",
		"department_id": id,
	})

	department, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).Error("Failed to get department from repository")
		}
		return nil, fmt.Errorf("service: could not get department: %w", err)
	}
	return department, nil
}

// ListDepartments returns all known fire departments
func (s *departmentService) ListDepartments(ctx context.Context) ([]*models.FireDepartment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "department",
		"method":  "ListDepartments",
	})

	departments, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list departments from repository")
		return nil, fmt.Errorf("service: could not list departments: %w", err)
	}

	log.WithField("count", len(departments)).Debug("Departments listed")
	return departments, nil
}
