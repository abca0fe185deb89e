package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user.go -destination=mocks/mock_user.go -package=mocks

// UserRepository defines the persistence contract for mobile users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserService defines the business-logic contract for mobile accounts
type UserService interface {
	Register(ctx context.Context, user *models.User, password, inviteKey string) error
	Login(ctx context.Context, username, password string) (*models.User, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
}

type userService struct {
	repo           UserRepository
	establishments EstablishmentRepository
	audit          AuditRepository
	logger         *logrus.Logger
}

func NewUserService(repo UserRepository, establishments EstablishmentRepository, audit AuditRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:           repo,
		establishments: establishments,
		audit:          audit,
		logger:         logger,
	}
}

// Register creates a mobile account under an establishment. The invite key
// must match the establishment's key; username and email are globally unique.
func (s *userService) Register(ctx context.Context, user *models.User, password, inviteKey string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "user",
		"method":           "Register",
		"username":         user.Username,
		"establishment_id": user.EstablishmentID,
	})
	log.Info("Attempting to register a user")

	estb, err := s.establishments.GetByID(ctx, user.EstablishmentID)
	if err != nil {
		log.WithError(err).Warn("Registration against unknown establishment")
		return fmt.Errorf("service: establishment %d: %w", user.EstablishmentID, err)
	}

	if estb.InviteKey != inviteKey {
		log.Warn("Registration with invalid invite key")
		return fmt.Errorf("service: register user: %w", ErrInvalidInviteKey)
	}

	if _, err := s.repo.GetByUsername(ctx, user.Username); err == nil {
		return fmt.Errorf("service: username %s: %w", user.Username, ErrAlreadyRegistered)
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("service: could not check username: %w", err)
	}

	if _, err := s.repo.GetByEmail(ctx, user.Email); err == nil {
		return fmt.Errorf("service: email %s: %w", user.Email, ErrAlreadyRegistered)
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("service: could not check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return fmt.Errorf("service: could not register user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return nil
}

// Login checks the credentials and returns the account on success. The
// password check is one-way; lookup and comparison failures collapse into
// ErrInvalidCredentials so callers cannot distinguish them.
func (s *userService) Login(ctx context.Context, username, password string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "user",
		"method":   "Login",
		"username": username,
	})

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("service: login: %w", ErrInvalidCredentials)
		}
		log.WithError(err).Error("Failed to look up user")
		return nil, fmt.Errorf("service: could not look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("service: login: %w", ErrInvalidCredentials)
	}

	// The login trail is best-effort; a failed insert never blocks the
	// sign-in itself.
	if err := s.audit.CreateLoginRecord(ctx, &models.LoginRecord{UserID: user.ID}); err != nil {
		log.WithError(err).Warn("Failed to record login history")
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return user, nil
}

// IsEmailTaken reports whether an email is already registered
func (s *userService) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("service: could not check email: %w", err)
}
