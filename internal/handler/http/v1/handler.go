package v1

import (
	"net/http"

	"github.com/fireduino/fireduino-api/internal/config"
	"github.com/fireduino/fireduino-api/internal/service"
	"github.com/fireduino/fireduino-api/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	departments    service.DepartmentService
	establishments service.EstablishmentService
	fireduinos     service.FireduinoService
	users          service.UserService
	incidents      service.IncidentService
	audit          service.AuditService
	sessions       *session.Manager
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(
	departments service.DepartmentService,
	establishments service.EstablishmentService,
	fireduinos service.FireduinoService,
	users service.UserService,
	incidents service.IncidentService,
	audit service.AuditService,
	sessions *session.Manager,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		departments:    departments,
		establishments: establishments,
		fireduinos:     fireduinos,
		users:          users,
		incidents:      incidents,
		audit:          audit,
		sessions:       sessions,
		logger:         logger,
		validate:       newValidator(),
		cfg:            cfg,
	}
}

// bindAndValidate decodes the JSON body and runs the struct validator,
// writing the 400 response itself on failure.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Admin login
// @Description Authenticate the administrator and issue a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /admin/login [post]
func (h *Handler) adminLogin(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "adminLogin")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if input.Username != h.cfg.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(input.Password)) != nil {
		log.Warn("Admin login with invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.sessions.GenerateToken(0, 0, session.RoleAdmin)
	if err != nil {
		log.WithError(err).Error("Failed to generate admin token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// @Summary Validate a session token
// @Description Check whether a previously issued token is still valid.
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body ValidateTokenRequest true "Token to validate"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /validate [post]
func (h *Handler) validateToken(c *gin.Context) {
	var input ValidateTokenRequest
	log := h.logger.WithField("method", "validateToken")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	_, err := h.sessions.ValidateToken(input.Token)
	c.JSON(http.StatusOK, gin.H{"valid": err == nil})
}

// @Summary Get client configuration
// @Description Expose the map API keys mobile and admin clients need.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ConfigResponse
// @Router /admin/config [get]
func (h *Handler) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		MapsAPI:             h.cfg.MapsAPIKey,
		ReverseGeocodingAPI: h.cfg.ReverseGeocodingAPI,
	})
}

// @Summary Generate an invite key
// @Description Generate a fresh invite key for establishment registration.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} InviteKeyResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/invitekey [get]
func (h *Handler) generateInviteKey(c *gin.Context) {
	key, err := h.establishments.GenerateInviteKey()
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate invite key")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, InviteKeyResponse{InviteKey: key})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
