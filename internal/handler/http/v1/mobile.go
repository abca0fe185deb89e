package v1

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/fireduino/fireduino-api/internal/service"
	"github.com/fireduino/fireduino-api/internal/session"
	"github.com/gin-gonic/gin"
)

// sessionInt64 reads an int64 claim placed into the context by the auth
// middleware. Missing or mistyped values read as zero.
func sessionInt64(c *gin.Context, key string) int64 {
	value, ok := c.Get(key)
	if !ok {
		return 0
	}
	id, _ := value.(int64)
	return id
}

// @Summary Register a mobile user
// @Description Create a mobile account bound to an establishment via its invite key.
// @Tags Mobile
// @Accept json
// @Produce json
// @Param user body RegisterUserRequest true "User registration request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request body or invite key"
// @Failure 409 {object} map[string]string "Username or email already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/user [post]
func (h *Handler) registerUser(c *gin.Context) {
	var input RegisterUserRequest
	log := h.logger.WithField("method", "registerUser")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	user := DTOToUserModel(input)
	err := h.users.Register(c.Request.Context(), user, input.Password, input.InviteKey)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInviteKey):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invite key"})
		case errors.Is(err, service.ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already taken"})
		default:
			log.WithError(err).Error("Failed to register user in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "registered"})
}

// @Summary Mobile login
// @Description Authenticate a mobile user and issue a session token.
// @Tags Mobile
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/login [post]
func (h *Handler) mobileLogin(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "mobileLogin")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	user, err := h.users.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.WithError(err).Error("Failed to log user in")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	token, err := h.sessions.GenerateToken(user.ID, user.EstablishmentID, session.RoleUser)
	if err != nil {
		log.WithError(err).Error("Failed to generate user token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// @Summary Validate an email address
// @Description Check whether an email is free to use for registration.
// @Tags Mobile
// @Accept json
// @Produce json
// @Param email body ValidateEmailRequest true "Email to check"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/validateEmail [post]
func (h *Handler) validateEmail(c *gin.Context) {
	var input ValidateEmailRequest
	log := h.logger.WithField("method", "validateEmail")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	taken, err := h.users.IsEmailTaken(c.Request.Context(), input.Email)
	if err != nil {
		log.WithError(err).Error("Failed to check email in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": !taken})
}

// @Summary List establishments (mobile)
// @Description Get all establishments without invite keys, for registration pickers.
// @Tags Mobile
// @Produce json
// @Success 200 {array} EstablishmentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/establishments [get]
func (h *Handler) listEstablishmentsMobile(c *gin.Context) {
	log := h.logger.WithField("method", "listEstablishmentsMobile")

	establishments, err := h.establishments.ListEstablishments(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list establishments from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToEstablishmentResponses(establishments, false))
}

// @Summary Register a fireduino device
// @Description Bind a detector board to an establishment by its MAC address.
// @Tags Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param device body RegisterFireduinoRequest true "Device registration request"
// @Success 201 {object} FireduinoResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Device already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/fireduino [post]
func (h *Handler) registerFireduino(c *gin.Context) {
	var input RegisterFireduinoRequest
	log := h.logger.WithField("method", "registerFireduino")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	device := DTOToFireduinoModel(input)
	if err := h.fireduinos.RegisterFireduino(c.Request.Context(), device); err != nil {
		if errors.Is(err, service.ErrAlreadyRegistered) {
			c.JSON(http.StatusConflict, gin.H{"error": "device already registered"})
			return
		}
		log.WithError(err).Error("Failed to register device in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToFireduinoResponse(device))
}

// @Summary Get a fireduino device
// @Description Look up one of the caller's devices by MAC address.
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param mac path string true "Device MAC address"
// @Success 200 {object} FireduinoResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Device not found"
// @Router /mobile/fireduino/{mac} [get]
func (h *Handler) getFireduino(c *gin.Context) {
	mac := c.Param("mac")
	establishmentID := sessionInt64(c, "establishment_id")
	log := h.logger.WithField("method", "getFireduino").WithField("mac", mac)

	device, err := h.fireduinos.GetFireduino(c.Request.Context(), establishmentID, mac)
	if err != nil {
		log.WithError(err).Warn("Failed to get device from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToFireduinoResponse(device))
}

// @Summary List fireduino devices
// @Description Get all devices registered under the caller's establishment.
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} FireduinoResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/fireduinos [get]
func (h *Handler) listFireduinos(c *gin.Context) {
	establishmentID := sessionInt64(c, "establishment_id")
	log := h.logger.WithField("method", "listFireduinos")

	devices, err := h.fireduinos.ListFireduinos(c.Request.Context(), establishmentID)
	if err != nil {
		log.WithError(err).Error("Failed to list devices from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToFireduinoResponses(devices))
}

// @Summary List incidents
// @Description Page through dispatch records for the caller's establishment.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	establishmentID := sessionInt64(c, "establishment_id")
	log := h.logger.WithField("method", "listIncidents")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	incidents, err := h.incidents.ListIncidents(c.Request.Context(), establishmentID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get an incident
// @Description Get a single dispatch record by its ID.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /mobile/incident/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidents.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get dashboard stats
// @Description Count recent incidents for the caller's establishment.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	establishmentID := sessionInt64(c, "establishment_id")
	log := h.logger.WithField("method", "getDashboard")

	count, err := h.incidents.GetDashboardStats(c.Request.Context(), establishmentID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch dashboard stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, DashboardResponse{IncidentCount: count})
}

// @Summary Create an incident report
// @Description Attach a cause report to an incident.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body CreateReportRequest true "Report creation request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/report [post]
func (h *Handler) createReport(c *gin.Context) {
	var input CreateReportRequest
	log := h.logger.WithField("method", "createReport")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	report := &models.IncidentReport{
		IncidentID: input.IncidentID,
		UserID:     sessionInt64(c, "user_id"),
		CauseText:  input.Report,
	}
	if err := h.incidents.CreateReport(c.Request.Context(), report); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to create report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

// @Summary Edit an incident report
// @Description Edit a cause report previously written by the caller.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body EditReportRequest true "Report edit request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found or not owned by caller"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/report [put]
func (h *Handler) editReport(c *gin.Context) {
	var input EditReportRequest
	log := h.logger.WithField("method", "editReport")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	userID := sessionInt64(c, "user_id")
	if err := h.incidents.EditReport(c.Request.Context(), input.ReportID, userID, input.Report); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		log.WithError(err).Error("Failed to edit report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// @Summary List SMS history
// @Description Get the SMS notification history for the caller's establishment.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} SMSRecordResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/sms [get]
func (h *Handler) listSMSHistory(c *gin.Context) {
	establishmentID := sessionInt64(c, "establishment_id")
	log := h.logger.WithField("method", "listSMSHistory")

	records, err := h.incidents.ListSMSHistory(c.Request.Context(), establishmentID)
	if err != nil {
		log.WithError(err).Error("Failed to list SMS history from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToSMSRecordResponses(records))
}

// @Summary List fire departments (mobile)
// @Description Get fire departments, optionally filtered by a search term and sorted by distance from a location.
// @Tags Mobile
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive name or address filter"
// @Param location query string false "Origin as lat,lng; departments are sorted by distance from it"
// @Success 200 {array} DepartmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/departments [get]
func (h *Handler) listDepartmentsMobile(c *gin.Context) {
	log := h.logger.WithField("method", "listDepartmentsMobile")

	departments, err := h.departments.ListDepartments(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list departments from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		needle := strings.ToLower(search)
		filtered := departments[:0]
		for _, d := range departments {
			if strings.Contains(strings.ToLower(d.Name), needle) ||
				strings.Contains(strings.ToLower(d.Address), needle) {
				filtered = append(filtered, d)
			}
		}
		departments = filtered
	}

	if location := c.Query("location"); location != "" {
		if origin, ok := parseLocationParam(location); ok {
			sortByProximity(departments, origin)
		} else {
			log.WithField("location", location).Warn("Ignoring malformed location parameter")
		}
	}

	c.JSON(http.StatusOK, ModelsToDepartmentResponses(departments))
}

// parseLocationParam parses a "lat,lng" query value.
func parseLocationParam(raw string) (models.LatLng, bool) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return models.LatLng{}, false
	}
	origin, err := models.ParseLatLng(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	if err != nil {
		return models.LatLng{}, false
	}
	return origin, true
}

// sortByProximity orders departments by straight-line distance from the
// origin; departments with unparseable coordinates sink to the end.
func sortByProximity(departments []*models.FireDepartment, origin models.LatLng) {
	sort.SliceStable(departments, func(i, j int) bool {
		a, errA := departments[i].Coordinate()
		b, errB := departments[j].Coordinate()
		if errA != nil || errB != nil {
			return errA == nil && errB != nil
		}
		return origin.DistanceMeters(a) < origin.DistanceMeters(b)
	})
}

// @Summary Verify an invite key
// @Description Check an establishment invite key before starting registration.
// @Tags Mobile
// @Accept json
// @Produce json
// @Param key body VerifyInviteKeyRequest true "Establishment and key to check"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Establishment not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/verify [post]
func (h *Handler) verifyInviteKey(c *gin.Context) {
	var input VerifyInviteKeyRequest
	log := h.logger.WithField("method", "verifyInviteKey")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	valid, err := h.establishments.VerifyInviteKey(c.Request.Context(), input.EstablishmentID, input.InviteKey)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "establishment not found"})
			return
		}
		log.WithError(err).Error("Failed to verify invite key in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}

// @Summary Record a device access
// @Description Log that the caller opened a device in the app.
// @Tags Audit
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param access body DeviceAccessRequest true "Accessed device"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Device not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/access [post]
func (h *Handler) recordDeviceAccess(c *gin.Context) {
	var input DeviceAccessRequest
	log := h.logger.WithField("method", "recordDeviceAccess")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	userID := sessionInt64(c, "user_id")
	if err := h.audit.RecordDeviceAccess(c.Request.Context(), userID, input.FireduinoID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "fireduino not found"})
			return
		}
		log.WithError(err).Error("Failed to record device access in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "logged"})
}

// @Summary List device access logs
// @Description Get the device access trail for the caller's establishment.
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AccessLogResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/accessLogs [get]
func (h *Handler) listAccessLogs(c *gin.Context) {
	establishmentID := sessionInt64(c, "establishment_id")
	log := h.logger.WithField("method", "listAccessLogs")

	logs, err := h.audit.ListAccessLogs(c.Request.Context(), establishmentID)
	if err != nil {
		log.WithError(err).Error("Failed to list access logs from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToAccessLogResponses(logs))
}

// @Summary List login history
// @Description Get sign-ins by the caller's establishment users.
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Success 200 {array} LoginRecordResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/loginHistory [get]
func (h *Handler) listLoginHistory(c *gin.Context) {
	establishmentID := sessionInt64(c, "establishment_id")
	log := h.logger.WithField("method", "listLoginHistory")

	records, err := h.audit.ListLoginHistory(c.Request.Context(), establishmentID)
	if err != nil {
		log.WithError(err).Error("Failed to list login history from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToLoginRecordResponses(records))
}

// @Summary List report edit history
// @Description Get edit snapshots for the caller's establishment reports.
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ReportEditResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/editHistory [get]
func (h *Handler) listReportEdits(c *gin.Context) {
	establishmentID := sessionInt64(c, "establishment_id")
	log := h.logger.WithField("method", "listReportEdits")

	edits, err := h.audit.ListReportEdits(c.Request.Context(), establishmentID)
	if err != nil {
		log.WithError(err).Error("Failed to list report edits from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToReportEditResponses(edits))
}

// @Summary List incident reports
// @Description Get the cause reports attached to the caller's establishment incidents.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /mobile/reports [get]
func (h *Handler) listReports(c *gin.Context) {
	establishmentID := sessionInt64(c, "establishment_id")
	log := h.logger.WithField("method", "listReports")

	reports, err := h.incidents.ListReports(c.Request.Context(), establishmentID)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}
