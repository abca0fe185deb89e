package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fireduino/fireduino-api/internal/service"
	"github.com/gin-gonic/gin"
)

// @Summary Create a fire department
// @Description Register a new fire department as a dispatch target.
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param department body DepartmentRequest true "Department creation request"
// @Success 201 {object} DepartmentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/department [post]
func (h *Handler) createDepartment(c *gin.Context) {
	var input DepartmentRequest
	log := h.logger.WithField("method", "createDepartment")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToDepartmentModel(input)
	if err := h.departments.CreateDepartment(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create department in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToDepartmentResponse(model))
}

// @Summary Update a fire department
// @Description Update an existing fire department by ID.
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param department body DepartmentRequest true "Department update request"
// @Success 200 {object} DepartmentResponse
// @Failure 400 {object} map[string]string "Invalid department ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Department not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/department/{id} [put]
func (h *Handler) updateDepartment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid department ID"})
		return
	}
	log := h.logger.WithField("method", "updateDepartment").WithField("id", id)

	var input DepartmentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToDepartmentModel(input)
	model.ID = id

	if err := h.departments.UpdateDepartment(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
			return
		}
		log.WithError(err).Error("Failed to update department in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDepartmentResponse(model))
}

// @Summary Get a fire department
// @Description Get a single fire department by its ID.
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} DepartmentResponse
// @Failure 400 {object} map[string]string "Invalid department ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Department not found"
// @Router /admin/department/{id} [get]
func (h *Handler) getDepartment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid department ID"})
		return
	}
	log := h.logger.WithField("method", "getDepartment").WithField("id", id)

	department, err := h.departments.GetDepartment(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get department from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToDepartmentResponse(department))
}

// @Summary List fire departments
// @Description Get all registered fire departments.
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} DepartmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/departments [get]
func (h *Handler) listDepartments(c *gin.Context) {
	log := h.logger.WithField("method", "listDepartments")

	departments, err := h.departments.ListDepartments(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list departments from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToDepartmentResponses(departments))
}

// @Summary Create an establishment
// @Description Register a new subscriber site with its invite key.
// @Tags Establishments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param establishment body EstablishmentRequest true "Establishment creation request"
// @Success 201 {object} EstablishmentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/establishment [post]
func (h *Handler) createEstablishment(c *gin.Context) {
	var input EstablishmentRequest
	log := h.logger.WithField("method", "createEstablishment")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToEstablishmentModel(input)
	if err := h.establishments.CreateEstablishment(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create establishment in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToEstablishmentResponse(model, true))
}

// @Summary Update an establishment
// @Description Update an existing establishment by ID.
// @Tags Establishments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Establishment ID"
// @Param establishment body EstablishmentRequest true "Establishment update request"
// @Success 200 {object} EstablishmentResponse
// @Failure 400 {object} map[string]string "Invalid establishment ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Establishment not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/establishment/{id} [put]
func (h *Handler) updateEstablishment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid establishment ID"})
		return
	}
	log := h.logger.WithField("method", "updateEstablishment").WithField("id", id)

	var input EstablishmentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToEstablishmentModel(input)
	model.ID = id

	if err := h.establishments.UpdateEstablishment(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "establishment not found"})
			return
		}
		log.WithError(err).Error("Failed to update establishment in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToEstablishmentResponse(model, true))
}

// @Summary Get an establishment
// @Description Get a single establishment by its ID.
// @Tags Establishments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Establishment ID"
// @Success 200 {object} EstablishmentResponse
// @Failure 400 {object} map[string]string "Invalid establishment ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Establishment not found"
// @Router /admin/establishment/{id} [get]
func (h *Handler) getEstablishment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid establishment ID"})
		return
	}
	log := h.logger.WithField("method", "getEstablishment").WithField("id", id)

	establishment, err := h.establishments.GetEstablishment(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get establishment from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "establishment not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToEstablishmentResponse(establishment, true))
}

// @Summary List establishments (admin)
// @Description Get all establishments including invite keys.
// @Tags Establishments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} EstablishmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/establishments [get]
func (h *Handler) listEstablishmentsAdmin(c *gin.Context) {
	log := h.logger.WithField("method", "listEstablishmentsAdmin")

	establishments, err := h.establishments.ListEstablishments(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list establishments from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToEstablishmentResponses(establishments, true))
}
