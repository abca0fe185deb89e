package v1

import (
	"strings"

	"github.com/fireduino/fireduino-api/internal/models"
)

// DTOToDepartmentModel converts a request body into the domain model,
// trimming string inputs on the way in.
func DTOToDepartmentModel(dto DepartmentRequest) *models.FireDepartment {
	return &models.FireDepartment{
		Name:      strings.TrimSpace(dto.Name),
		Phone:     strings.TrimSpace(dto.Phone),
		Address:   strings.TrimSpace(dto.Address),
		Latitude:  strings.TrimSpace(dto.Latitude),
		Longitude: strings.TrimSpace(dto.Longitude),
	}
}

func ModelToDepartmentResponse(model *models.FireDepartment) *DepartmentResponse {
	return &DepartmentResponse{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     model.Phone,
		Address:   model.Address,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ModelsToDepartmentResponses(models []*models.FireDepartment) []*DepartmentResponse {
	responses := make([]*DepartmentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToDepartmentResponse(model)
	}
	return responses
}

func DTOToEstablishmentModel(dto EstablishmentRequest) *models.Establishment {
	return &models.Establishment{
		Name:          strings.TrimSpace(dto.Name),
		Phone:         strings.TrimSpace(dto.Phone),
		Address:       strings.TrimSpace(dto.Address),
		Latitude:      strings.TrimSpace(dto.Latitude),
		Longitude:     strings.TrimSpace(dto.Longitude),
		InviteKey:     strings.TrimSpace(dto.InviteKey),
		AlertTemplate: strings.TrimSpace(dto.AlertTemplate),
	}
}

// ModelToEstablishmentResponse maps an establishment; the invite key is
// included only for admin consumers.
func ModelToEstablishmentResponse(model *models.Establishment, includeInviteKey bool) *EstablishmentResponse {
	resp := &EstablishmentResponse{
		ID:          model.ID,
		Name:        model.Name,
		Phone:       model.Phone,
		Address:     model.Address,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		DeviceCount: model.DeviceCount,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
	if includeInviteKey {
		resp.InviteKey = model.InviteKey
	}
	return resp
}

func ModelsToEstablishmentResponses(models []*models.Establishment, includeInviteKey bool) []*EstablishmentResponse {
	responses := make([]*EstablishmentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToEstablishmentResponse(model, includeInviteKey)
	}
	return responses
}

func DTOToFireduinoModel(dto RegisterFireduinoRequest) *models.Fireduino {
	return &models.Fireduino{
		EstablishmentID: dto.EstablishmentID,
		MAC:             strings.TrimSpace(dto.MAC),
		Name:            strings.TrimSpace(dto.Name),
	}
}

func ModelToFireduinoResponse(model *models.Fireduino) *FireduinoResponse {
	return &FireduinoResponse{
		ID:              model.ID,
		EstablishmentID: model.EstablishmentID,
		MAC:             model.MAC,
		Name:            model.Name,
		CreatedAt:       model.CreatedAt,
	}
}

func ModelsToFireduinoResponses(models []*models.Fireduino) []*FireduinoResponse {
	responses := make([]*FireduinoResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToFireduinoResponse(model)
	}
	return responses
}

func DTOToUserModel(dto RegisterUserRequest) *models.User {
	return &models.User{
		EstablishmentID: dto.EstablishmentID,
		FirstName:       strings.TrimSpace(dto.FirstName),
		LastName:        strings.TrimSpace(dto.LastName),
		Username:        strings.TrimSpace(dto.Username),
		Email:           strings.TrimSpace(dto.Email),
	}
}

func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		FireduinoID:  model.FireduinoID,
		DepartmentID: model.DepartmentID,
		SMSRecordID:  model.SMSRecordID,
		CreatedAt:    model.CreatedAt,
	}
}

func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ModelsToReportResponses(models []*models.IncidentReport) []*ReportResponse {
	responses := make([]*ReportResponse, len(models))
	for i, model := range models {
		responses[i] = &ReportResponse{
			ID:         model.ID,
			IncidentID: model.IncidentID,
			UserID:     model.UserID,
			CauseText:  model.CauseText,
			CreatedAt:  model.CreatedAt,
			UpdatedAt:  model.UpdatedAt,
		}
	}
	return responses
}

func ModelsToAccessLogResponses(models []*models.AccessLog) []*AccessLogResponse {
	responses := make([]*AccessLogResponse, len(models))
	for i, model := range models {
		responses[i] = &AccessLogResponse{
			ID:          model.ID,
			UserID:      model.UserID,
			FireduinoID: model.FireduinoID,
			CreatedAt:   model.CreatedAt,
		}
	}
	return responses
}

func ModelsToLoginRecordResponses(models []*models.LoginRecord) []*LoginRecordResponse {
	responses := make([]*LoginRecordResponse, len(models))
	for i, model := range models {
		responses[i] = &LoginRecordResponse{
			ID:        model.ID,
			UserID:    model.UserID,
			CreatedAt: model.CreatedAt,
		}
	}
	return responses
}

func ModelsToReportEditResponses(models []*models.ReportEdit) []*ReportEditResponse {
	responses := make([]*ReportEditResponse, len(models))
	for i, model := range models {
		responses[i] = &ReportEditResponse{
			ID:           model.ID,
			ReportID:     model.ReportID,
			UserID:       model.UserID,
			PreviousText: model.PreviousText,
			CreatedAt:    model.CreatedAt,
		}
	}
	return responses
}

func ModelsToSMSRecordResponses(models []*models.SMSRecord) []*SMSRecordResponse {
	responses := make([]*SMSRecordResponse, len(models))
	for i, model := range models {
		responses[i] = &SMSRecordResponse{
			ID:           model.ID,
			DepartmentID: model.DepartmentID,
			CreatedAt:    model.CreatedAt,
		}
	}
	return responses
}
