package v1

import (
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/presentation"
)

const (
	reportSuccessMessage   = "Emergency reported successfully!"
	residentCreatedMessage = "Resident created successfully"
	contactAddedMessage    = "Emergency contact added successfully"
)

// DTOToReportInput преобразует запрос в входные данные сервиса
func DTOToReportInput(dto ReportIncidentRequest) models.ReportInput {
	return models.ReportInput{
		ResidentID:    dto.ResidentID,
		EmergencyType: dto.EmergencyType,
		Description:   dto.Description,
		Location:      dto.Location,
		ReporterName:  dto.ReporterName,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
// и добавляет описание статуса и шкалу стадий
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	status := string(model.Status)
	return &IncidentResponse{
		ID:                model.ID,
		ResidentID:        model.ResidentID,
		EmergencyType:     string(model.EmergencyType),
		Description:       model.Description,
		Location:          model.Location,
		ServiceID:         model.ServiceID,
		Status:            status,
		StatusDescription: presentation.DescribeStatus(status),
		Timeline:          presentation.Timeline(status),
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
		ResidentName:      model.ResidentName,
		ResidentAddress:   model.ResidentAddress,
		ResidentPhone:     model.ResidentPhone,
		ServiceName:       model.ServiceName,
		ServiceType:       model.ServiceType,
		ServiceContact:    model.ServiceContact,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ReportResultToResponse(result *models.ReportResult) *ReportIncidentResponse {
	notifications := result.Notifications
	if notifications == nil {
		notifications = make([]string, 0)
	}
	return &ReportIncidentResponse{
		Success:       true,
		IncidentID:    result.Incident.ID,
		ServiceID:     result.ServiceID,
		Message:       reportSuccessMessage,
		Notifications: notifications,
		Confirmation:  result.Confirmation,
	}
}

func StatsToResponse(stats *models.IncidentStats, windowMinutes int) *StatsResponse {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}
	return &StatsResponse{
		TotalIncidents:  stats.Total,
		ActiveIncidents: stats.Active,
		RecentIncidents: stats.Recent,
		WindowMinutes:   windowMinutes,
		ByStatus:        byStatus,
	}
}

func DTOToResident(dto CreateResidentRequest) *models.Resident {
	return &models.Resident{
		Name:        dto.Name,
		Address:     dto.Address,
		PhoneNumber: dto.PhoneNumber,
		Email:       dto.Email,
		HouseNo:     dto.HouseNo,
	}
}

func DTOToContact(dto AddContactRequest) *models.EmergencyContact {
	return &models.EmergencyContact{
		Name:             dto.Name,
		ContactType:      dto.ContactType,
		PhoneNumber:      dto.PhoneNumber,
		RelationshipType: dto.RelationshipType,
		PriorityLevel:    dto.PriorityLevel,
	}
}

func ResidentToResponse(r *models.Resident) *ResidentResponse {
	return &ResidentResponse{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		HouseNo:     r.HouseNo,
	}
}

func ResidentsToResponses(residents []*models.Resident) []*ResidentResponse {
	responses := make([]*ResidentResponse, len(residents))
	for i, r := range residents {
		responses[i] = ResidentToResponse(r)
	}
	return responses
}

func ContactsToResponses(contacts []models.EmergencyContact) []ContactResponse {
	responses := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		responses[i] = ContactResponse{
			ContactID:        c.ContactID,
			Name:             c.Name,
			ContactType:      c.ContactType,
			PhoneNumber:      c.PhoneNumber,
			RelationshipType: c.RelationshipType,
			PriorityLevel:    c.PriorityLevel,
		}
	}
	return responses
}

func ServiceToResponse(s *models.EmergencyService) *ServiceResponse {
	return &ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Type:          s.Type,
		ContactNumber: s.ContactNumber,
	}
}

func ServicesToResponses(services []*models.EmergencyService) []*ServiceResponse {
	responses := make([]*ServiceResponse, len(services))
	for i, s := range services {
		responses[i] = ServiceToResponse(s)
	}
	return responses
}
