package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/emergency_response_system/internal/presentation"
)

// ReportIncidentRequest DTO для сообщения о ЧС
// @Description DTO для сообщения о ЧС
type ReportIncidentRequest struct {
	ResidentID    int64  `json:"resident_id" validate:"required,gt=0"`
	EmergencyType string `json:"emergency_type" validate:"required,max=32"`
	Description   string `json:"description,omitempty"`
	Location      string `json:"location" validate:"required,max=1024"`
	ReporterName  string `json:"reporter_name,omitempty" validate:"max=255"`
}

// ReportIncidentResponse DTO ответа на сообщение о ЧС
// @Description DTO ответа на сообщение о ЧС
type ReportIncidentResponse struct {
	Success       bool      `json:"success"`
	IncidentID    uuid.UUID `json:"incident_id"`
	ServiceID     int64     `json:"service_id"`
	Message       string    `json:"message"`
	Notifications []string  `json:"notifications"`
	Confirmation  string    `json:"confirmation"`
}

// UpdateStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// MessageResponse - ответ с флагом успеха и сообщением
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                uuid.UUID            `json:"id"`
	ResidentID        int64                `json:"resident_id"`
	EmergencyType     string               `json:"emergency_type"`
	Description       string               `json:"description"`
	Location          string               `json:"location"`
	ServiceID         int64                `json:"service_id"`
	Status            string               `json:"status"`
	StatusDescription string               `json:"status_description"`
	Timeline          []presentation.Stage `json:"timeline"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`

	ResidentName    string `json:"resident_name,omitempty"`
	ResidentAddress string `json:"resident_address,omitempty"`
	ResidentPhone   string `json:"resident_phone,omitempty"`
	ServiceName     string `json:"service_name,omitempty"`
	ServiceType     string `json:"service_type,omitempty"`
	ServiceContact  string `json:"service_contact,omitempty"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TotalIncidents  int            `json:"total_incidents"`
	ActiveIncidents int            `json:"active_incidents"`
	RecentIncidents int            `json:"recent_incidents"`
	WindowMinutes   int            `json:"window_minutes"`
	ByStatus        map[string]int `json:"by_status"`
}

// CreateResidentRequest DTO для регистрации жителя
// @Description DTO для регистрации жителя
type CreateResidentRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"max=32"`
	Email       string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	HouseNo     string `json:"house_no,omitempty" validate:"max=32"`
}

// CreateResidentResponse DTO ответа на регистрацию жителя
type CreateResidentResponse struct {
	Success    bool   `json:"success"`
	ResidentID int64  `json:"resident_id"`
	Message    string `json:"message"`
}

// AddContactRequest DTO для добавления экстренного контакта; priority_level 1 - наивысший
// @Description DTO для добавления экстренного контакта
type AddContactRequest struct {
	Name             string `json:"name" validate:"required,max=255"`
	ContactType      string `json:"contact_type,omitempty" validate:"max=64"`
	PhoneNumber      string `json:"phone_number,omitempty" validate:"max=32"`
	RelationshipType string `json:"relationship_type,omitempty" validate:"max=64"`
	PriorityLevel    int    `json:"priority_level,omitempty" validate:"gte=0"`
}

// AddContactResponse DTO ответа на добавление контакта
type AddContactResponse struct {
	Success   bool   `json:"success"`
	ContactID int64  `json:"contact_id"`
	Message   string `json:"message"`
}

// ResidentResponse DTO жителя
type ResidentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	HouseNo     string `json:"house_no"`
}

// ContactResponse DTO экстренного контакта жителя
type ContactResponse struct {
	ContactID        int64  `json:"contact_id"`
	Name             string `json:"name"`
	ContactType      string `json:"contact_type"`
	PhoneNumber      string `json:"phone_number"`
	RelationshipType string `json:"relationship_type"`
	PriorityLevel    int    `json:"priority_level"`
}

// ServiceResponse DTO экстренной службы
type ServiceResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	ContactNumber string `json:"contact_number"`
}
