package models

// Resident - житель, которому разрешено сообщать о ЧС
type Resident struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	HouseNo     string `json:"house_no"`
}

// EmergencyContact - контакт жителя вместе с атрибутами связи (тип отношения и приоритет).
// PriorityLevel 1 - наивысший.
type EmergencyContact struct {
	ContactID        int64  `json:"contact_id"`
	Name             string `json:"name"`
	ContactType      string `json:"contact_type"`
	PhoneNumber      string `json:"phone_number"`
	RelationshipType string `json:"relationship_type"`
	PriorityLevel    int    `json:"priority_level"`
}

// EmergencyService - экстренная служба, назначаемая на инцидент
type EmergencyService struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	ContactNumber string `json:"contact_number"`
}
