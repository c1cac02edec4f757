package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EmergencyType - тип чрезвычайной ситуации, выбранный жителем
type EmergencyType string

const (
	EmergencyFire            EmergencyType = "Fire"
	EmergencyMedical         EmergencyType = "Medical"
	EmergencyPolice          EmergencyType = "Police"
	EmergencyAccident        EmergencyType = "Accident"
	EmergencyNaturalDisaster EmergencyType = "Natural Disaster"
	EmergencyOther           EmergencyType = "Other"
)

// EmergencyTypes перечисляет все поддерживаемые типы в порядке отображения
var EmergencyTypes = []EmergencyType{
	EmergencyFire,
	EmergencyMedical,
	EmergencyPolice,
	EmergencyAccident,
	EmergencyNaturalDisaster,
	EmergencyOther,
}

// IsValid сообщает, входит ли тип в закрытый набор
func (t EmergencyType) IsValid() bool {
	for _, known := range EmergencyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Incident - запись о поступившем сообщении о ЧС.
// Поля Resident* и Service* не хранятся в таблице и заполняются при чтении.
type Incident struct {
	ID            uuid.UUID     `json:"id"`
	ResidentID    int64         `json:"resident_id"`
	EmergencyType EmergencyType `json:"emergency_type"`
	Description   string        `json:"description"`
	Location      string        `json:"location"`
	ServiceID     int64         `json:"service_id"`
	Status        Status        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	ResidentName    string `json:"-"`
	ResidentAddress string `json:"-"`
	ResidentPhone   string `json:"-"`
	ServiceName     string `json:"-"`
	ServiceType     string `json:"-"`
	ServiceContact  string `json:"-"`
}

// IncidentStats - агрегаты для панели администратора
type IncidentStats struct {
	Total    int
	Active   int
	Recent   int
	ByStatus map[Status]int
}

// ParseEmergencyType приводит внешнее значение к типу из закрытого набора
func ParseEmergencyType(raw string) (EmergencyType, bool) {
	key := foldKey(raw)
	if key == "" {
		return "", false
	}
	for _, known := range EmergencyTypes {
		if foldKey(string(known)) == key {
			return known, true
		}
	}
	return "", false
}

func foldKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
