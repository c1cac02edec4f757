package assignment

import "github.com/shenikar/emergency_response_system/internal/models"

// Идентификаторы служб из сидов миграции 000002
const (
	FireDepartmentID   int64 = 1
	PoliceStationID    int64 = 2
	AmbulanceServiceID int64 = 3

	DefaultServiceID = PoliceStationID
)

var serviceByType = map[models.EmergencyType]int64{
	models.EmergencyFire:            FireDepartmentID,
	models.EmergencyMedical:         AmbulanceServiceID,
	models.EmergencyPolice:          PoliceStationID,
	models.EmergencyAccident:        AmbulanceServiceID,
	models.EmergencyNaturalDisaster: FireDepartmentID,
	models.EmergencyOther:           PoliceStationID,
}

// ResolveService возвращает службу, которая выезжает на данный тип ЧС.
// Для неизвестного типа - полиция.
func ResolveService(t models.EmergencyType) int64 {
	if id, ok := serviceByType[t]; ok {
		return id
	}
	return DefaultServiceID
}
