package assignment

import (
	"testing"

	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveService_KnownTypes(t *testing.T) {
	cases := map[models.EmergencyType]int64{
		models.EmergencyFire:            FireDepartmentID,
		models.EmergencyMedical:         AmbulanceServiceID,
		models.EmergencyPolice:          PoliceStationID,
		models.EmergencyAccident:        AmbulanceServiceID,
		models.EmergencyNaturalDisaster: FireDepartmentID,
		models.EmergencyOther:           PoliceStationID,
	}

	for emergencyType, expected := range cases {
		t.Run(string(emergencyType), func(t *testing.T) {
			assert.Equal(t, expected, ResolveService(emergencyType))
		})
	}
}

func TestResolveService_EveryTypeIsMapped(t *testing.T) {
	for _, emergencyType := range models.EmergencyTypes {
		_, ok := serviceByType[emergencyType]
		assert.True(t, ok, "no service for %q", emergencyType)
	}
}

func TestResolveService_UnknownFallsBackToPolice(t *testing.T) {
	for _, emergencyType := range []models.EmergencyType{"", "Flood", "fire", "NaturalDisaster"} {
		assert.Equal(t, PoliceStationID, ResolveService(emergencyType))
	}
}
