package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"Reported":   StatusReported,
		"dispatched": StatusDispatched,
		"En Route":   StatusEnRoute,
		"EnRoute":    StatusEnRoute,
		" resolved ": StatusResolved,
	}
	for raw, expected := range cases {
		status, ok := ParseStatus(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, expected, status)
	}

	for _, raw := range []string{"", "Closed", "En-Route"} {
		_, ok := ParseStatus(raw)
		assert.False(t, ok, raw)
	}
}

func TestParseEmergencyType(t *testing.T) {
	emergencyType, ok := ParseEmergencyType("NaturalDisaster")
	assert.True(t, ok)
	assert.Equal(t, EmergencyNaturalDisaster, emergencyType)

	emergencyType, ok = ParseEmergencyType("fire")
	assert.True(t, ok)
	assert.Equal(t, EmergencyFire, emergencyType)

	_, ok = ParseEmergencyType("Earthquake")
	assert.False(t, ok)
}

func TestCanTransition_Strict(t *testing.T) {
	assert.True(t, CanTransition(StatusReported, StatusDispatched, false))
	assert.True(t, CanTransition(StatusReported, StatusResolved, false))
	assert.True(t, CanTransition(StatusEnRoute, StatusEnRoute, false))

	assert.False(t, CanTransition(StatusResolved, StatusReported, false))
	assert.False(t, CanTransition(StatusEnRoute, StatusDispatched, false))
	assert.False(t, CanTransition(StatusReported, "Closed", false))
}

func TestCanTransition_Lenient(t *testing.T) {
	for _, from := range Statuses {
		for _, to := range Statuses {
			assert.True(t, CanTransition(from, to, true), "%s -> %s", from, to)
		}
	}
}

func TestAllowedPredecessors(t *testing.T) {
	assert.Equal(t, []Status{StatusReported, StatusDispatched}, StatusDispatched.AllowedPredecessors(false))
	assert.Equal(t, Statuses, StatusReported.AllowedPredecessors(true))
	assert.Nil(t, Status("Closed").AllowedPredecessors(false))
}

func TestIsActive(t *testing.T) {
	assert.True(t, StatusReported.IsActive())
	assert.True(t, StatusEnRoute.IsActive())
	assert.False(t, StatusResolved.IsActive())
	assert.False(t, Status("").IsActive())
}
