package notification

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shenikar/emergency_response_system/internal/models"
)

var safetyInstructions = map[models.EmergencyType][]string{
	models.EmergencyFire: {
		"Evacuate the building immediately using the nearest safe exit",
		"Stay low to the ground to avoid smoke inhalation",
		"Do not use elevators during a fire emergency",
		"Check doors for heat before opening them",
		"Proceed to the designated assembly point and do not re-enter the building",
	},
	models.EmergencyMedical: {
		"Do not move the injured person unless they are in immediate danger",
		"Check for responsiveness and breathing",
		"If trained, provide basic first aid while waiting for professionals",
		"Keep the person warm and comfortable",
		"Have any relevant medical information ready for responders",
	},
	models.EmergencyPolice: {
		"Secure all doors and windows immediately",
		"Move to a safe, interior room if possible",
		"Remain quiet and keep phone lines clear",
		"Do not confront or approach any suspicious individuals",
		"Note physical descriptions and vehicle information if safe to observe",
	},
	models.EmergencyAccident: {
		"Activate hazard lights and set up warning devices if available",
		"Move to a safe location away from traffic if able",
		"Check all involved parties for injuries",
		"Do not attempt to move seriously injured persons",
		"Wait for emergency services to arrive on scene",
	},
	models.EmergencyNaturalDisaster: {
		"Take immediate cover under sturdy furniture or in reinforced areas",
		"Stay away from windows, glass, and exterior walls",
		"If flooding occurs, move to higher ground immediately",
		"Monitor emergency broadcasts for official instructions",
		"Have emergency supplies ready including water and medications",
	},
	models.EmergencyOther: {
		"Move to a secure and safe location immediately",
		"Keep communication devices charged and accessible",
		"Remain with others if possible for safety",
		"Have emergency contact numbers readily available",
		"Follow instructions from emergency response personnel",
	},
}

// SafetyInstructions возвращает инструкции для типа ЧС, для неизвестного типа - общие
func SafetyInstructions(t models.EmergencyType) []string {
	instructions, ok := safetyInstructions[t]
	if !ok {
		instructions = safetyInstructions[models.EmergencyOther]
	}
	return append([]string(nil), instructions...)
}

// ConfirmationMessage - итоговое сообщение, которое показывается после списка оповещений
func ConfirmationMessage(t models.EmergencyType, location string, incidentID uuid.UUID) string {
	var b strings.Builder
	b.WriteString("EMERGENCY RESPONSE CONFIRMED\n\n")
	fmt.Fprintf(&b, "Service Dispatched: %s Emergency Services\n", t)
	fmt.Fprintf(&b, "Response Location: %s\n", location)
	fmt.Fprintf(&b, "Incident Reference: #%s\n\n", incidentID)
	b.WriteString("CRITICAL SAFETY INSTRUCTIONS:\n")
	for _, line := range SafetyInstructions(t) {
		fmt.Fprintf(&b, "• %s\n", line)
	}
	b.WriteString("\nHelp is en route. Maintain communication if safe to do so.")
	return b.String()
}
