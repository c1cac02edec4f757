package notification

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shenikar/emergency_response_system/internal/models"
)

const (
	highPriorityLevel = 1

	NoContactsMessage = "No emergency contacts found in your profile."
)

// ComposeNotifications строит последовательность сообщений об оповещении контактов.
// Сначала идут контакты с приоритетом 1, затем все остальные; внутри группы сохраняется входной порядок.
func ComposeNotifications(contacts []models.EmergencyContact) []string {
	if len(contacts) == 0 {
		return []string{NoContactsMessage}
	}

	lower := cases.Lower(language.Und)
	messages := make([]string, 0, len(contacts))

	for _, c := range contacts {
		if c.PriorityLevel == highPriorityLevel {
			messages = append(messages, fmt.Sprintf("Your %s %s has been contacted with high priority.",
				lower.String(c.RelationshipType), c.Name))
		}
	}
	for _, c := range contacts {
		if c.PriorityLevel != highPriorityLevel {
			messages = append(messages, fmt.Sprintf("Your %s %s has been notified.",
				lower.String(c.RelationshipType), c.Name))
		}
	}
	return messages
}
