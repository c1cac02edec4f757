package presentation

import "github.com/shenikar/emergency_response_system/internal/models"

const processingDescription = "Processing your emergency request"

var descriptions = map[models.Status]string{
	models.StatusReported:   "Your emergency has been reported and is being processed",
	models.StatusDispatched: "Emergency services have been dispatched to your location",
	models.StatusEnRoute:    "Help is on the way to your location",
	models.StatusResolved:   "Your emergency situation has been resolved",
}

// Stage - одна стадия на шкале реагирования
type Stage struct {
	Status  models.Status `json:"status"`
	Title   string        `json:"title"`
	Detail  string        `json:"detail"`
	Reached bool          `json:"reached"`
}

type stageText struct {
	title   string
	reached string
	pending string
}

var stageTexts = map[models.Status]stageText{
	models.StatusReported:   {"Emergency Reported", "Emergency has been logged", "Emergency has been logged"},
	models.StatusDispatched: {"Service Dispatched", "Response team activated", "Coordinating response..."},
	models.StatusEnRoute:    {"Help En Route", "Emergency services heading to location", "Awaiting dispatch..."},
	models.StatusResolved:   {"Situation Resolved", "Emergency has been contained", "Response in progress..."},
}

// DescribeStatus возвращает описание статуса для жителя
func DescribeStatus(raw string) string {
	status, ok := models.ParseStatus(raw)
	if !ok {
		return processingDescription
	}
	return descriptions[status]
}

// Timeline строит шкалу из четырех стадий.
// Стадия достигнута, если текущий статус равен ей или идет позже.
// Для неизвестного статуса достигнута только первая стадия.
func Timeline(raw string) []Stage {
	rank := 0
	if status, ok := models.ParseStatus(raw); ok {
		rank = status.Rank()
	}

	stages := make([]Stage, len(models.Statuses))
	for i, status := range models.Statuses {
		text := stageTexts[status]
		reached := i <= rank
		detail := text.pending
		if reached {
			detail = text.reached
		}
		stages[i] = Stage{
			Status:  status,
			Title:   text.title,
			Detail:  detail,
			Reached: reached,
		}
	}
	return stages
}
