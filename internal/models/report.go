package models

// ReportInput - данные сообщения о ЧС от жителя
type ReportInput struct {
	ResidentID    int64
	EmergencyType string
	Description   string
	Location      string
	ReporterName  string
}

// ReportResult - результат регистрации сообщения
type ReportResult struct {
	Incident      *Incident
	ServiceID     int64
	Notifications []string
	Confirmation  string
}
