package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/emergency_response_system/internal/assignment"
	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/notification"
	"github.com/shenikar/emergency_response_system/internal/webhook"
)

//go:generate mockgen -source=incident.go -destination=mocks/incident_mock.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	ListByResident(ctx context.Context, residentID int64) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status, allowedFrom []models.Status) (*models.Incident, error)
	GetStats(ctx context.Context, since time.Time) (*models.IncidentStats, error)

	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	FillIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// ResidentDirectory - справочник жителей и их экстренных контактов
type ResidentDirectory interface {
	ListResidents(ctx context.Context) ([]*models.Resident, error)
	GetResident(ctx context.Context, id int64) (*models.Resident, error)
	GetContacts(ctx context.Context, residentID int64) ([]models.EmergencyContact, error)
	CreateResident(ctx context.Context, resident *models.Resident) error
	AddContact(ctx context.Context, residentID int64, contact *models.EmergencyContact) error
}

// ServiceDirectory - справочник экстренных служб (только чтение)
type ServiceDirectory interface {
	ListServices(ctx context.Context) ([]*models.EmergencyService, error)
	GetService(ctx context.Context, id int64) (*models.EmergencyService, error)
}

// IncidentService определяет контракт бизнес-логики жизненного цикла инцидента
type IncidentService interface {
	ReportIncident(ctx context.Context, input models.ReportInput) (*models.ReportResult, error)
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	ListIncidentsByResident(ctx context.Context, residentID int64) ([]*models.Incident, error)
	LatestIncidentForResident(ctx context.Context, residentID int64) (*models.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id uuid.UUID, status string) (models.Status, error)
	GetStats(ctx context.Context) (*models.IncidentStats, error)
}

type incidentService struct {
	repo      IncidentRepository
	residents ResidentDirectory
	services  ServiceDirectory
	publisher webhook.NotificationPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewIncidentService(
	repo IncidentRepository,
	residents ResidentDirectory,
	services ServiceDirectory,
	publisher webhook.NotificationPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) IncidentService {
	return &incidentService{
		repo:      repo,
		residents: residents,
		services:  services,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// ReportIncident регистрирует сообщение о ЧС: назначает службу, сохраняет запись,
// затем формирует и ставит в очередь оповещения контактов.
// Ошибка оповещения не отменяет уже сохраненный инцидент.
func (s *incidentService) ReportIncident(ctx context.Context, input models.ReportInput) (*models.ReportResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "incident",
		"method":         "ReportIncident",
		"resident_id":    input.ResidentID,
		"emergency_type": input.EmergencyType,
	})
	log.Info("Attempting to report a new incident")

	emergencyType, err := validateReport(input)
	if err != nil {
		log.WithError(err).Warn("Report rejected by validation")
		return nil, err
	}

	resident, err := s.residents.GetResident(ctx, input.ResidentID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Report references an unknown resident")
			return nil, fmt.Errorf("%w: resident %d does not exist", models.ErrValidation, input.ResidentID)
		}
		log.WithError(err).Error("Failed to look up resident")
		return nil, fmt.Errorf("service: could not look up resident: %w", err)
	}

	reporterName := strings.TrimSpace(input.ReporterName)
	if reporterName == "" {
		reporterName = resident.Name
	}

	incident := &models.Incident{
		ResidentID:    input.ResidentID,
		EmergencyType: emergencyType,
		Description:   input.Description,
		Location:      input.Location,
		ServiceID:     assignment.ResolveService(emergencyType),
		Status:        models.StatusReported,
	}
	if strings.TrimSpace(incident.Description) == "" {
		incident.Description = fmt.Sprintf("Emergency reported by %s at %s", reporterName, input.Location)
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}
	log = log.WithFields(logrus.Fields{"incident_id": incident.ID, "service_id": incident.ServiceID})
	log.Info("Incident created successfully")

	incident.ResidentName = resident.Name
	incident.ResidentAddress = resident.Address
	incident.ResidentPhone = resident.PhoneNumber
	if err := s.attachService(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to attach service details to new incident")
	}

	result := &models.ReportResult{
		Incident:     incident,
		ServiceID:    incident.ServiceID,
		Confirmation: notification.ConfirmationMessage(emergencyType, incident.Location, incident.ID),
	}
	result.Notifications = s.notifyContacts(ctx, log, incident)
	return result, nil
}

func (s *incidentService) notifyContacts(ctx context.Context, log *logrus.Entry, incident *models.Incident) []string {
	contacts, err := s.residents.GetContacts(ctx, incident.ResidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch emergency contacts, skipping notifications")
		return make([]string, 0)
	}

	messages := notification.ComposeNotifications(contacts)
	if len(contacts) == 0 {
		log.Info("Resident has no emergency contacts on file")
		return messages
	}

	event := webhook.NotificationEvent{
		IncidentID:    incident.ID,
		ResidentID:    incident.ResidentID,
		EmergencyType: incident.EmergencyType,
		Location:      incident.Location,
		ServiceID:     incident.ServiceID,
		Contacts:      contacts,
		Messages:      messages,
		Timestamp:     s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to enqueue contact notifications")
	} else {
		log.WithField("contacts", len(contacts)).Info("Contact notifications enqueued")
	}
	return messages
}

func validateReport(input models.ReportInput) (models.EmergencyType, error) {
	if input.ResidentID <= 0 {
		return "", fmt.Errorf("%w: resident_id is required", models.ErrValidation)
	}
	if strings.TrimSpace(input.EmergencyType) == "" {
		return "", fmt.Errorf("%w: emergency_type is required", models.ErrValidation)
	}
	// Неизвестный тип сохраняется как есть и получает службу по умолчанию
	emergencyType, ok := models.ParseEmergencyType(input.EmergencyType)
	if !ok {
		emergencyType = models.EmergencyType(strings.TrimSpace(input.EmergencyType))
	}
	if strings.TrimSpace(input.Location) == "" {
		return "", fmt.Errorf("%w: location is required", models.ErrValidation)
	}
	return emergencyType, nil
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	incident, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
		incident = nil
	}

	if incident == nil {
		incident, err = s.repo.GetByID(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Failed to get incident in repository")
			return nil, fmt.Errorf("service: could not get incident: %w", err)
		}
		if err := s.repo.FillIncidentCache(ctx, incident); err != nil {
			log.WithError(err).Warn("Failed to cache incident")
		}
	}

	if err := s.enrichOne(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to enrich incident")
		return nil, fmt.Errorf("service: could not get incident details: %w", err)
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// ListIncidents возвращает все инциденты, новые первыми
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	if err := s.enrichMany(ctx, incidents); err != nil {
		log.WithError(err).Error("Failed to enrich incidents")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// ListIncidentsByResident возвращает инциденты жителя, новые первыми; пустой список - не ошибка
func (s *incidentService) ListIncidentsByResident(ctx context.Context, residentID int64) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ListIncidentsByResident",
		"resident_id": residentID,
	})
	log.Info("Listing incidents for resident")

	incidents, err := s.repo.ListByResident(ctx, residentID)
	if err != nil {
		log.WithError(err).Error("Failed to list resident incidents from repository")
		return nil, fmt.Errorf("service: could not list resident incidents: %w", err)
	}
	if incidents == nil {
		incidents = make([]*models.Incident, 0)
	}

	if err := s.enrichMany(ctx, incidents); err != nil {
		log.WithError(err).Error("Failed to enrich resident incidents")
		return nil, fmt.Errorf("service: could not list resident incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Resident incidents listed successfully")
	return incidents, nil
}

// LatestIncidentForResident - самый свежий инцидент жителя, для страницы статуса
func (s *incidentService) LatestIncidentForResident(ctx context.Context, residentID int64) (*models.Incident, error) {
	incidents, err := s.ListIncidentsByResident(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if len(incidents) == 0 {
		return nil, fmt.Errorf("service: resident %d has no incidents: %w", residentID, models.ErrNotFound)
	}
	return incidents[0], nil
}

// UpdateIncidentStatus меняет статус инцидента.
// Допустимость перехода проверяет репозиторий одним условным UPDATE.
func (s *incidentService) UpdateIncidentStatus(ctx context.Context, id uuid.UUID, raw string) (models.Status, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncidentStatus",
		"incident_id": id,
		"status":      raw,
	})
	log.Info("Attempting to update incident status")

	status, ok := models.ParseStatus(raw)
	if !ok {
		log.Warn("Unknown status value")
		return "", fmt.Errorf("%w: unknown status %q", models.ErrValidation, raw)
	}

	allowedFrom := status.AllowedPredecessors(s.cfg.LenientStatusTransitions)
	updated, err := s.repo.UpdateStatus(ctx, id, status, allowedFrom)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			log.WithError(err).Warn("Attempted to update status of a non-existent incident")
			return "", fmt.Errorf("service: incident with id %s not found for status update: %w", id, err)
		case errors.Is(err, models.ErrInvalidTransition):
			log.WithError(err).Warn("Rejected backward status transition")
			return "", fmt.Errorf("%w: %w", models.ErrValidation, err)
		default:
			log.WithError(err).Error("Failed to update incident status in repository")
			return "", fmt.Errorf("service: could not update incident status: %w", err)
		}
	}

	s.refreshCache(ctx, log, updated)

	log.Info("Incident status updated successfully")
	return status, nil
}

// refreshCache перезаписывает кеш свежей записью; если запись не удалась, ключ удаляется
func (s *incidentService) refreshCache(ctx context.Context, log *logrus.Entry, incident *models.Incident) {
	err := s.repo.SetIncidentCache(ctx, incident)
	if err == nil {
		return
	}
	log.WithError(err).Warn("Failed to refresh incident cache")
	if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Error("Failed to invalidate incident cache, stale status may be served until TTL")
	}
}

// GetStats возвращает агрегаты по инцидентам, Recent - за окно STATS_TIME_WINDOW_MINUTES
func (s *incidentService) GetStats(ctx context.Context) (*models.IncidentStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetStats",
	})

	since := s.now().Add(-time.Duration(s.cfg.StatsTimeWindowMinutes) * time.Minute)
	stats, err := s.repo.GetStats(ctx, since)
	if err != nil {
		log.WithError(err).Error("Failed to get incident stats from repository")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	log.WithField("total", stats.Total).Info("Incident stats fetched successfully")
	return stats, nil
}

// enrichOne подставляет данные жителя и службы; отсутствующая запись справочника оставляет поля пустыми
func (s *incidentService) enrichOne(ctx context.Context, incident *models.Incident) error {
	resident, err := s.residents.GetResident(ctx, incident.ResidentID)
	switch {
	case err == nil:
		incident.ResidentName = resident.Name
		incident.ResidentAddress = resident.Address
		incident.ResidentPhone = resident.PhoneNumber
	case !errors.Is(err, models.ErrNotFound):
		return fmt.Errorf("resident lookup: %w", err)
	}
	return s.attachService(ctx, incident)
}

func (s *incidentService) attachService(ctx context.Context, incident *models.Incident) error {
	svc, err := s.services.GetService(ctx, incident.ServiceID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("service lookup: %w", err)
	}
	incident.ServiceName = svc.Name
	incident.ServiceType = svc.Type
	incident.ServiceContact = svc.ContactNumber
	return nil
}

// enrichMany загружает оба справочника параллельно и соединяет их с инцидентами в памяти
func (s *incidentService) enrichMany(ctx context.Context, incidents []*models.Incident) error {
	if len(incidents) == 0 {
		return nil
	}

	var (
		residents []*models.Resident
		services  []*models.EmergencyService
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		residents, err = s.residents.ListResidents(gctx)
		if err != nil {
			return fmt.Errorf("list residents: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		services, err = s.services.ListServices(gctx)
		if err != nil {
			return fmt.Errorf("list services: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	residentByID := make(map[int64]*models.Resident, len(residents))
	for _, r := range residents {
		residentByID[r.ID] = r
	}
	serviceByID := make(map[int64]*models.EmergencyService, len(services))
	for _, svc := range services {
		serviceByID[svc.ID] = svc
	}

	for _, incident := range incidents {
		if r, ok := residentByID[incident.ResidentID]; ok {
			incident.ResidentName = r.Name
			incident.ResidentAddress = r.Address
			incident.ResidentPhone = r.PhoneNumber
		}
		if svc, ok := serviceByID[incident.ServiceID]; ok {
			incident.ServiceName = svc.Name
			incident.ServiceType = svc.Type
			incident.ServiceContact = svc.ContactNumber
		}
	}
	return nil
}
