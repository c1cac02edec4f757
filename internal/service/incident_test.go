package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/emergency_response_system/internal/assignment"
	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service/mocks"
	"github.com/shenikar/emergency_response_system/internal/webhook"
	webhook_mocks "github.com/shenikar/emergency_response_system/internal/webhook/mocks"
)

type testDeps struct {
	repo      *mocks.MockIncidentRepository
	residents *mocks.MockResidentDirectory
	services  *mocks.MockServiceDirectory
	publisher *webhook_mocks.MockNotificationPublisher
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T, cfg *config.Config) (*incidentService, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		repo:      mocks.NewMockIncidentRepository(ctrl),
		residents: mocks.NewMockResidentDirectory(ctrl),
		services:  mocks.NewMockServiceDirectory(ctrl),
		publisher: webhook_mocks.NewMockNotificationPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	if cfg == nil {
		cfg = &config.Config{StatsTimeWindowMinutes: 60}
	}

	svc := NewIncidentService(deps.repo, deps.residents, deps.services, deps.publisher, logger, cfg)
	return svc.(*incidentService), deps
}

var (
	testResident = &models.Resident{ID: 5, Name: "Jane Doe", Address: "12 Oak St", PhoneNumber: "555-0101"}
	fireService  = &models.EmergencyService{ID: assignment.FireDepartmentID, Name: "Fire Department", Type: "Fire", ContactNumber: "101"}
)

func TestReportIncident_FireWithoutDescription(t *testing.T) {
	// Подготовка
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	contacts := []models.EmergencyContact{
		{Name: "Bob", RelationshipType: "Brother", PriorityLevel: 2},
		{Name: "Ann", RelationshipType: "Mother", PriorityLevel: 1},
	}
	incidentID := uuid.New()

	// Ожидания
	deps.residents.EXPECT().GetResident(ctx, int64(5)).Return(testResident, nil).Times(1)
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, assignment.FireDepartmentID, inc.ServiceID)
			assert.Equal(t, models.StatusReported, inc.Status)
			assert.Equal(t, models.EmergencyFire, inc.EmergencyType)
			// Симулируем, что БД присвоила ID
			inc.ID = incidentID
			inc.CreatedAt = time.Now()
			return nil
		}).Times(1)
	deps.services.EXPECT().GetService(ctx, assignment.FireDepartmentID).Return(fireService, nil).Times(1)
	deps.residents.EXPECT().GetContacts(ctx, int64(5)).Return(contacts, nil).Times(1)
	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.NotificationEvent) {
			assert.Equal(t, incidentID, event.IncidentID)
			assert.Equal(t, contacts, event.Contacts)
			assert.Equal(t, []string{
				"Your mother Ann has been contacted with high priority.",
				"Your brother Bob has been notified.",
			}, event.Messages)
		}).Return(nil).Times(1)

	// Действие
	result, err := service.ReportIncident(ctx, models.ReportInput{
		ResidentID:    5,
		EmergencyType: "Fire",
		Location:      "12 Oak St",
		ReporterName:  "J. Doe",
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, assignment.FireDepartmentID, result.ServiceID)
	assert.Equal(t, incidentID, result.Incident.ID)
	assert.Equal(t, models.StatusReported, result.Incident.Status)
	assert.Equal(t, "Emergency reported by J. Doe at 12 Oak St", result.Incident.Description)
	assert.Equal(t, "Fire Department", result.Incident.ServiceName)
	assert.Equal(t, "Jane Doe", result.Incident.ResidentName)
	assert.Len(t, result.Notifications, 2)
	assert.Contains(t, result.Confirmation, incidentID.String())
}

func TestReportIncident_KeepsDescriptionVerbatim(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	description := "  Smoke in the stairwell, 3rd floor "

	deps.residents.EXPECT().GetResident(ctx, int64(5)).Return(testResident, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, description, inc.Description)
			inc.ID = uuid.New()
			return nil
		})
	deps.services.EXPECT().GetService(ctx, gomock.Any()).Return(fireService, nil)
	deps.residents.EXPECT().GetContacts(ctx, int64(5)).Return(nil, nil)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	result, err := service.ReportIncident(ctx, models.ReportInput{
		ResidentID:    5,
		EmergencyType: "Fire",
		Description:   description,
		Location:      "12 Oak St",
		ReporterName:  "J. Doe",
	})

	require.NoError(t, err)
	assert.Equal(t, description, result.Incident.Description)
	assert.Equal(t, []string{"No emergency contacts found in your profile."}, result.Notifications)
}

func TestReportIncident_BlankReporterUsesResidentName(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()

	deps.residents.EXPECT().GetResident(ctx, int64(5)).Return(testResident, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, assignment.AmbulanceServiceID, inc.ServiceID)
			inc.ID = uuid.New()
			return nil
		})
	deps.services.EXPECT().GetService(ctx, assignment.AmbulanceServiceID).Return(nil, models.ErrNotFound)
	deps.residents.EXPECT().GetContacts(ctx, int64(5)).Return([]models.EmergencyContact{}, nil)

	result, err := service.ReportIncident(ctx, models.ReportInput{
		ResidentID:    5,
		EmergencyType: "Medical",
		Description:   "   ",
		Location:      "Park gate",
	})

	require.NoError(t, err)
	assert.Equal(t, "Emergency reported by Jane Doe at Park gate", result.Incident.Description)
	assert.Empty(t, result.Incident.ServiceName)
}

func TestReportIncident_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		input models.ReportInput
	}{
		{"missing resident", models.ReportInput{EmergencyType: "Fire", Location: "12 Oak St"}},
		{"missing emergency type", models.ReportInput{ResidentID: 5, Location: "12 Oak St"}},
		{"blank emergency type", models.ReportInput{ResidentID: 5, EmergencyType: "   ", Location: "12 Oak St"}},
		{"blank location", models.ReportInput{ResidentID: 5, EmergencyType: "Fire", Location: "  "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Ни один мок не должен вызываться
			service, _ := newTestIncidentService(t, nil)

			result, err := service.ReportIncident(context.Background(), tc.input)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestReportIncident_UnknownTypeFallsBackToPolice(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()

	deps.residents.EXPECT().GetResident(ctx, int64(5)).Return(testResident, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			// Тип сохраняется как прислал житель
			assert.Equal(t, models.EmergencyType("Gas Leak"), inc.EmergencyType)
			assert.Equal(t, assignment.PoliceStationID, inc.ServiceID)
			inc.ID = uuid.New()
			return nil
		})
	deps.services.EXPECT().GetService(ctx, assignment.PoliceStationID).
		Return(&models.EmergencyService{ID: assignment.PoliceStationID, Name: "Police Station"}, nil)
	deps.residents.EXPECT().GetContacts(ctx, int64(5)).Return(nil, nil)

	result, err := service.ReportIncident(ctx, models.ReportInput{ResidentID: 5, EmergencyType: " Gas Leak ", Location: "12 Oak St"})

	require.NoError(t, err)
	assert.Equal(t, assignment.PoliceStationID, result.ServiceID)
	assert.Contains(t, result.Confirmation, "Service Dispatched: Gas Leak Emergency Services")
}

func TestReportIncident_ContactLookupFailureKeepsEmptyNotifications(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()

	deps.residents.EXPECT().GetResident(ctx, int64(5)).Return(testResident, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = uuid.New()
			return nil
		})
	deps.services.EXPECT().GetService(ctx, assignment.FireDepartmentID).Return(fireService, nil)
	deps.residents.EXPECT().GetContacts(ctx, int64(5)).Return(nil, errors.New("connection reset"))
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	result, err := service.ReportIncident(ctx, models.ReportInput{ResidentID: 5, EmergencyType: "Fire", Location: "12 Oak St"})

	require.NoError(t, err)
	require.NotNil(t, result.Notifications)
	assert.Empty(t, result.Notifications)
}

func TestReportIncident_UnknownResident(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()

	deps.residents.EXPECT().GetResident(ctx, int64(99)).Return(nil, fmt.Errorf("resident 99: %w", models.ErrNotFound))

	_, err := service.ReportIncident(ctx, models.ReportInput{ResidentID: 99, EmergencyType: "Police", Location: "Main St"})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestReportIncident_PersistenceFailureNotifiesNobody(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()

	deps.residents.EXPECT().GetResident(ctx, int64(5)).Return(testResident, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("connection refused"))
	deps.residents.EXPECT().GetContacts(gomock.Any(), gomock.Any()).Times(0)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	result, err := service.ReportIncident(ctx, models.ReportInput{ResidentID: 5, EmergencyType: "Fire", Location: "12 Oak St"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "could not create incident")
	assert.NotErrorIs(t, err, models.ErrValidation)
}

func TestReportIncident_PublishFailureStillSucceeds(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()

	deps.residents.EXPECT().GetResident(ctx, int64(5)).Return(testResident, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = uuid.New()
			return nil
		})
	deps.services.EXPECT().GetService(ctx, gomock.Any()).Return(fireService, nil)
	deps.residents.EXPECT().GetContacts(ctx, int64(5)).
		Return([]models.EmergencyContact{{Name: "Ann", RelationshipType: "Mother", PriorityLevel: 1}}, nil)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))

	result, err := service.ReportIncident(ctx, models.ReportInput{ResidentID: 5, EmergencyType: "Fire", Location: "12 Oak St"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Your mother Ann has been contacted with high priority."}, result.Notifications)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	incidentID := uuid.New()
	cached := &models.Incident{ID: incidentID, ResidentID: 5, ServiceID: assignment.FireDepartmentID, Status: models.StatusDispatched}

	// Ожидания
	deps.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(cached, nil).Times(1)
	deps.repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	deps.residents.EXPECT().GetResident(ctx, int64(5)).Return(testResident, nil)
	deps.services.EXPECT().GetService(ctx, assignment.FireDepartmentID).Return(fireService, nil)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusDispatched, incident.Status)
	assert.Equal(t, "Jane Doe", incident.ResidentName)
	assert.Equal(t, "101", incident.ServiceContact)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	incidentID := uuid.New()
	stored := &models.Incident{ID: incidentID, ResidentID: 5, ServiceID: assignment.FireDepartmentID}

	// 1. Промах кеша
	deps.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(stored, nil).Times(1)
	// 3. Запись в кеш, только если ключа нет
	deps.repo.EXPECT().FillIncidentCache(ctx, stored).Return(nil).Times(1)
	deps.repo.EXPECT().SetIncidentCache(gomock.Any(), gomock.Any()).Times(0)
	deps.residents.EXPECT().GetResident(ctx, int64(5)).Return(nil, models.ErrNotFound)
	deps.services.EXPECT().GetService(ctx, assignment.FireDepartmentID).Return(fireService, nil)

	incident, err := service.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, stored, incident)
	assert.Empty(t, incident.ResidentName)
}

func TestGetIncident_CacheErrorFallsBackToDB(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	incidentID := uuid.New()
	stored := &models.Incident{ID: incidentID, ResidentID: 5, ServiceID: 2}

	deps.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, errors.New("redis timeout"))
	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(stored, nil)
	deps.repo.EXPECT().FillIncidentCache(ctx, stored).Return(errors.New("redis timeout"))
	deps.residents.EXPECT().GetResident(ctx, int64(5)).Return(testResident, nil)
	deps.services.EXPECT().GetService(ctx, int64(2)).Return(&models.EmergencyService{ID: 2, Name: "Police Station"}, nil)

	incident, err := service.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, "Police Station", incident.ServiceName)
}

func TestGetIncident_StatusUpdateDuringCacheMiss(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	incidentID := uuid.New()
	stale := &models.Incident{ID: incidentID, ResidentID: 5, ServiceID: 2, Status: models.StatusReported}
	fresh := &models.Incident{ID: incidentID, ResidentID: 5, ServiceID: 2, Status: models.StatusDispatched}

	// Обновление статуса происходит между чтением из бд и заполнением кеша
	deps.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil)
	getByID := deps.repo.EXPECT().GetByID(ctx, incidentID).
		DoAndReturn(func(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
			_, err := service.UpdateIncidentStatus(ctx, id, "Dispatched")
			require.NoError(t, err)
			return stale, nil
		})
	deps.repo.EXPECT().UpdateStatus(ctx, incidentID, models.StatusDispatched, gomock.Any()).Return(fresh, nil)
	setFresh := deps.repo.EXPECT().SetIncidentCache(ctx, fresh).Return(nil)
	// Прочитанная до обновления запись кладется только условно и не затирает свежую
	deps.repo.EXPECT().FillIncidentCache(ctx, stale).Return(nil).After(setFresh).After(getByID)
	deps.repo.EXPECT().SetIncidentCache(ctx, stale).Times(0)
	deps.residents.EXPECT().GetResident(ctx, int64(5)).Return(testResident, nil)
	deps.services.EXPECT().GetService(ctx, int64(2)).Return(&models.EmergencyService{ID: 2}, nil)

	_, err := service.GetIncident(ctx, incidentID)

	require.NoError(t, err)
}

func TestGetIncident_NotFound(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil)
	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(nil, fmt.Errorf("incident %s: %w", incidentID, models.ErrNotFound))

	incident, err := service.GetIncident(ctx, incidentID)

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorContains(t, err, "could not get incident")
}

func TestListIncidents_EnrichesFromDirectories(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	stored := []*models.Incident{
		{ID: uuid.New(), ResidentID: 5, ServiceID: assignment.FireDepartmentID},
		{ID: uuid.New(), ResidentID: 8, ServiceID: assignment.PoliceStationID},
	}

	deps.repo.EXPECT().ListIncidents(ctx).Return(stored, nil)
	deps.residents.EXPECT().ListResidents(gomock.Any()).Return([]*models.Resident{testResident}, nil)
	deps.services.EXPECT().ListServices(gomock.Any()).Return([]*models.EmergencyService{
		fireService,
		{ID: assignment.PoliceStationID, Name: "Police Station", Type: "Police", ContactNumber: "102"},
	}, nil)

	incidents, err := service.ListIncidents(ctx)

	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, "Jane Doe", incidents[0].ResidentName)
	assert.Equal(t, "Fire Department", incidents[0].ServiceName)
	assert.Empty(t, incidents[1].ResidentName)
	assert.Equal(t, "102", incidents[1].ServiceContact)
}

func TestListIncidents_DirectoryFailure(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()

	deps.repo.EXPECT().ListIncidents(ctx).Return([]*models.Incident{{ID: uuid.New(), ResidentID: 5}}, nil)
	deps.residents.EXPECT().ListResidents(gomock.Any()).Return(nil, errors.New("db down"))
	deps.services.EXPECT().ListServices(gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := service.ListIncidents(ctx)

	require.Error(t, err)
	assert.ErrorContains(t, err, "list residents")
}

func TestListIncidentsByResident_Empty(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()

	deps.repo.EXPECT().ListByResident(ctx, int64(5)).Return(nil, nil)

	incidents, err := service.ListIncidentsByResident(ctx, 5)

	require.NoError(t, err)
	assert.NotNil(t, incidents)
	assert.Empty(t, incidents)
}

func TestLatestIncidentForResident(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	newest := &models.Incident{ID: uuid.New(), ResidentID: 5, ServiceID: 1, CreatedAt: time.Now()}
	older := &models.Incident{ID: uuid.New(), ResidentID: 5, ServiceID: 1, CreatedAt: time.Now().Add(-time.Hour)}

	deps.repo.EXPECT().ListByResident(ctx, int64(5)).Return([]*models.Incident{newest, older}, nil)
	deps.residents.EXPECT().ListResidents(gomock.Any()).Return([]*models.Resident{testResident}, nil)
	deps.services.EXPECT().ListServices(gomock.Any()).Return([]*models.EmergencyService{fireService}, nil)

	incident, err := service.LatestIncidentForResident(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, newest.ID, incident.ID)
}

func TestLatestIncidentForResident_None(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()

	deps.repo.EXPECT().ListByResident(ctx, int64(5)).Return([]*models.Incident{}, nil)

	_, err := service.LatestIncidentForResident(ctx, 5)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateIncidentStatus_Success(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	incidentID := uuid.New()

	updated := &models.Incident{ID: incidentID, Status: models.StatusEnRoute}

	deps.repo.EXPECT().
		UpdateStatus(ctx, incidentID, models.StatusEnRoute, []models.Status{models.StatusReported, models.StatusDispatched, models.StatusEnRoute}).
		Return(updated, nil).Times(1)
	// Кеш перезаписывается свежей записью, а не просто сбрасывается
	deps.repo.EXPECT().SetIncidentCache(ctx, updated).Return(nil).Times(1)
	deps.repo.EXPECT().InvalidateIncidentCache(gomock.Any(), gomock.Any()).Times(0)

	status, err := service.UpdateIncidentStatus(ctx, incidentID, "en route")

	require.NoError(t, err)
	assert.Equal(t, models.StatusEnRoute, status)
}

func TestUpdateIncidentStatus_LenientAllowsAnyPredecessor(t *testing.T) {
	service, deps := newTestIncidentService(t, &config.Config{LenientStatusTransitions: true})
	ctx := context.Background()
	incidentID := uuid.New()

	updated := &models.Incident{ID: incidentID, Status: models.StatusReported}

	deps.repo.EXPECT().UpdateStatus(ctx, incidentID, models.StatusReported, models.Statuses).Return(updated, nil)
	deps.repo.EXPECT().SetIncidentCache(ctx, updated).Return(errors.New("redis down"))
	deps.repo.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(errors.New("redis down"))

	status, err := service.UpdateIncidentStatus(ctx, incidentID, "Reported")

	require.NoError(t, err)
	assert.Equal(t, models.StatusReported, status)
}

func TestUpdateIncidentStatus_InvalidValue(t *testing.T) {
	service, _ := newTestIncidentService(t, nil)

	_, err := service.UpdateIncidentStatus(context.Background(), uuid.New(), "Closed")

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdateIncidentStatus_NotFound(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.repo.EXPECT().UpdateStatus(ctx, incidentID, models.StatusResolved, gomock.Any()).
		Return(nil, fmt.Errorf("incident %s: %w", incidentID, models.ErrNotFound))

	_, err := service.UpdateIncidentStatus(ctx, incidentID, "Resolved")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorContains(t, err, "not found for status update")
}

func TestUpdateIncidentStatus_BackwardTransitionRejected(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.repo.EXPECT().UpdateStatus(ctx, incidentID, models.StatusReported, []models.Status{models.StatusReported}).
		Return(nil, fmt.Errorf("incident %s is Resolved: %w", incidentID, models.ErrInvalidTransition))
	deps.repo.EXPECT().SetIncidentCache(gomock.Any(), gomock.Any()).Times(0)
	deps.repo.EXPECT().InvalidateIncidentCache(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateIncidentStatus(ctx, incidentID, "Reported")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestGetStats_UsesConfiguredWindow(t *testing.T) {
	service, deps := newTestIncidentService(t, nil)
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }
	expected := &models.IncidentStats{Total: 4, Active: 3, Recent: 2}

	deps.repo.EXPECT().GetStats(ctx, now.Add(-60*time.Minute)).Return(expected, nil).Times(1)

	stats, err := service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}
