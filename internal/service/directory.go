package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/emergency_response_system/internal/models"
)

//go:generate mockgen -source=directory.go -destination=mocks/directory_mock.go -package=mocks

// DirectoryService - справочники жителей и служб; запись доступна только администратору
type DirectoryService interface {
	ListResidents(ctx context.Context) ([]*models.Resident, error)
	GetResident(ctx context.Context, id int64) (*models.Resident, error)
	GetResidentContacts(ctx context.Context, residentID int64) ([]models.EmergencyContact, error)
	CreateResident(ctx context.Context, resident *models.Resident) error
	AddResidentContact(ctx context.Context, residentID int64, contact *models.EmergencyContact) error
	ListServices(ctx context.Context) ([]*models.EmergencyService, error)
	GetService(ctx context.Context, id int64) (*models.EmergencyService, error)
}

type directoryService struct {
	residents ResidentDirectory
	services  ServiceDirectory
	logger    *logrus.Logger
}

func NewDirectoryService(residents ResidentDirectory, services ServiceDirectory, logger *logrus.Logger) DirectoryService {
	return &directoryService{
		residents: residents,
		services:  services,
		logger:    logger,
	}
}

func (s *directoryService) ListResidents(ctx context.Context) ([]*models.Resident, error) {
	residents, err := s.residents.ListResidents(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListResidents").Error("Failed to list residents")
		return nil, fmt.Errorf("service: could not list residents: %w", err)
	}
	return residents, nil
}

func (s *directoryService) GetResident(ctx context.Context, id int64) (*models.Resident, error) {
	resident, err := s.residents.GetResident(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get resident: %w", err)
	}
	return resident, nil
}

// GetResidentContacts возвращает контакты в порядке приоритета; для неизвестного жителя - NotFound
func (s *directoryService) GetResidentContacts(ctx context.Context, residentID int64) ([]models.EmergencyContact, error) {
	if _, err := s.residents.GetResident(ctx, residentID); err != nil {
		return nil, fmt.Errorf("service: could not get resident: %w", err)
	}
	contacts, err := s.residents.GetContacts(ctx, residentID)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"method":      "GetResidentContacts",
			"resident_id": residentID,
		}).Error("Failed to get resident contacts")
		return nil, fmt.Errorf("service: could not get resident contacts: %w", err)
	}
	if contacts == nil {
		contacts = make([]models.EmergencyContact, 0)
	}
	return contacts, nil
}

// CreateResident регистрирует жителя, после чего он может сообщать о ЧС
func (s *directoryService) CreateResident(ctx context.Context, resident *models.Resident) error {
	resident.Name = strings.TrimSpace(resident.Name)
	if resident.Name == "" {
		return fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if err := s.residents.CreateResident(ctx, resident); err != nil {
		s.logger.WithError(err).WithField("method", "CreateResident").Error("Failed to create resident")
		return fmt.Errorf("service: could not create resident: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"method":      "CreateResident",
		"resident_id": resident.ID,
	}).Info("Resident created successfully")
	return nil
}

// AddResidentContact добавляет жителю экстренный контакт; приоритет ниже 1 приводится к 1
func (s *directoryService) AddResidentContact(ctx context.Context, residentID int64, contact *models.EmergencyContact) error {
	log := s.logger.WithFields(logrus.Fields{
		"method":      "AddResidentContact",
		"resident_id": residentID,
	})

	contact.Name = strings.TrimSpace(contact.Name)
	if contact.Name == "" {
		return fmt.Errorf("%w: contact name is required", models.ErrValidation)
	}
	if contact.PriorityLevel < 1 {
		contact.PriorityLevel = 1
	}

	if err := s.residents.AddContact(ctx, residentID, contact); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Error("Failed to add emergency contact")
		}
		return fmt.Errorf("service: could not add emergency contact: %w", err)
	}
	log.WithField("contact_id", contact.ContactID).Info("Emergency contact added successfully")
	return nil
}

func (s *directoryService) ListServices(ctx context.Context) ([]*models.EmergencyService, error) {
	services, err := s.services.ListServices(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListServices").Error("Failed to list services")
		return nil, fmt.Errorf("service: could not list services: %w", err)
	}
	return services, nil
}

func (s *directoryService) GetService(ctx context.Context, id int64) (*models.EmergencyService, error) {
	svc, err := s.services.GetService(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get emergency service: %w", err)
	}
	return svc, nil
}
