package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

// EmergencyServiceRepository - справочник служб, заполняется миграцией
type EmergencyServiceRepository struct {
	db DB
}

func NewEmergencyServiceRepository(db DB) service.ServiceDirectory {
	return &EmergencyServiceRepository{db: db}
}

func (r *EmergencyServiceRepository) ListServices(ctx context.Context) ([]*models.EmergencyService, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, service_type, contact_number FROM emergency_services ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency services: %w", err)
	}
	defer rows.Close()

	services := make([]*models.EmergencyService, 0)
	for rows.Next() {
		svc := &models.EmergencyService{}
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Type, &svc.ContactNumber); err != nil {
			return nil, fmt.Errorf("failed to scan emergency service row: %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error emergency service list iteration: %w", err)
	}
	return services, nil
}

func (r *EmergencyServiceRepository) GetService(ctx context.Context, id int64) (*models.EmergencyService, error) {
	svc := &models.EmergencyService{}
	err := r.db.QueryRow(ctx, `SELECT id, name, service_type, contact_number FROM emergency_services WHERE id = $1;`, id).
		Scan(&svc.ID, &svc.Name, &svc.Type, &svc.ContactNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("emergency service with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get emergency service by id: %w", err)
	}
	return svc, nil
}
