package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

type ResidentRepository struct {
	db DB
}

func NewResidentRepository(db DB) service.ResidentDirectory {
	return &ResidentRepository{db: db}
}

func (r *ResidentRepository) ListResidents(ctx context.Context) ([]*models.Resident, error) {
	query := `
		SELECT id, name, address, phone_number, email, house_no
		FROM residents
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	defer rows.Close()

	residents := make([]*models.Resident, 0)
	for rows.Next() {
		resident := &models.Resident{}
		if err := rows.Scan(
			&resident.ID,
			&resident.Name,
			&resident.Address,
			&resident.PhoneNumber,
			&resident.Email,
			&resident.HouseNo,
		); err != nil {
			return nil, fmt.Errorf("failed to scan resident row: %w", err)
		}
		residents = append(residents, resident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error resident list iteration: %w", err)
	}
	return residents, nil
}

// GetResident возвращает жителя по id
func (r *ResidentRepository) GetResident(ctx context.Context, id int64) (*models.Resident, error) {
	query := `
		SELECT id, name, address, phone_number, email, house_no
		FROM residents
		WHERE id = $1;
	`
	resident := &models.Resident{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resident.ID,
		&resident.Name,
		&resident.Address,
		&resident.PhoneNumber,
		&resident.Email,
		&resident.HouseNo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("resident with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get resident by id: %w", err)
	}
	return resident, nil
}

// GetContacts возвращает экстренные контакты жителя по возрастанию priority_level.
// При равном приоритете порядок определяется id связи, то есть порядком регистрации.
func (r *ResidentRepository) GetContacts(ctx context.Context, residentID int64) ([]models.EmergencyContact, error) {
	query := `
		SELECT ec.id, ec.name, ec.contact_type, ec.phone_number, rc.relationship_type, rc.priority_level
		FROM resident_contacts rc
		JOIN emergency_contacts ec ON ec.id = rc.contact_id
		WHERE rc.resident_id = $1
		ORDER BY rc.priority_level ASC, rc.id ASC;
	`
	rows, err := r.db.Query(ctx, query, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resident contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]models.EmergencyContact, 0)
	for rows.Next() {
		var c models.EmergencyContact
		if err := rows.Scan(
			&c.ContactID,
			&c.Name,
			&c.ContactType,
			&c.PhoneNumber,
			&c.RelationshipType,
			&c.PriorityLevel,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error contact list iteration: %w", err)
	}
	return contacts, nil
}

// CreateResident сохраняет жителя; id назначает бд
func (r *ResidentRepository) CreateResident(ctx context.Context, resident *models.Resident) error {
	query := `
		INSERT INTO residents (name, address, phone_number, email, house_no)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		resident.Name,
		resident.Address,
		resident.PhoneNumber,
		resident.Email,
		resident.HouseNo,
	).Scan(&resident.ID)
	if err != nil {
		return fmt.Errorf("failed to create resident: %w", err)
	}
	return nil
}

// AddContact создает контакт и связывает его с жителем одним запросом.
// Нарушение внешнего ключа означает, что жителя нет.
func (r *ResidentRepository) AddContact(ctx context.Context, residentID int64, contact *models.EmergencyContact) error {
	query := `
		WITH contact AS (
			INSERT INTO emergency_contacts (name, contact_type, phone_number)
			VALUES ($2, $3, $4)
			RETURNING id
		)
		INSERT INTO resident_contacts (resident_id, contact_id, relationship_type, priority_level)
		SELECT $1, id, $5, $6 FROM contact
		RETURNING contact_id;
	`
	err := r.db.QueryRow(ctx, query,
		residentID,
		contact.Name,
		contact.ContactType,
		contact.PhoneNumber,
		contact.RelationshipType,
		contact.PriorityLevel,
	).Scan(&contact.ContactID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("resident with id %d: %w", residentID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to add emergency contact: %w", err)
	}
	return nil
}
