package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/schedule/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/schedule/domain/port"

	"github.com/google/uuid"
)

// AppointmentPostgresRepository implementa AppointmentRepository usando PostgreSQL
type AppointmentPostgresRepository struct {
	db *sql.DB
}

// NewAppointmentPostgresRepository cria uma nova instância do repositório
func NewAppointmentPostgresRepository(db *sql.DB) port.AppointmentRepository {
	return &AppointmentPostgresRepository{db: db}
}

// Save insere ou atualiza um agendamento (upsert pelo id)
func (r *AppointmentPostgresRepository) Save(ctx context.Context, appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, tenant_id, client_id, barber_id, service_id, scheduled_at,
			duration_minutes, status, notes, reminder_sent, created_by,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			client_id = EXCLUDED.client_id,
			barber_id = EXCLUDED.barber_id,
			service_id = EXCLUDED.service_id,
			scheduled_at = EXCLUDED.scheduled_at,
			duration_minutes = EXCLUDED.duration_minutes,
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			reminder_sent = EXCLUDED.reminder_sent,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.TenantID,
		appointment.ClientID,
		appointment.BarberID,
		appointment.ServiceID,
		appointment.ScheduledAt,
		appointment.DurationMinutes,
		appointment.Status,
		appointment.Notes,
		appointment.ReminderSent,
		appointment.CreatedBy,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving appointment: %w", err)
	}

	return nil
}

// GetByID retorna um agendamento do tenant
func (r *AppointmentPostgresRepository) GetByID(ctx context.Context, tenantID, appointmentID uuid.UUID) (*entity.Appointment, error) {
	query := `
		SELECT id, tenant_id, client_id, barber_id, service_id, scheduled_at,
			duration_minutes, status, COALESCE(notes, ''), reminder_sent,
			created_by, created_at, updated_at
		FROM appointments
		WHERE tenant_id = $1 AND id = $2
	`

	appointment := &entity.Appointment{}
	err := r.db.QueryRowContext(ctx, query, tenantID, appointmentID).Scan(
		&appointment.ID,
		&appointment.TenantID,
		&appointment.ClientID,
		&appointment.BarberID,
		&appointment.ServiceID,
		&appointment.ScheduledAt,
		&appointment.DurationMinutes,
		&appointment.Status,
		&appointment.Notes,
		&appointment.ReminderSent,
		&appointment.CreatedBy,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying appointment: %w", err)
	}

	return appointment, nil
}

// ListByPeriod retorna os agendamentos do tenant no intervalo [from, to)
func (r *AppointmentPostgresRepository) ListByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*entity.Appointment, error) {
	query := `
		SELECT id, tenant_id, client_id, barber_id, service_id, scheduled_at,
			duration_minutes, status, COALESCE(notes, ''), reminder_sent,
			created_by, created_at, updated_at
		FROM appointments
		WHERE tenant_id = $1
			AND scheduled_at >= $2
			AND scheduled_at < $3
		ORDER BY scheduled_at
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying appointments: %w", err)
	}
	defer rows.Close()

	var appointments []*entity.Appointment

	for rows.Next() {
		appointment := &entity.Appointment{}
		err := rows.Scan(
			&appointment.ID,
			&appointment.TenantID,
			&appointment.ClientID,
			&appointment.BarberID,
			&appointment.ServiceID,
			&appointment.ScheduledAt,
			&appointment.DurationMinutes,
			&appointment.Status,
			&appointment.Notes,
			&appointment.ReminderSent,
			&appointment.CreatedBy,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning appointment: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointments: %w", err)
	}

	return appointments, nil
}

// BarberPostgresRepository implementa BarberRepository usando PostgreSQL
type BarberPostgresRepository struct {
	db *sql.DB
}

// NewBarberPostgresRepository cria uma nova instância do repositório
func NewBarberPostgresRepository(db *sql.DB) port.BarberRepository {
	return &BarberPostgresRepository{db: db}
}

// Save insere ou atualiza um barbeiro (upsert pelo id)
func (r *BarberPostgresRepository) Save(ctx context.Context, barber *entity.Barber) error {
	query := `
		INSERT INTO barbers (
			id, user_id, tenant_id, specialty, commission_rate,
			is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			specialty = EXCLUDED.specialty,
			commission_rate = EXCLUDED.commission_rate,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		barber.ID,
		barber.UserID,
		barber.TenantID,
		barber.Specialty,
		barber.CommissionRate,
		barber.IsActive,
		barber.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving barber: %w", err)
	}

	return nil
}

// GetByID retorna um barbeiro do tenant
func (r *BarberPostgresRepository) GetByID(ctx context.Context, tenantID, barberID uuid.UUID) (*entity.Barber, error) {
	query := `
		SELECT id, user_id, tenant_id, COALESCE(specialty, ''), commission_rate,
			is_active, created_at, updated_at
		FROM barbers
		WHERE tenant_id = $1 AND id = $2
	`

	barber := &entity.Barber{}
	err := r.db.QueryRowContext(ctx, query, tenantID, barberID).Scan(
		&barber.ID,
		&barber.UserID,
		&barber.TenantID,
		&barber.Specialty,
		&barber.CommissionRate,
		&barber.IsActive,
		&barber.CreatedAt,
		&barber.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying barber: %w", err)
	}

	return barber, nil
}

// ListByTenant retorna os barbeiros do tenant, opcionalmente apenas os ativos
func (r *BarberPostgresRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, onlyActive bool) ([]*entity.Barber, error) {
	query := `
		SELECT id, user_id, tenant_id, COALESCE(specialty, ''), commission_rate,
			is_active, created_at, updated_at
		FROM barbers
		WHERE tenant_id = $1
	`
	if onlyActive {
		query += " AND is_active = true"
	}
	query += " ORDER BY created_at"

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error querying barbers: %w", err)
	}
	defer rows.Close()

	var barbers []*entity.Barber

	for rows.Next() {
		barber := &entity.Barber{}
		err := rows.Scan(
			&barber.ID,
			&barber.UserID,
			&barber.TenantID,
			&barber.Specialty,
			&barber.CommissionRate,
			&barber.IsActive,
			&barber.CreatedAt,
			&barber.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning barber: %w", err)
		}
		barbers = append(barbers, barber)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating barbers: %w", err)
	}

	return barbers, nil
}
