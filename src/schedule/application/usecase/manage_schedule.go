package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/schedule/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/schedule/domain/port"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/shared/infrastructure/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAppointmentRequest cria um agendamento na agenda
type CreateAppointmentRequest struct {
	ClientID        uuid.UUID `json:"client_id" binding:"required"`
	BarberID        uuid.UUID `json:"barber_id" binding:"required"`
	ServiceID       uuid.UUID `json:"service_id" binding:"required"`
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gt=0"`
	Notes           string    `json:"notes,omitempty"`
}

// SaveBarberRequest cria ou atualiza um barbeiro
type SaveBarberRequest struct {
	UserID         uuid.UUID       `json:"user_id" binding:"required"`
	Specialty      string          `json:"specialty,omitempty"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

// ManageScheduleUseCase concentra as operações da agenda
type ManageScheduleUseCase struct {
	appointmentRepo port.AppointmentRepository
	barberRepo      port.BarberRepository
}

// NewManageScheduleUseCase cria uma nova instância do caso de uso
func NewManageScheduleUseCase(appointmentRepo port.AppointmentRepository, barberRepo port.BarberRepository) *ManageScheduleUseCase {
	return &ManageScheduleUseCase{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
	}
}

// CreateAppointment cria um agendamento com status scheduled
func (uc *ManageScheduleUseCase) CreateAppointment(ctx context.Context, tenantID, createdBy uuid.UUID, req *CreateAppointmentRequest) (*entity.Appointment, error) {
	var createdByRef *uuid.UUID
	if createdBy != uuid.Nil {
		createdByRef = &createdBy
	}

	appointment, err := entity.NewAppointment(
		tenantID,
		req.ClientID,
		req.BarberID,
		req.ServiceID,
		req.ScheduledAt,
		req.DurationMinutes,
		req.Notes,
		createdByRef,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.appointmentRepo.Save(ctx, appointment); err != nil {
		return nil, fmt.Errorf("error creating appointment: %w", err)
	}

	metrics.AppointmentsCreated.Inc()
	log.Printf("Agendamento criado: id=%s, barbeiro=%s, horário=%s", appointment.ID, appointment.BarberID, appointment.ScheduledAt.Format(time.RFC3339))

	return appointment, nil
}

// UpdateStatus transiciona o status respeitando a máquina de estados
func (uc *ManageScheduleUseCase) UpdateStatus(ctx context.Context, tenantID, appointmentID uuid.UUID, target entity.AppointmentStatus) (*entity.Appointment, error) {
	appointment, err := uc.appointmentRepo.GetByID(ctx, tenantID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := appointment.TransitionTo(target); err != nil {
		return nil, err
	}

	if err := uc.appointmentRepo.Save(ctx, appointment); err != nil {
		return nil, fmt.Errorf("error updating appointment: %w", err)
	}

	return appointment, nil
}

// ListDay retorna os agendamentos de um dia (formato YYYY-MM-DD)
func (uc *ManageScheduleUseCase) ListDay(ctx context.Context, tenantID uuid.UUID, date string) ([]*entity.Appointment, error) {
	dayStart, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	return uc.appointmentRepo.ListByPeriod(ctx, tenantID, dayStart, dayEnd)
}

// SaveBarber cria um barbeiro
func (uc *ManageScheduleUseCase) SaveBarber(ctx context.Context, tenantID uuid.UUID, req *SaveBarberRequest) (*entity.Barber, error) {
	barber, err := entity.NewBarber(tenantID, req.UserID, req.Specialty, req.CommissionRate)
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		barber.IsActive = *req.IsActive
	}

	if err := uc.barberRepo.Save(ctx, barber); err != nil {
		return nil, fmt.Errorf("error saving barber: %w", err)
	}

	return barber, nil
}

// ListBarbers lista os barbeiros do tenant
func (uc *ManageScheduleUseCase) ListBarbers(ctx context.Context, tenantID uuid.UUID, onlyActive bool) ([]*entity.Barber, error) {
	return uc.barberRepo.ListByTenant(ctx, tenantID, onlyActive)
}
