package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus representa o estado de um agendamento
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
	AppointmentNoShow     AppointmentStatus = "no_show"
)

// IsValid verifica se o status é conhecido
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress,
		AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// allowedTransitions define a máquina de estados do agendamento.
// completed, cancelled e no_show são terminais.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentScheduled:  {AppointmentConfirmed, AppointmentInProgress, AppointmentCancelled, AppointmentNoShow},
	AppointmentConfirmed:  {AppointmentInProgress, AppointmentCancelled, AppointmentNoShow},
	AppointmentInProgress: {AppointmentCompleted, AppointmentCancelled},
}

// CanTransitionTo verifica se a transição de status é permitida
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Appointment representa um agendamento na agenda da barbearia
type Appointment struct {
	ID              uuid.UUID         `json:"id"`
	TenantID        uuid.UUID         `json:"tenant_id"`
	ClientID        uuid.UUID         `json:"client_id"`
	BarberID        uuid.UUID         `json:"barber_id"`
	ServiceID       uuid.UUID         `json:"service_id"`
	ScheduledAt     time.Time         `json:"scheduled_at"`
	DurationMinutes int               `json:"duration_minutes"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	ReminderSent    bool              `json:"reminder_sent"`
	CreatedBy       *uuid.UUID        `json:"created_by,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// NewAppointment cria um agendamento validado com status inicial scheduled
func NewAppointment(
	tenantID, clientID, barberID, serviceID uuid.UUID,
	scheduledAt time.Time,
	durationMinutes int,
	notes string,
	createdBy *uuid.UUID,
) (*Appointment, error) {
	if tenantID == uuid.Nil {
		return nil, ErrTenantIDRequired
	}
	if clientID == uuid.Nil {
		return nil, ErrClientIDRequired
	}
	if barberID == uuid.Nil {
		return nil, ErrBarberIDRequired
	}
	if serviceID == uuid.Nil {
		return nil, ErrServiceIDRequired
	}
	if scheduledAt.IsZero() {
		return nil, ErrInvalidScheduledAt
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	now := time.Now()
	return &Appointment{
		ID:              uuid.New(),
		TenantID:        tenantID,
		ClientID:        clientID,
		BarberID:        barberID,
		ServiceID:       serviceID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: durationMinutes,
		Status:          AppointmentScheduled,
		Notes:           notes,
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// TransitionTo muda o status respeitando a máquina de estados
func (a *Appointment) TransitionTo(target AppointmentStatus) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if !a.Status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	a.Status = target
	a.UpdatedAt = time.Now()
	return nil
}

// EndsAt retorna o horário previsto de término
func (a *Appointment) EndsAt() time.Time {
	return a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
