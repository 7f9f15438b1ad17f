package port

import (
	"context"
	"time"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/schedule/domain/entity"

	"github.com/google/uuid"
)

// AppointmentRepository define o contrato de persistência de agendamentos
type AppointmentRepository interface {
	Save(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, tenantID, appointmentID uuid.UUID) (*entity.Appointment, error)

	// ListByPeriod retorna os agendamentos do tenant no intervalo [from, to),
	// ordenados por horário
	ListByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*entity.Appointment, error)
}

// BarberRepository define o contrato de persistência de barbeiros
type BarberRepository interface {
	Save(ctx context.Context, barber *entity.Barber) error
	GetByID(ctx context.Context, tenantID, barberID uuid.UUID) (*entity.Barber, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, onlyActive bool) ([]*entity.Barber, error)
}
