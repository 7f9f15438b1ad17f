package entity

import "errors"

var (
	ErrTenantIDRequired      = errors.New("tenant_id is required")
	ErrClientIDRequired      = errors.New("client_id is required")
	ErrBarberIDRequired      = errors.New("barber_id is required")
	ErrServiceIDRequired     = errors.New("service_id is required")
	ErrInvalidScheduledAt    = errors.New("scheduled_at is required")
	ErrInvalidDuration       = errors.New("duration_minutes must be greater than 0")
	ErrInvalidStatus         = errors.New("invalid appointment status")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrBarberNotFound        = errors.New("barber not found")
	ErrInvalidCommissionRate = errors.New("commission_rate must be between 0 and 1")
)
