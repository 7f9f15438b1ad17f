package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service representa um serviço do catálogo (corte, barba, etc.)
type Service struct {
	ID              uuid.UUID       `json:"id"`
	TenantID        uuid.UUID       `json:"tenant_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewService cria um novo serviço validado
func NewService(tenantID uuid.UUID, name, description string, price decimal.Decimal, durationMinutes int) (*Service, error) {
	if tenantID == uuid.Nil {
		return nil, ErrTenantIDRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	now := time.Now()
	return &Service{
		ID:              uuid.New(),
		TenantID:        tenantID,
		Name:            name,
		Description:     description,
		Price:           price,
		DurationMinutes: durationMinutes,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
