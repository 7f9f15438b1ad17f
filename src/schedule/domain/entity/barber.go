package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Barber representa um barbeiro da equipe
type Barber struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	TenantID       uuid.UUID       `json:"tenant_id"`
	Specialty      string          `json:"specialty,omitempty"`
	CommissionRate decimal.Decimal `json:"commission_rate"` // Fração em [0, 1]
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewBarber cria um barbeiro validado
func NewBarber(tenantID, userID uuid.UUID, specialty string, commissionRate decimal.Decimal) (*Barber, error) {
	if tenantID == uuid.Nil {
		return nil, ErrTenantIDRequired
	}
	if userID == uuid.Nil {
		return nil, ErrBarberIDRequired
	}
	if commissionRate.LessThan(decimal.Zero) || commissionRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidCommissionRate
	}

	now := time.Now()
	return &Barber{
		ID:             uuid.New(),
		UserID:         userID,
		TenantID:       tenantID,
		Specialty:      specialty,
		CommissionRate: commissionRate,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
