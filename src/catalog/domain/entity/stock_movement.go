package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockMovementType classifica uma movimentação de estoque
type StockMovementType string

const (
	StockMovementPurchase   StockMovementType = "purchase"
	StockMovementSale       StockMovementType = "sale"
	StockMovementAdjustment StockMovementType = "adjustment"
	StockMovementReturn     StockMovementType = "return"
)

// IsValid verifica se o tipo de movimentação é conhecido
func (t StockMovementType) IsValid() bool {
	switch t {
	case StockMovementPurchase, StockMovementSale, StockMovementAdjustment, StockMovementReturn:
		return true
	}
	return false
}

// StockMovement registra uma entrada ou saída de estoque (quantidade com sinal)
type StockMovement struct {
	ID            uuid.UUID         `json:"id"`
	TenantID      uuid.UUID         `json:"tenant_id"`
	ProductID     uuid.UUID         `json:"product_id"`
	MovementType  StockMovementType `json:"movement_type"`
	Quantity      int               `json:"quantity"` // Negativo = saída
	ReferenceID   *uuid.UUID        `json:"reference_id,omitempty"`
	ReferenceType string            `json:"reference_type,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	CreatedBy     *uuid.UUID        `json:"created_by,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// NewStockMovement cria uma movimentação validada
func NewStockMovement(
	tenantID, productID uuid.UUID,
	movementType StockMovementType,
	quantity int,
	notes string,
	createdBy *uuid.UUID,
) (*StockMovement, error) {
	if tenantID == uuid.Nil {
		return nil, ErrTenantIDRequired
	}
	if productID == uuid.Nil {
		return nil, ErrProductNotFound
	}
	if !movementType.IsValid() {
		return nil, ErrInvalidMovementType
	}
	if quantity == 0 {
		return nil, ErrZeroMovementQuantity
	}

	return &StockMovement{
		ID:           uuid.New(),
		TenantID:     tenantID,
		ProductID:    productID,
		MovementType: movementType,
		Quantity:     quantity,
		Notes:        notes,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now(),
	}, nil
}
