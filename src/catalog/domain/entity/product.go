package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product representa um produto vendável com controle de estoque
type Product struct {
	ID            uuid.UUID        `json:"id"`
	TenantID      uuid.UUID        `json:"tenant_id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	SKU           string           `json:"sku,omitempty"`
	Category      string           `json:"category,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	StockQuantity int              `json:"stock_quantity"`
	LowStockAlert int              `json:"low_stock_alert"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewProduct cria um novo produto validado
func NewProduct(
	tenantID uuid.UUID,
	name, description, sku, category string,
	price decimal.Decimal,
	cost *decimal.Decimal,
	stockQuantity, lowStockAlert int,
) (*Product, error) {
	if tenantID == uuid.Nil {
		return nil, ErrTenantIDRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if cost != nil && cost.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if stockQuantity < 0 {
		return nil, ErrInvalidStockQuantity
	}

	now := time.Now()
	return &Product{
		ID:            uuid.New(),
		TenantID:      tenantID,
		Name:          name,
		Description:   description,
		SKU:           sku,
		Category:      category,
		Price:         price,
		Cost:          cost,
		StockQuantity: stockQuantity,
		LowStockAlert: lowStockAlert,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsLowStock indica se o produto está abaixo do alerta de estoque
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockAlert
}
