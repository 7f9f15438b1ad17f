package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaveServiceRequest cria ou atualiza um serviço do catálogo
type SaveServiceRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	DurationMinutes int             `json:"duration_minutes" binding:"required,gt=0"`
	IsActive        *bool           `json:"is_active,omitempty"` // Default: true
}

// SaveProductRequest cria ou atualiza um produto do catálogo
type SaveProductRequest struct {
	Name          string           `json:"name" binding:"required"`
	Description   string           `json:"description,omitempty"`
	SKU           string           `json:"sku,omitempty"`
	Category      string           `json:"category,omitempty"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	StockQuantity int              `json:"stock_quantity"`
	LowStockAlert int              `json:"low_stock_alert"`
	IsActive      *bool            `json:"is_active,omitempty"` // Default: true
}

// AdjustStockRequest lança uma movimentação manual de estoque
type AdjustStockRequest struct {
	ProductID    uuid.UUID `json:"product_id" binding:"required"`
	MovementType string    `json:"movement_type" binding:"required"` // purchase | adjustment | return
	Quantity     int       `json:"quantity" binding:"required"`      // Negativo = saída
	Notes        string    `json:"notes,omitempty"`
}
