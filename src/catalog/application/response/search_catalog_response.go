package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItemResponse é um resultado da busca do PDV: serviço ou produto
type CatalogItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	Kind          string          `json:"kind"` // service | product
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity *int            `json:"stock_quantity,omitempty"` // Apenas produtos
}

// SearchCatalogResponse resultado da busca do PDV
type SearchCatalogResponse struct {
	Items      []CatalogItemResponse `json:"items"`
	TotalCount int                   `json:"total_count"`
}
