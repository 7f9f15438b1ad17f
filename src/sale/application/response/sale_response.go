package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemResponse representa um item na resposta de venda
type SaleItemResponse struct {
	ItemID     uuid.UUID       `json:"item_id"`
	ServiceID  *uuid.UUID      `json:"service_id,omitempty"`
	ProductID  *uuid.UUID      `json:"product_id,omitempty"`
	BarberID   *uuid.UUID      `json:"barber_id,omitempty"`
	ItemName   string          `json:"item_name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// SalePaymentResponse representa um pagamento na resposta de venda
type SalePaymentResponse struct {
	PaymentID          uuid.UUID       `json:"payment_id"`
	PaymentMethod      string          `json:"payment_method"`
	PaymentMethodLabel string          `json:"payment_method_label"` // Nome exibível (Dinheiro, PIX, ...)
	Amount             decimal.Decimal `json:"amount"`
}

// SaleResponse resposta completa de uma venda, pronta para impressão de recibo
type SaleResponse struct {
	SaleID         uuid.UUID             `json:"sale_id"`
	ClientID       *uuid.UUID            `json:"client_id,omitempty"`
	SaleDate       time.Time             `json:"sale_date"`
	Items          []SaleItemResponse    `json:"items"`
	Payments       []SalePaymentResponse `json:"payments"`
	TotalItems     int                   `json:"total_items"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	DiscountAmount decimal.Decimal       `json:"discount_amount"`
	Total          decimal.Decimal       `json:"total"`
	TotalPaid      decimal.Decimal       `json:"total_paid"`
	Notes          string                `json:"notes,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

// ListSalesResponse lista mensal de vendas com os agregados do cabeçalho
type ListSalesResponse struct {
	Items      []SaleResponse  `json:"items"`
	TotalCount int             `json:"total_count"`
	MonthTotal decimal.Decimal `json:"month_total"` // Soma dos totais do período
}
