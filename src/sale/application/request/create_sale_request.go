package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemRequest representa uma linha do carrinho no fechamento da venda
type SaleItemRequest struct {
	ServiceID *uuid.UUID      `json:"service_id"`
	ProductID *uuid.UUID      `json:"product_id"`
	BarberID  *uuid.UUID      `json:"barber_id"`
	ItemName  string          `json:"item_name" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// SalePaymentRequest representa um lançamento de pagamento da venda
type SalePaymentRequest struct {
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// CreateSaleRequest fecha uma venda do PDV: itens + desconto + pagamentos.
// A conciliação (pago == total ao centavo) é revalidada no servidor.
type CreateSaleRequest struct {
	ClientID       *uuid.UUID           `json:"client_id"` // Opcional (NULL = consumidor final)
	Items          []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	Payments       []SalePaymentRequest `json:"payments" binding:"required,min=1,dive"`
	DiscountAmount decimal.Decimal      `json:"discount_amount,omitempty"` // Default: 0
	Notes          string               `json:"notes,omitempty"`
}
