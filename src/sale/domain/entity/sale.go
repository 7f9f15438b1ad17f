package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale representa uma venda finalizada (Aggregate Root).
// Subtotal, desconto e total já chegam conciliados do PDV; o construtor
// revalida o portão de conciliação antes de aceitar o aggregate.
type Sale struct {
	ID             uuid.UUID       `json:"id"`
	TenantID       uuid.UUID       `json:"tenant_id"`
	ClientID       *uuid.UUID      `json:"client_id"` // NULL = consumidor final
	SaleDate       time.Time       `json:"sale_date"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
	Notes          string          `json:"notes,omitempty"`
	CreatedBy      *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	Items          []SaleItem      `json:"items"`
	Payments       []Payment       `json:"payments"`
}

// NewSale cria uma nova venda multi-item com múltiplos pagamentos.
// Regras:
//   - pelo menos um item
//   - desconto >= 0
//   - soma dos pagamentos igual ao total, com tolerância de 1 centavo
func NewSale(
	tenantID uuid.UUID,
	clientID *uuid.UUID,
	items []SaleItem,
	payments []Payment,
	discountAmount decimal.Decimal,
	createdBy *uuid.UUID,
	notes string,
) (*Sale, error) {
	if tenantID == uuid.Nil {
		return nil, ErrTenantIDRequired
	}
	if len(items) == 0 {
		return nil, ErrSaleMustHaveItems
	}
	if discountAmount.LessThan(decimal.Zero) {
		return nil, ErrInvalidDiscount
	}

	// Subtotal = soma dos totais por linha
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice)
	}
	subtotal = subtotal.Round(2)

	total := subtotal.Sub(discountAmount).Round(2)

	// Portão de conciliação: pago == total ao centavo
	totalPaid := decimal.Zero
	for _, payment := range payments {
		totalPaid = totalPaid.Add(payment.Amount)
	}
	totalPaid = totalPaid.Round(2)

	if total.Sub(totalPaid).Abs().GreaterThanOrEqual(centTolerance) {
		return nil, ErrPaymentMismatch
	}

	saleID := uuid.New()
	now := time.Now()

	// Propagar sale_id para items e payments
	for i := range items {
		items[i].SaleID = saleID
	}
	for i := range payments {
		payments[i].SaleID = saleID
	}

	return &Sale{
		ID:             saleID,
		TenantID:       tenantID,
		ClientID:       clientID,
		SaleDate:       now,
		Subtotal:       subtotal,
		DiscountAmount: discountAmount.Round(2),
		Total:          total,
		Notes:          notes,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		Items:          items,
		Payments:       payments,
	}, nil
}

// TotalItems retorna o número de linhas da venda
func (s *Sale) TotalItems() int {
	return len(s.Items)
}

// TotalPaid retorna a soma dos pagamentos
func (s *Sale) TotalPaid() decimal.Decimal {
	totalPaid := decimal.Zero
	for _, payment := range s.Payments {
		totalPaid = totalPaid.Add(payment.Amount)
	}
	return totalPaid.Round(2)
}
