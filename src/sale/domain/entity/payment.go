package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment representa um lançamento de pagamento aplicado a uma venda
type Payment struct {
	ID            uuid.UUID       `json:"id"`
	SaleID        uuid.UUID       `json:"sale_id"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
}

// NewPayment cria um novo pagamento validado
func NewPayment(saleID uuid.UUID, method PaymentMethod, amount decimal.Decimal, paymentDate time.Time) (*Payment, error) {
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPaymentAmount
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	return &Payment{
		ID:            uuid.New(),
		SaleID:        saleID,
		PaymentMethod: method,
		Amount:        amount,
		PaymentDate:   paymentDate,
	}, nil
}
