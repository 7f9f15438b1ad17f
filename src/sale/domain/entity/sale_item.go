package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem representa um item dentro de uma venda (Entity dentro do Aggregate).
// Invariante: exatamente um entre ServiceID e ProductID preenchido.
type SaleItem struct {
	ID         uuid.UUID       `json:"id"`
	SaleID     uuid.UUID       `json:"sale_id"`
	ServiceID  *uuid.UUID      `json:"service_id,omitempty"`
	ProductID  *uuid.UUID      `json:"product_id,omitempty"`
	BarberID   *uuid.UUID      `json:"barber_id,omitempty"`
	ItemName   string          `json:"item_name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// NewSaleItem cria um novo item de venda com validações mínimas e subtotal calculado
func NewSaleItem(
	saleID uuid.UUID,
	serviceID *uuid.UUID,
	productID *uuid.UUID,
	barberID *uuid.UUID,
	itemName string,
	quantity int,
	unitPrice decimal.Decimal,
) (*SaleItem, error) {
	if itemName == "" {
		return nil, ErrItemNameRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if serviceID == nil && productID == nil {
		return nil, ErrItemReferenceRequired
	}
	if serviceID != nil && productID != nil {
		return nil, ErrItemReferenceConflict
	}

	totalPrice := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	return &SaleItem{
		ID:         uuid.New(),
		SaleID:     saleID,
		ServiceID:  serviceID,
		ProductID:  productID,
		BarberID:   barberID,
		ItemName:   itemName,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: totalPrice,
	}, nil
}

// Kind retorna o tipo do item derivado da referência preenchida
func (i *SaleItem) Kind() ItemKind {
	if i.ProductID != nil {
		return ItemKindProduct
	}
	return ItemKindService
}
