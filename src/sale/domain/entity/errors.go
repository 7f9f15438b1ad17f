package entity

import "errors"

var (
	ErrTenantIDRequired  = errors.New("tenant_id is required")
	ErrItemNameRequired  = errors.New("item_name is required")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrInvalidPrice      = errors.New("unit_price must be greater than or equal to 0")
	ErrInvalidDiscount   = errors.New("discount_amount must be greater than or equal to 0")
	ErrSaleMustHaveItems = errors.New("sale must have at least one item")
	ErrSaleNotFound      = errors.New("sale not found")

	// Referência de catálogo: exatamente um entre service_id e product_id
	ErrItemReferenceRequired = errors.New("item must reference a service or a product")
	ErrItemReferenceConflict = errors.New("item cannot reference a service and a product at the same time")

	// PDV
	ErrInvalidPaymentMethod = errors.New("invalid payment_method")
	ErrInvalidPaymentAmount = errors.New("payment amount must be a number greater than 0")
	ErrPaymentMismatch      = errors.New("total paid must match the sale total")
	ErrPDVSubmitted         = errors.New("pdv session already submitted")
)
