package entity

import "errors"

var (
	ErrTenantIDRequired       = errors.New("tenant_id is required")
	ErrNameRequired           = errors.New("name is required")
	ErrInvalidPrice           = errors.New("price must be greater than or equal to 0")
	ErrInvalidDuration        = errors.New("duration_minutes must be greater than 0")
	ErrInvalidStockQuantity   = errors.New("stock_quantity must be greater than or equal to 0")
	ErrInvalidMovementType    = errors.New("invalid movement_type")
	ErrZeroMovementQuantity   = errors.New("movement quantity cannot be 0")
	ErrServiceNotFound        = errors.New("service not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrInsufficientStock      = errors.New("insufficient stock")
)
