package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	tenantID := uuid.New()

	t.Run("serviço válido", func(t *testing.T) {
		service, err := NewService(tenantID, "Corte Masculino", "Corte com máquina e tesoura", decimal.NewFromInt(45), 30)
		require.NoError(t, err)
		assert.True(t, service.IsActive)
		assert.Equal(t, 30, service.DurationMinutes)
	})

	t.Run("preço zero permitido", func(t *testing.T) {
		// Serviço cortesia (brinde de aniversário)
		_, err := NewService(tenantID, "Cortesia", "", decimal.Zero, 15)
		assert.NoError(t, err)
	})

	t.Run("validações", func(t *testing.T) {
		_, err := NewService(uuid.Nil, "Corte", "", decimal.NewFromInt(45), 30)
		assert.ErrorIs(t, err, ErrTenantIDRequired)

		_, err = NewService(tenantID, "", "", decimal.NewFromInt(45), 30)
		assert.ErrorIs(t, err, ErrNameRequired)

		_, err = NewService(tenantID, "Corte", "", decimal.NewFromInt(-1), 30)
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = NewService(tenantID, "Corte", "", decimal.NewFromInt(45), 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestNewProduct(t *testing.T) {
	tenantID := uuid.New()

	t.Run("produto válido", func(t *testing.T) {
		cost := decimal.NewFromInt(18)
		product, err := NewProduct(tenantID, "Pomada Modeladora", "", "POM-001", "Cabelo", decimal.NewFromInt(38), &cost, 10, 3)
		require.NoError(t, err)
		assert.True(t, product.IsActive)
		assert.False(t, product.IsLowStock())
	})

	t.Run("alerta de estoque baixo", func(t *testing.T) {
		product, err := NewProduct(tenantID, "Shampoo", "", "", "", decimal.NewFromInt(25), nil, 2, 3)
		require.NoError(t, err)
		assert.True(t, product.IsLowStock())
	})

	t.Run("validações", func(t *testing.T) {
		_, err := NewProduct(tenantID, "", "", "", "", decimal.NewFromInt(38), nil, 10, 3)
		assert.ErrorIs(t, err, ErrNameRequired)

		negativeCost := decimal.NewFromInt(-1)
		_, err = NewProduct(tenantID, "Pomada", "", "", "", decimal.NewFromInt(38), &negativeCost, 10, 3)
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = NewProduct(tenantID, "Pomada", "", "", "", decimal.NewFromInt(38), nil, -1, 3)
		assert.ErrorIs(t, err, ErrInvalidStockQuantity)
	})
}

func TestNewStockMovement(t *testing.T) {
	tenantID := uuid.New()
	productID := uuid.New()

	t.Run("saída de venda com quantidade negativa", func(t *testing.T) {
		movement, err := NewStockMovement(tenantID, productID, StockMovementSale, -2, "", nil)
		require.NoError(t, err)
		assert.Equal(t, -2, movement.Quantity)
	})

	t.Run("validações", func(t *testing.T) {
		_, err := NewStockMovement(tenantID, productID, StockMovementType("transfer"), 1, "", nil)
		assert.ErrorIs(t, err, ErrInvalidMovementType)

		_, err = NewStockMovement(tenantID, productID, StockMovementAdjustment, 0, "", nil)
		assert.ErrorIs(t, err, ErrZeroMovementQuantity)

		_, err = NewStockMovement(tenantID, uuid.Nil, StockMovementPurchase, 5, "", nil)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
