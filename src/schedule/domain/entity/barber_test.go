package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBarber(t *testing.T) {
	t.Run("barbeiro válido", func(t *testing.T) {
		barber, err := NewBarber(uuid.New(), uuid.New(), "Degradê", decimal.NewFromFloat(0.4))
		require.NoError(t, err)
		assert.True(t, barber.IsActive)
	})

	t.Run("comissão nos limites", func(t *testing.T) {
		_, err := NewBarber(uuid.New(), uuid.New(), "", decimal.Zero)
		assert.NoError(t, err)

		_, err = NewBarber(uuid.New(), uuid.New(), "", decimal.NewFromInt(1))
		assert.NoError(t, err)
	})

	t.Run("comissão fora do intervalo rejeitada", func(t *testing.T) {
		_, err := NewBarber(uuid.New(), uuid.New(), "", decimal.NewFromFloat(-0.1))
		assert.ErrorIs(t, err, ErrInvalidCommissionRate)

		// 40 aqui seria percentual digitado como inteiro, não fração
		_, err = NewBarber(uuid.New(), uuid.New(), "", decimal.NewFromInt(40))
		assert.ErrorIs(t, err, ErrInvalidCommissionRate)
	})
}
