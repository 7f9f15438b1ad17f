package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("cliente válido", func(t *testing.T) {
		client, err := NewClient(uuid.New(), "João Silva", "11 99999-0000", "joao@example.com", nil, "")
		require.NoError(t, err)
		assert.False(t, client.IsVIP)
		assert.Equal(t, "João Silva", client.Name)
	})

	t.Run("apenas nome é obrigatório", func(t *testing.T) {
		_, err := NewClient(uuid.New(), "Maria", "", "", nil, "")
		assert.NoError(t, err)
	})

	t.Run("validações", func(t *testing.T) {
		_, err := NewClient(uuid.Nil, "João", "", "", nil, "")
		assert.ErrorIs(t, err, ErrTenantIDRequired)

		_, err = NewClient(uuid.New(), "", "", "", nil, "")
		assert.ErrorIs(t, err, ErrNameRequired)
	})
}
