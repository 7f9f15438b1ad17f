package cache

import (
	"testing"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCache(t *testing.T) (*CatalogCache, string) {
	t.Helper()
	tenantID := uuid.New()

	corte, err := entity.NewService(tenantID, "Corte Masculino", "", decimal.NewFromInt(45), 30)
	require.NoError(t, err)
	barba, err := entity.NewService(tenantID, "Barba Completa", "", decimal.NewFromInt(30), 20)
	require.NoError(t, err)

	pomada, err := entity.NewProduct(tenantID, "Pomada Modeladora", "", "", "", decimal.NewFromInt(38), nil, 10, 3)
	require.NoError(t, err)
	shampoo, err := entity.NewProduct(tenantID, "Shampoo Anticaspa", "", "", "", decimal.NewFromInt(25), nil, 0, 2)
	require.NoError(t, err)

	c := NewCatalogCache()
	c.SetServices(tenantID.String(), []entity.Service{*corte, *barba})
	c.SetProducts(tenantID.String(), []entity.Product{*pomada, *shampoo})
	return c, tenantID.String()
}

func TestCatalogCacheSearch(t *testing.T) {
	c, tenantID := seedCache(t)

	t.Run("busca case-insensitive por substring", func(t *testing.T) {
		services, products, ok := c.Search(tenantID, "POMADA")
		require.True(t, ok)
		assert.Empty(t, services)
		require.Len(t, products, 1)
		assert.Equal(t, "Pomada Modeladora", products[0].Name)
	})

	t.Run("produto sem estoque não aparece", func(t *testing.T) {
		_, products, ok := c.Search(tenantID, "shampoo")
		require.True(t, ok)
		assert.Empty(t, products)
	})

	t.Run("termo comum retorna serviços e produtos", func(t *testing.T) {
		services, products, ok := c.Search(tenantID, "a")
		require.True(t, ok)
		assert.Len(t, services, 2)
		assert.Len(t, products, 1)
	})

	t.Run("tenant fora do cache indica miss", func(t *testing.T) {
		_, _, ok := c.Search(uuid.NewString(), "corte")
		assert.False(t, ok)
	})
}

func TestCatalogCacheInvalidate(t *testing.T) {
	c, tenantID := seedCache(t)

	_, _, ok := c.Search(tenantID, "corte")
	require.True(t, ok)

	c.Invalidate(tenantID)

	_, _, ok = c.Search(tenantID, "corte")
	assert.False(t, ok)
}
