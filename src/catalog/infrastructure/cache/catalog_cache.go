package cache

import (
	"log"
	"strings"
	"sync"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/entity"
)

// CatalogCache cache em memória do catálogo ativo do tenant, usado pela busca
// do PDV. Recarregado do banco na inicialização e invalidado a cada escrita
// no catálogo.
type CatalogCache struct {
	services map[string][]entity.Service // tenant_id -> serviços ativos
	products map[string][]entity.Product // tenant_id -> produtos ativos com estoque
	mu       sync.RWMutex
}

// NewCatalogCache cria um novo cache de catálogo vazio
func NewCatalogCache() *CatalogCache {
	return &CatalogCache{
		services: make(map[string][]entity.Service),
		products: make(map[string][]entity.Product),
	}
}

// SetServices substitui os serviços ativos de um tenant
func (c *CatalogCache) SetServices(tenantID string, services []entity.Service) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services[tenantID] = services
}

// SetProducts substitui os produtos ativos de um tenant
func (c *CatalogCache) SetProducts(tenantID string, products []entity.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[tenantID] = products
}

// Invalidate descarta o cache de um tenant após escrita no catálogo
func (c *CatalogCache) Invalidate(tenantID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.services, tenantID)
	delete(c.products, tenantID)
	log.Printf("Cache de catálogo invalidado para tenant %s", tenantID)
}

// Search retorna serviços ativos e produtos em estoque cujo nome contém o
// termo (case-insensitive). Retorna ok=false quando o tenant não está no
// cache e o chamador deve ir ao banco.
func (c *CatalogCache) Search(tenantID, term string) ([]entity.Service, []entity.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	services, okS := c.services[tenantID]
	products, okP := c.products[tenantID]
	if !okS || !okP {
		return nil, nil, false
	}

	lowered := strings.ToLower(term)

	var matchedServices []entity.Service
	for _, s := range services {
		if strings.Contains(strings.ToLower(s.Name), lowered) {
			matchedServices = append(matchedServices, s)
		}
	}

	var matchedProducts []entity.Product
	for _, p := range products {
		if p.StockQuantity > 0 && strings.Contains(strings.ToLower(p.Name), lowered) {
			matchedProducts = append(matchedProducts, p)
		}
	}

	return matchedServices, matchedProducts, true
}
