package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/application/response"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/port"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/infrastructure/cache"

	"github.com/google/uuid"
)

// SearchCatalogUseCase busca do PDV: serviços ativos e produtos em estoque
// cujo nome contém o termo. Termo com menos de 2 caracteres retorna vazio,
// como na tela de venda.
type SearchCatalogUseCase struct {
	serviceRepo  port.ServiceRepository
	productRepo  port.ProductRepository
	catalogCache *cache.CatalogCache
}

// NewSearchCatalogUseCase cria uma nova instância do caso de uso
func NewSearchCatalogUseCase(
	serviceRepo port.ServiceRepository,
	productRepo port.ProductRepository,
	catalogCache *cache.CatalogCache,
) *SearchCatalogUseCase {
	return &SearchCatalogUseCase{
		serviceRepo:  serviceRepo,
		productRepo:  productRepo,
		catalogCache: catalogCache,
	}
}

// Execute retorna serviços primeiro, produtos depois (ordem da tela do PDV)
func (uc *SearchCatalogUseCase) Execute(ctx context.Context, tenantID uuid.UUID, term string) (*response.SearchCatalogResponse, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < 2 {
		return &response.SearchCatalogResponse{Items: []response.CatalogItemResponse{}}, nil
	}

	services, products, ok := uc.catalogCache.Search(tenantID.String(), term)
	if !ok {
		// Cache frio: carregar do banco e popular
		var err error
		services, products, err = uc.warmCache(ctx, tenantID, term)
		if err != nil {
			return nil, err
		}
	}

	items := make([]response.CatalogItemResponse, 0, len(services)+len(products))
	for _, s := range services {
		items = append(items, response.CatalogItemResponse{
			ID:    s.ID,
			Kind:  "service",
			Name:  s.Name,
			Price: s.Price,
		})
	}
	for _, p := range products {
		stock := p.StockQuantity
		items = append(items, response.CatalogItemResponse{
			ID:            p.ID,
			Kind:          "product",
			Name:          p.Name,
			Price:         p.Price,
			StockQuantity: &stock,
		})
	}

	return &response.SearchCatalogResponse{
		Items:      items,
		TotalCount: len(items),
	}, nil
}

func (uc *SearchCatalogUseCase) warmCache(ctx context.Context, tenantID uuid.UUID, term string) ([]entity.Service, []entity.Product, error) {
	log.Printf("Cache de catálogo frio para tenant %s, carregando do banco", tenantID)

	serviceList, err := uc.serviceRepo.ListByTenant(ctx, tenantID, true)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading services: %w", err)
	}
	productList, err := uc.productRepo.ListByTenant(ctx, tenantID, true)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading products: %w", err)
	}

	services := make([]entity.Service, 0, len(serviceList))
	for _, s := range serviceList {
		services = append(services, *s)
	}
	products := make([]entity.Product, 0, len(productList))
	for _, p := range productList {
		products = append(products, *p)
	}

	uc.catalogCache.SetServices(tenantID.String(), services)
	uc.catalogCache.SetProducts(tenantID.String(), products)

	matchedServices, matchedProducts, _ := uc.catalogCache.Search(tenantID.String(), term)
	return matchedServices, matchedProducts, nil
}
