package usecase

import (
	"context"
	"fmt"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/application/request"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/port"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/infrastructure/cache"

	"github.com/google/uuid"
)

// SaveProductUseCase cria ou atualiza um produto do catálogo
type SaveProductUseCase struct {
	productRepo  port.ProductRepository
	catalogCache *cache.CatalogCache
}

// NewSaveProductUseCase cria uma nova instância do caso de uso
func NewSaveProductUseCase(productRepo port.ProductRepository, catalogCache *cache.CatalogCache) *SaveProductUseCase {
	return &SaveProductUseCase{
		productRepo:  productRepo,
		catalogCache: catalogCache,
	}
}

// Create cria um novo produto
func (uc *SaveProductUseCase) Create(ctx context.Context, tenantID uuid.UUID, req *request.SaveProductRequest) (*entity.Product, error) {
	product, err := entity.NewProduct(
		tenantID,
		req.Name,
		req.Description,
		req.SKU,
		req.Category,
		req.Price,
		req.Cost,
		req.StockQuantity,
		req.LowStockAlert,
	)
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	uc.catalogCache.Invalidate(tenantID.String())
	return product, nil
}

// Update atualiza um produto existente. O estoque não é alterado por aqui;
// ajustes passam pelo AdjustStockUseCase para manter o histórico de movimentações.
func (uc *SaveProductUseCase) Update(ctx context.Context, tenantID, productID uuid.UUID, req *request.SaveProductRequest) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, entity.ErrNameRequired
	}

	product.Name = req.Name
	product.Description = req.Description
	product.SKU = req.SKU
	product.Category = req.Category
	product.Price = req.Price
	product.Cost = req.Cost
	product.LowStockAlert = req.LowStockAlert
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	uc.catalogCache.Invalidate(tenantID.String())
	return product, nil
}
