package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/application/request"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/port"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/infrastructure/cache"

	"github.com/google/uuid"
)

// AdjustStockUseCase lança uma movimentação manual de estoque
// (compra, ajuste, devolução). A saída por venda não passa por aqui:
// acontece dentro da transação de fechamento da venda.
type AdjustStockUseCase struct {
	productRepo  port.ProductRepository
	catalogCache *cache.CatalogCache
}

// NewAdjustStockUseCase cria uma nova instância do caso de uso
func NewAdjustStockUseCase(productRepo port.ProductRepository, catalogCache *cache.CatalogCache) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		productRepo:  productRepo,
		catalogCache: catalogCache,
	}
}

// Execute aplica a movimentação e retorna o produto atualizado
func (uc *AdjustStockUseCase) Execute(ctx context.Context, tenantID, createdBy uuid.UUID, req *request.AdjustStockRequest) (*entity.Product, error) {
	var createdByRef *uuid.UUID
	if createdBy != uuid.Nil {
		createdByRef = &createdBy
	}

	movement, err := entity.NewStockMovement(
		tenantID,
		req.ProductID,
		entity.StockMovementType(req.MovementType),
		req.Quantity,
		req.Notes,
		createdByRef,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.AdjustStock(ctx, movement); err != nil {
		return nil, fmt.Errorf("error adjusting stock: %w", err)
	}

	uc.catalogCache.Invalidate(tenantID.String())
	log.Printf("Estoque ajustado: produto=%s, tipo=%s, quantidade=%d", req.ProductID, req.MovementType, req.Quantity)

	return uc.productRepo.GetByID(ctx, tenantID, req.ProductID)
}
