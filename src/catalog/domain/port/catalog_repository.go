package port

import (
	"context"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/entity"

	"github.com/google/uuid"
)

// ServiceRepository define o contrato de persistência de serviços
type ServiceRepository interface {
	Save(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, tenantID, serviceID uuid.UUID) (*entity.Service, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, onlyActive bool) ([]*entity.Service, error)
}

// ProductRepository define o contrato de persistência de produtos
type ProductRepository interface {
	Save(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*entity.Product, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, onlyActive bool) ([]*entity.Product, error)

	// AdjustStock aplica a movimentação e atualiza o contador do produto
	// na mesma transação; saldo negativo aborta
	AdjustStock(ctx context.Context, movement *entity.StockMovement) error
}
