package usecase

import (
	"context"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/port"

	"github.com/google/uuid"
)

// ListCatalogUseCase lista serviços e produtos para as telas de cadastro
type ListCatalogUseCase struct {
	serviceRepo port.ServiceRepository
	productRepo port.ProductRepository
}

// NewListCatalogUseCase cria uma nova instância do caso de uso
func NewListCatalogUseCase(serviceRepo port.ServiceRepository, productRepo port.ProductRepository) *ListCatalogUseCase {
	return &ListCatalogUseCase{
		serviceRepo: serviceRepo,
		productRepo: productRepo,
	}
}

// Services lista os serviços do tenant
func (uc *ListCatalogUseCase) Services(ctx context.Context, tenantID uuid.UUID, onlyActive bool) ([]*entity.Service, error) {
	return uc.serviceRepo.ListByTenant(ctx, tenantID, onlyActive)
}

// Products lista os produtos do tenant
func (uc *ListCatalogUseCase) Products(ctx context.Context, tenantID uuid.UUID, onlyActive bool) ([]*entity.Product, error) {
	return uc.productRepo.ListByTenant(ctx, tenantID, onlyActive)
}
