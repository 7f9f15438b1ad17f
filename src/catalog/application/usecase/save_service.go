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

// SaveServiceUseCase cria ou atualiza um serviço do catálogo
type SaveServiceUseCase struct {
	serviceRepo  port.ServiceRepository
	catalogCache *cache.CatalogCache
}

// NewSaveServiceUseCase cria uma nova instância do caso de uso
func NewSaveServiceUseCase(serviceRepo port.ServiceRepository, catalogCache *cache.CatalogCache) *SaveServiceUseCase {
	return &SaveServiceUseCase{
		serviceRepo:  serviceRepo,
		catalogCache: catalogCache,
	}
}

// Create cria um novo serviço
func (uc *SaveServiceUseCase) Create(ctx context.Context, tenantID uuid.UUID, req *request.SaveServiceRequest) (*entity.Service, error) {
	service, err := entity.NewService(tenantID, req.Name, req.Description, req.Price, req.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := uc.serviceRepo.Save(ctx, service); err != nil {
		return nil, fmt.Errorf("error creating service: %w", err)
	}

	uc.catalogCache.Invalidate(tenantID.String())
	return service, nil
}

// Update atualiza um serviço existente
func (uc *SaveServiceUseCase) Update(ctx context.Context, tenantID, serviceID uuid.UUID, req *request.SaveServiceRequest) (*entity.Service, error) {
	service, err := uc.serviceRepo.GetByID(ctx, tenantID, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, entity.ErrNameRequired
	}
	if req.DurationMinutes <= 0 {
		return nil, entity.ErrInvalidDuration
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.DurationMinutes = req.DurationMinutes
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := uc.serviceRepo.Save(ctx, service); err != nil {
		return nil, fmt.Errorf("error updating service: %w", err)
	}

	uc.catalogCache.Invalidate(tenantID.String())
	return service, nil
}
