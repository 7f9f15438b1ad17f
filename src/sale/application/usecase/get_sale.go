package usecase

import (
	"context"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/application/response"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/domain/port"

	"github.com/google/uuid"
)

// GetSaleUseCase busca uma venda pelo id
type GetSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewGetSaleUseCase cria uma nova instância do caso de uso
func NewGetSaleUseCase(saleRepo port.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute retorna a venda com itens e pagamentos
func (uc *GetSaleUseCase) Execute(ctx context.Context, tenantID, saleID uuid.UUID) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, tenantID, saleID)
	if err != nil {
		return nil, err
	}
	return BuildSaleResponse(sale), nil
}
