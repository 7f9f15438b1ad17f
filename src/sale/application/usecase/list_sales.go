package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/application/response"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/domain/port"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListSalesUseCase lista as vendas de um mês com os agregados do cabeçalho
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase cria uma nova instância do caso de uso
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute retorna as vendas do mês (formato YYYY-MM) do tenant
func (uc *ListSalesUseCase) Execute(ctx context.Context, tenantID uuid.UUID, month string) (*response.ListSalesResponse, error) {
	// Intervalo [início do mês, início do mês seguinte)
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month format, expected YYYY-MM: %w", err)
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	sales, err := uc.saleRepo.ListByPeriod(ctx, tenantID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("error listing sales: %w", err)
	}

	items := make([]response.SaleResponse, 0, len(sales))
	monthTotal := decimal.Zero
	for _, sale := range sales {
		items = append(items, *BuildSaleResponse(sale))
		monthTotal = monthTotal.Add(sale.Total)
	}

	return &response.ListSalesResponse{
		Items:      items,
		TotalCount: len(items),
		MonthTotal: monthTotal.Round(2),
	}, nil
}
