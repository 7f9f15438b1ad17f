package port

import (
	"context"
	"time"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/domain/entity"

	"github.com/google/uuid"
)

// SaleRepository define o contrato para persistir vendas finalizadas.
// Create grava venda, itens, pagamentos e baixa de estoque em uma única
// transação: ou tudo entra, ou nada entra.
type SaleRepository interface {
	// Create persiste a venda completa atomicamente
	Create(ctx context.Context, sale *entity.Sale) error

	// ListByPeriod retorna as vendas do tenant no intervalo [from, to),
	// com itens e pagamentos carregados, mais recentes primeiro
	ListByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*entity.Sale, error)

	// GetByID retorna uma venda do tenant com itens e pagamentos
	GetByID(ctx context.Context, tenantID, saleID uuid.UUID) (*entity.Sale, error)
}
