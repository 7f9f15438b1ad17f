package port

import (
	"context"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/client/domain/entity"

	"github.com/google/uuid"
)

// ClientRepository define o contrato de persistência de clientes
type ClientRepository interface {
	Save(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, tenantID, clientID uuid.UUID) (*entity.Client, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Client, error)

	// Search busca por nome ou telefone (substring, case-insensitive),
	// limitada a `limit` resultados
	Search(ctx context.Context, tenantID uuid.UUID, term string, limit int) ([]*entity.Client, error)
}
