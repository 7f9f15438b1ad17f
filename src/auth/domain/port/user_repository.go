package port

import (
	"context"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/auth/domain/entity"
)

// UserRepository define o contrato de consulta de usuários para autenticação
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
