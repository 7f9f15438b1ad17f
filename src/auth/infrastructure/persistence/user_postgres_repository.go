package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/auth/domain/entity"
)

// UserPostgresRepository implementa UserRepository usando PostgreSQL
type UserPostgresRepository struct {
	db *sql.DB
}

// NewUserPostgresRepository cria uma nova instância do repositório
func NewUserPostgresRepository(db *sql.DB) *UserPostgresRepository {
	return &UserPostgresRepository{db: db}
}

// GetByEmail busca um usuário pelo email
func (r *UserPostgresRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, tenant_id, email, full_name, role, password_hash, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user entity.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.TenantID,
		&user.Email,
		&user.FullName,
		&user.Role,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return &user, nil
}
