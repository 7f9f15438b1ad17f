package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/client/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/client/domain/port"

	"github.com/google/uuid"
)

// ClientPostgresRepository implementa ClientRepository usando PostgreSQL
type ClientPostgresRepository struct {
	db *sql.DB
}

// NewClientPostgresRepository cria uma nova instância do repositório
func NewClientPostgresRepository(db *sql.DB) port.ClientRepository {
	return &ClientPostgresRepository{db: db}
}

const clientColumns = `
	id, tenant_id, name, COALESCE(phone, ''), COALESCE(email, ''),
	birth_date, is_vip, COALESCE(notes, ''), created_at, updated_at
`

// Save insere ou atualiza um cliente (upsert pelo id)
func (r *ClientPostgresRepository) Save(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (
			id, tenant_id, name, phone, email, birth_date,
			is_vip, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			birth_date = EXCLUDED.birth_date,
			is_vip = EXCLUDED.is_vip,
			notes = EXCLUDED.notes,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		client.ID,
		client.TenantID,
		client.Name,
		client.Phone,
		client.Email,
		client.BirthDate,
		client.IsVIP,
		client.Notes,
		client.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving client: %w", err)
	}

	return nil
}

// GetByID retorna um cliente do tenant
func (r *ClientPostgresRepository) GetByID(ctx context.Context, tenantID, clientID uuid.UUID) (*entity.Client, error) {
	query := "SELECT " + clientColumns + " FROM clients WHERE tenant_id = $1 AND id = $2"

	client := &entity.Client{}
	err := r.db.QueryRowContext(ctx, query, tenantID, clientID).Scan(
		&client.ID,
		&client.TenantID,
		&client.Name,
		&client.Phone,
		&client.Email,
		&client.BirthDate,
		&client.IsVIP,
		&client.Notes,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying client: %w", err)
	}

	return client, nil
}

// ListByTenant retorna todos os clientes do tenant em ordem alfabética
func (r *ClientPostgresRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Client, error) {
	query := "SELECT " + clientColumns + " FROM clients WHERE tenant_id = $1 ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error querying clients: %w", err)
	}
	defer rows.Close()

	return r.scanClients(rows)
}

// Search busca por nome ou telefone (ILIKE), limitada a `limit` resultados
func (r *ClientPostgresRepository) Search(ctx context.Context, tenantID uuid.UUID, term string, limit int) ([]*entity.Client, error) {
	query := "SELECT " + clientColumns + `
		FROM clients
		WHERE tenant_id = $1
			AND (name ILIKE '%' || $2 || '%' OR phone ILIKE '%' || $2 || '%')
		ORDER BY name
		LIMIT $3
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID, term, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching clients: %w", err)
	}
	defer rows.Close()

	return r.scanClients(rows)
}

func (r *ClientPostgresRepository) scanClients(rows *sql.Rows) ([]*entity.Client, error) {
	var clients []*entity.Client

	for rows.Next() {
		client := &entity.Client{}
		err := rows.Scan(
			&client.ID,
			&client.TenantID,
			&client.Name,
			&client.Phone,
			&client.Email,
			&client.BirthDate,
			&client.IsVIP,
			&client.Notes,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning client: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}
