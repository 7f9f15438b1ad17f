package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/port"

	"github.com/google/uuid"
)

// ServicePostgresRepository implementa ServiceRepository usando PostgreSQL
type ServicePostgresRepository struct {
	db *sql.DB
}

// NewServicePostgresRepository cria uma nova instância do repositório
func NewServicePostgresRepository(db *sql.DB) port.ServiceRepository {
	return &ServicePostgresRepository{db: db}
}

// Save insere ou atualiza um serviço (upsert pelo id)
func (r *ServicePostgresRepository) Save(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (
			id, tenant_id, name, description, price, duration_minutes,
			is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			duration_minutes = EXCLUDED.duration_minutes,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		service.ID,
		service.TenantID,
		service.Name,
		service.Description,
		service.Price,
		service.DurationMinutes,
		service.IsActive,
		service.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving service: %w", err)
	}

	return nil
}

// GetByID retorna um serviço do tenant
func (r *ServicePostgresRepository) GetByID(ctx context.Context, tenantID, serviceID uuid.UUID) (*entity.Service, error) {
	query := `
		SELECT id, tenant_id, name, COALESCE(description, ''), price,
			duration_minutes, is_active, created_at, updated_at
		FROM services
		WHERE tenant_id = $1 AND id = $2
	`

	service := &entity.Service{}
	err := r.db.QueryRowContext(ctx, query, tenantID, serviceID).Scan(
		&service.ID,
		&service.TenantID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.DurationMinutes,
		&service.IsActive,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying service: %w", err)
	}

	return service, nil
}

// ListByTenant retorna os serviços do tenant, opcionalmente apenas os ativos
func (r *ServicePostgresRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, onlyActive bool) ([]*entity.Service, error) {
	query := `
		SELECT id, tenant_id, name, COALESCE(description, ''), price,
			duration_minutes, is_active, created_at, updated_at
		FROM services
		WHERE tenant_id = $1
	`
	if onlyActive {
		query += " AND is_active = true"
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error querying services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service

	for rows.Next() {
		service := &entity.Service{}
		err := rows.Scan(
			&service.ID,
			&service.TenantID,
			&service.Name,
			&service.Description,
			&service.Price,
			&service.DurationMinutes,
			&service.IsActive,
			&service.CreatedAt,
			&service.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning service: %w", err)
		}
		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating services: %w", err)
	}

	return services, nil
}

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository cria uma nova instância do repositório
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{db: db}
}

// Save insere ou atualiza um produto (upsert pelo id)
func (r *ProductPostgresRepository) Save(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (
			id, tenant_id, name, description, sku, category, price, cost,
			stock_quantity, low_stock_alert, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			sku = EXCLUDED.sku,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			cost = EXCLUDED.cost,
			stock_quantity = EXCLUDED.stock_quantity,
			low_stock_alert = EXCLUDED.low_stock_alert,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.TenantID,
		product.Name,
		product.Description,
		product.SKU,
		product.Category,
		product.Price,
		product.Cost,
		product.StockQuantity,
		product.LowStockAlert,
		product.IsActive,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving product: %w", err)
	}

	return nil
}

// GetByID retorna um produto do tenant
func (r *ProductPostgresRepository) GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, tenant_id, name, COALESCE(description, ''), COALESCE(sku, ''),
			COALESCE(category, ''), price, cost, stock_quantity, low_stock_alert,
			is_active, created_at, updated_at
		FROM products
		WHERE tenant_id = $1 AND id = $2
	`

	product := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, tenantID, productID).Scan(
		&product.ID,
		&product.TenantID,
		&product.Name,
		&product.Description,
		&product.SKU,
		&product.Category,
		&product.Price,
		&product.Cost,
		&product.StockQuantity,
		&product.LowStockAlert,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying product: %w", err)
	}

	return product, nil
}

// ListByTenant retorna os produtos do tenant, opcionalmente apenas os ativos
func (r *ProductPostgresRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, onlyActive bool) ([]*entity.Product, error) {
	query := `
		SELECT id, tenant_id, name, COALESCE(description, ''), COALESCE(sku, ''),
			COALESCE(category, ''), price, cost, stock_quantity, low_stock_alert,
			is_active, created_at, updated_at
		FROM products
		WHERE tenant_id = $1
	`
	if onlyActive {
		query += " AND is_active = true"
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product

	for rows.Next() {
		product := &entity.Product{}
		err := rows.Scan(
			&product.ID,
			&product.TenantID,
			&product.Name,
			&product.Description,
			&product.SKU,
			&product.Category,
			&product.Price,
			&product.Cost,
			&product.StockQuantity,
			&product.LowStockAlert,
			&product.IsActive,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// AdjustStock grava a movimentação e atualiza o contador do produto na mesma
// transação. Saída maior que o saldo aborta com ErrInsufficientStock.
func (r *ProductPostgresRepository) AdjustStock(ctx context.Context, movement *entity.StockMovement) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	queryUpdate := `
		UPDATE products
		SET stock_quantity = stock_quantity + $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3 AND stock_quantity + $1 >= 0
	`

	result, err := tx.ExecContext(ctx, queryUpdate, movement.Quantity, movement.ProductID, movement.TenantID)
	if err != nil {
		return fmt.Errorf("error updating stock: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking stock update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %s: %w", movement.ProductID, entity.ErrInsufficientStock)
	}

	queryMovement := `
		INSERT INTO stock_movements (
			id, tenant_id, product_id, movement_type, quantity,
			reference_id, reference_type, notes, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.ExecContext(ctx, queryMovement,
		movement.ID,
		movement.TenantID,
		movement.ProductID,
		movement.MovementType,
		movement.Quantity,
		movement.ReferenceID,
		movement.ReferenceType,
		movement.Notes,
		movement.CreatedBy,
		movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating stock_movement: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
