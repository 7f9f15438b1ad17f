package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	catalogEntity "github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/domain/port"

	"github.com/google/uuid"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository cria uma nova instância do repositório
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db: db,
	}
}

// Create persiste a venda completa em uma única transação:
// venda + itens + pagamentos + baixa de estoque + movimentação de estoque.
// Estoque insuficiente aborta a transação inteira.
func (r *SalePostgresRepository) Create(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Inserir sale (aggregate root)
	querySale := `
		INSERT INTO sales (
			id, tenant_id, client_id, sale_date,
			subtotal, discount_amount, total,
			notes, created_by, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.TenantID,
		sale.ClientID, // NULL permitido (consumidor final)
		sale.SaleDate,
		sale.Subtotal,
		sale.DiscountAmount,
		sale.Total,
		sale.Notes,
		sale.CreatedBy,
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating sale: %w", err)
	}

	// 2. Inserir sale_items
	queryItem := `
		INSERT INTO sale_items (
			id, tenant_id, sale_id, service_id, product_id, barber_id,
			item_name, quantity, unit_price, total_price, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW()
		)
	`

	for _, item := range sale.Items {
		_, err = tx.ExecContext(ctx, queryItem,
			item.ID,
			sale.TenantID,
			item.SaleID,
			item.ServiceID,
			item.ProductID,
			item.BarberID,
			item.ItemName,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
		)
		if err != nil {
			return fmt.Errorf("error creating sale_item %q: %w", item.ItemName, err)
		}
	}

	// 3. Inserir payments
	queryPayment := `
		INSERT INTO payments (
			id, tenant_id, sale_id, payment_method, amount, payment_date, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW()
		)
	`

	for _, payment := range sale.Payments {
		_, err = tx.ExecContext(ctx, queryPayment,
			payment.ID,
			sale.TenantID,
			payment.SaleID,
			payment.PaymentMethod,
			payment.Amount,
			payment.PaymentDate,
		)
		if err != nil {
			return fmt.Errorf("error creating payment: %w", err)
		}
	}

	// 4. Baixa de estoque dos produtos, na mesma transação.
	// O WHERE stock_quantity >= quantity impede saldo negativo sob concorrência.
	queryStock := `
		UPDATE products
		SET stock_quantity = stock_quantity - $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3 AND stock_quantity >= $1
	`

	queryMovement := `
		INSERT INTO stock_movements (
			id, tenant_id, product_id, movement_type, quantity,
			reference_id, reference_type, created_by, created_at
		) VALUES (
			$1, $2, $3, 'sale', $4, $5, 'sale', $6, NOW()
		)
	`

	for _, item := range sale.Items {
		if item.ProductID == nil {
			continue
		}

		result, err := tx.ExecContext(ctx, queryStock, item.Quantity, item.ProductID, sale.TenantID)
		if err != nil {
			return fmt.Errorf("error updating stock for product %s: %w", item.ProductID, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("error checking stock update for product %s: %w", item.ProductID, err)
		}
		if affected == 0 {
			return fmt.Errorf("product %s: %w", item.ProductID, catalogEntity.ErrInsufficientStock)
		}

		_, err = tx.ExecContext(ctx, queryMovement,
			uuid.New(),
			sale.TenantID,
			item.ProductID,
			-item.Quantity,
			sale.ID,
			sale.CreatedBy,
		)
		if err != nil {
			return fmt.Errorf("error creating stock_movement for product %s: %w", item.ProductID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// ListByPeriod retorna as vendas do tenant no intervalo [from, to) com itens e pagamentos
func (r *SalePostgresRepository) ListByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*entity.Sale, error) {
	querySales := `
		SELECT
			id, tenant_id, client_id, sale_date,
			subtotal, discount_amount, total,
			COALESCE(notes, ''), created_by, created_at
		FROM sales
		WHERE tenant_id = $1
			AND sale_date >= $2
			AND sale_date < $3
		ORDER BY sale_date DESC
	`

	rows, err := r.db.QueryContext(ctx, querySales, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale

	for rows.Next() {
		sale := &entity.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.TenantID,
			&sale.ClientID,
			&sale.SaleDate,
			&sale.Subtotal,
			&sale.DiscountAmount,
			&sale.Total,
			&sale.Notes,
			&sale.CreatedBy,
			&sale.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	// Carregar itens e pagamentos por venda (N+1, suficiente para volume de PDV)
	for _, sale := range sales {
		if err := r.loadItems(ctx, sale); err != nil {
			return nil, err
		}
		if err := r.loadPayments(ctx, sale); err != nil {
			return nil, err
		}
	}

	return sales, nil
}

// GetByID retorna uma venda do tenant com itens e pagamentos
func (r *SalePostgresRepository) GetByID(ctx context.Context, tenantID, saleID uuid.UUID) (*entity.Sale, error) {
	query := `
		SELECT
			id, tenant_id, client_id, sale_date,
			subtotal, discount_amount, total,
			COALESCE(notes, ''), created_by, created_at
		FROM sales
		WHERE tenant_id = $1 AND id = $2
	`

	sale := &entity.Sale{}
	err := r.db.QueryRowContext(ctx, query, tenantID, saleID).Scan(
		&sale.ID,
		&sale.TenantID,
		&sale.ClientID,
		&sale.SaleDate,
		&sale.Subtotal,
		&sale.DiscountAmount,
		&sale.Total,
		&sale.Notes,
		&sale.CreatedBy,
		&sale.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying sale: %w", err)
	}

	if err := r.loadItems(ctx, sale); err != nil {
		return nil, err
	}
	if err := r.loadPayments(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

func (r *SalePostgresRepository) loadItems(ctx context.Context, sale *entity.Sale) error {
	query := `
		SELECT
			id, sale_id, service_id, product_id, barber_id,
			item_name, quantity, unit_price, total_price
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, sale.ID)
	if err != nil {
		return fmt.Errorf("error querying sale_items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem

	for rows.Next() {
		item := entity.SaleItem{}
		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ServiceID,
			&item.ProductID,
			&item.BarberID,
			&item.ItemName,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
		)
		if err != nil {
			return fmt.Errorf("error scanning sale_item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating sale_items: %w", err)
	}

	sale.Items = items
	return nil
}

func (r *SalePostgresRepository) loadPayments(ctx context.Context, sale *entity.Sale) error {
	query := `
		SELECT id, sale_id, payment_method, amount, payment_date
		FROM payments
		WHERE sale_id = $1
		ORDER BY payment_date
	`

	rows, err := r.db.QueryContext(ctx, query, sale.ID)
	if err != nil {
		return fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	var payments []entity.Payment

	for rows.Next() {
		payment := entity.Payment{}
		err := rows.Scan(
			&payment.ID,
			&payment.SaleID,
			&payment.PaymentMethod,
			&payment.Amount,
			&payment.PaymentDate,
		)
		if err != nil {
			return fmt.Errorf("error scanning payment: %w", err)
		}
		payments = append(payments, payment)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating payments: %w", err)
	}

	sale.Payments = payments
	return nil
}
