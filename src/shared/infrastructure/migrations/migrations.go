package migrations

import (
	"database/sql"
	"fmt"
	"log"
)

// Run cria o esquema do banco na inicialização (idempotente)
func Run(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			tenant_id UUID NOT NULL,
			email TEXT NOT NULL UNIQUE,
			full_name TEXT NOT NULL,
			role TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS clients (
			id UUID PRIMARY KEY,
			tenant_id UUID NOT NULL,
			name TEXT NOT NULL,
			phone TEXT,
			email TEXT,
			birth_date DATE,
			is_vip BOOLEAN NOT NULL DEFAULT FALSE,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS barbers (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			tenant_id UUID NOT NULL,
			specialty TEXT,
			commission_rate NUMERIC(5,4) NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS services (
			id UUID PRIMARY KEY,
			tenant_id UUID NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL,
			duration_minutes INTEGER NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			tenant_id UUID NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			sku TEXT,
			category TEXT,
			price NUMERIC(10,2) NOT NULL,
			cost NUMERIC(10,2),
			stock_quantity INTEGER NOT NULL DEFAULT 0,
			low_stock_alert INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS stock_movements (
			id UUID PRIMARY KEY,
			tenant_id UUID NOT NULL,
			product_id UUID NOT NULL REFERENCES products(id),
			movement_type TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			reference_id UUID,
			reference_type TEXT,
			notes TEXT,
			created_by UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id UUID PRIMARY KEY,
			tenant_id UUID NOT NULL,
			client_id UUID REFERENCES clients(id),
			sale_date TIMESTAMPTZ NOT NULL,
			subtotal NUMERIC(10,2) NOT NULL,
			discount_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			total NUMERIC(10,2) NOT NULL,
			notes TEXT,
			created_by UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sale_items (
			id UUID PRIMARY KEY,
			tenant_id UUID NOT NULL,
			sale_id UUID NOT NULL REFERENCES sales(id),
			service_id UUID REFERENCES services(id),
			product_id UUID REFERENCES products(id),
			barber_id UUID,
			item_name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL,
			total_price NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CHECK ((service_id IS NULL) <> (product_id IS NULL))
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			tenant_id UUID NOT NULL,
			sale_id UUID NOT NULL REFERENCES sales(id),
			payment_method TEXT NOT NULL,
			amount NUMERIC(10,2) NOT NULL,
			payment_date TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS appointments (
			id UUID PRIMARY KEY,
			tenant_id UUID NOT NULL,
			client_id UUID NOT NULL REFERENCES clients(id),
			barber_id UUID NOT NULL REFERENCES barbers(id),
			service_id UUID NOT NULL REFERENCES services(id),
			scheduled_at TIMESTAMPTZ NOT NULL,
			duration_minutes INTEGER NOT NULL,
			status TEXT NOT NULL,
			notes TEXT,
			reminder_sent BOOLEAN NOT NULL DEFAULT FALSE,
			created_by UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_tenant_date ON sales (tenant_id, sale_date)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_tenant_date ON payments (tenant_id, payment_date)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_tenant_scheduled ON appointments (tenant_id, scheduled_at)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_movements_product ON stock_movements (tenant_id, product_id)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("error running migration: %w", err)
		}
	}

	log.Println("Migrações do esquema aplicadas")
	return nil
}
