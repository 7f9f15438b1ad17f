package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/report/application/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyReportUseCase gera o relatório diário de vendas
type DailyReportUseCase struct {
	db *sql.DB
}

// NewDailyReportUseCase cria uma nova instância do caso de uso
func NewDailyReportUseCase(db *sql.DB) *DailyReportUseCase {
	return &DailyReportUseCase{
		db: db,
	}
}

// Execute gera o relatório para uma data específica.
// Intervalo [from, to) sobre sale_date para aproveitar o índice,
// sem DATE(sale_date) no WHERE.
func (uc *DailyReportUseCase) Execute(ctx context.Context, tenantID uuid.UUID, date string) (*response.DailyReportResponse, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	query := `
		SELECT
			COUNT(*) as sales_count,
			COALESCE(SUM(subtotal), 0) as gross_total,
			COALESCE(SUM(discount_amount), 0) as total_discounts,
			COALESCE(SUM(total), 0) as net_total,
			MIN(sale_date) as first_sale,
			MAX(sale_date) as last_sale
		FROM sales
		WHERE tenant_id = $1
			AND sale_date >= $2
			AND sale_date < $3
	`

	var salesCount int
	var grossTotal, totalDiscounts, netTotal decimal.Decimal
	var firstSale, lastSale sql.NullTime

	err = uc.db.QueryRowContext(ctx, query, tenantID, from, to).Scan(
		&salesCount,
		&grossTotal,
		&totalDiscounts,
		&netTotal,
		&firstSale,
		&lastSale,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}

	resp := &response.DailyReportResponse{
		Date:           date,
		SalesCount:     salesCount,
		GrossTotal:     grossTotal,
		TotalDiscounts: totalDiscounts,
		NetTotal:       netTotal,
	}

	// Timestamps apenas quando existem vendas no dia
	if firstSale.Valid {
		resp.FirstSaleAt = &firstSale.Time
	}
	if lastSale.Valid {
		resp.LastSaleAt = &lastSale.Time
	}

	return resp, nil
}
