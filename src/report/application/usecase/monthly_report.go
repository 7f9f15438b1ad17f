package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/report/application/response"
	saleEntity "github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyReportUseCase gera o resumo mensal de vendas com quebra por forma
// de pagamento
type MonthlyReportUseCase struct {
	db *sql.DB
}

// NewMonthlyReportUseCase cria uma nova instância do caso de uso
func NewMonthlyReportUseCase(db *sql.DB) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{
		db: db,
	}
}

// Execute gera o resumo do mês (formato YYYY-MM)
func (uc *MonthlyReportUseCase) Execute(ctx context.Context, tenantID uuid.UUID, month string) (*response.MonthlyReportResponse, error) {
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month format, expected YYYY-MM: %w", err)
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	// Agregações das vendas do mês
	querySales := `
		SELECT
			COUNT(*) as sales_count,
			COALESCE(SUM(subtotal), 0) as gross_total,
			COALESCE(SUM(discount_amount), 0) as total_discounts,
			COALESCE(SUM(total), 0) as net_total
		FROM sales
		WHERE tenant_id = $1
			AND sale_date >= $2
			AND sale_date < $3
	`

	var salesCount int
	var grossTotal, totalDiscounts, netTotal decimal.Decimal

	err = uc.db.QueryRowContext(ctx, querySales, tenantID, monthStart, monthEnd).Scan(
		&salesCount,
		&grossTotal,
		&totalDiscounts,
		&netTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}

	// Quebra por forma de pagamento
	queryMethods := `
		SELECT p.payment_method, COALESCE(SUM(p.amount), 0), COUNT(*)
		FROM payments p
		WHERE p.tenant_id = $1
			AND p.payment_date >= $2
			AND p.payment_date < $3
		GROUP BY p.payment_method
		ORDER BY SUM(p.amount) DESC
	`

	rows, err := uc.db.QueryContext(ctx, queryMethods, tenantID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	var byMethod []response.PaymentMethodBreakdown

	for rows.Next() {
		var method string
		var amount decimal.Decimal
		var count int
		if err := rows.Scan(&method, &amount, &count); err != nil {
			return nil, fmt.Errorf("error scanning payment breakdown: %w", err)
		}
		byMethod = append(byMethod, response.PaymentMethodBreakdown{
			PaymentMethod:      method,
			PaymentMethodLabel: saleEntity.PaymentMethod(method).Label(),
			Amount:             amount,
			PaymentsCount:      count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment breakdown: %w", err)
	}

	// Ticket médio = líquido / quantidade de vendas
	averageTicket := decimal.Zero
	if salesCount > 0 {
		averageTicket = netTotal.Div(decimal.NewFromInt(int64(salesCount))).Round(2)
	}

	return &response.MonthlyReportResponse{
		Month:          month,
		SalesCount:     salesCount,
		GrossTotal:     grossTotal,
		TotalDiscounts: totalDiscounts,
		NetTotal:       netTotal,
		AverageTicket:  averageTicket,
		ByMethod:       byMethod,
	}, nil
}
