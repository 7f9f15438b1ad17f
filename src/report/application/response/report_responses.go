package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReportResponse representa o relatório diário de vendas
type DailyReportResponse struct {
	Date           string          `json:"date"` // YYYY-MM-DD
	SalesCount     int             `json:"sales_count"`
	GrossTotal     decimal.Decimal `json:"gross_total"`     // Soma de subtotal
	TotalDiscounts decimal.Decimal `json:"total_discounts"` // Soma de discount_amount
	NetTotal       decimal.Decimal `json:"net_total"`       // Soma de total
	FirstSaleAt    *time.Time      `json:"first_sale_at,omitempty"`
	LastSaleAt     *time.Time      `json:"last_sale_at,omitempty"`
}

// PaymentMethodBreakdown soma recebida por forma de pagamento no período
type PaymentMethodBreakdown struct {
	PaymentMethod      string          `json:"payment_method"`
	PaymentMethodLabel string          `json:"payment_method_label"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentsCount      int             `json:"payments_count"`
}

// MonthlyReportResponse representa o resumo mensal de vendas
type MonthlyReportResponse struct {
	Month          string                   `json:"month"` // YYYY-MM
	SalesCount     int                      `json:"sales_count"`
	GrossTotal     decimal.Decimal          `json:"gross_total"`
	TotalDiscounts decimal.Decimal          `json:"total_discounts"`
	NetTotal       decimal.Decimal          `json:"net_total"`
	AverageTicket  decimal.Decimal          `json:"average_ticket"` // net_total / sales_count
	ByMethod       []PaymentMethodBreakdown `json:"by_payment_method"`
}
