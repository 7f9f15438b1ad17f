package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/application/request"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/application/response"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/domain/port"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/shared/infrastructure/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSaleUseCase fecha uma venda vinda do PDV.
// Fluxo:
//  1. montar items e payments como entities (validações locais)
//  2. montar o aggregate Sale (revalida o portão de conciliação)
//  3. persistir tudo em uma única transação, incluindo baixa de estoque
type CreateSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewCreateSaleUseCase cria uma nova instância do caso de uso
func NewCreateSaleUseCase(saleRepo port.SaleRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute valida e persiste a venda
func (uc *CreateSaleUseCase) Execute(ctx context.Context, tenantID, createdBy uuid.UUID, req *request.CreateSaleRequest) (*response.SaleResponse, error) {
	log.Printf("PDV: fechando venda - itens: %d, pagamentos: %d, tenant: %s", len(req.Items), len(req.Payments), tenantID)

	if tenantID == uuid.Nil {
		return nil, entity.ErrTenantIDRequired
	}

	// Default discount
	discountAmount := req.DiscountAmount
	if discountAmount.IsZero() {
		discountAmount = decimal.Zero
	}

	// Montar items
	var items []entity.SaleItem
	for _, itemReq := range req.Items {
		item, err := entity.NewSaleItem(
			uuid.Nil, // atribuído em NewSale
			itemReq.ServiceID,
			itemReq.ProductID,
			itemReq.BarberID,
			itemReq.ItemName,
			itemReq.Quantity,
			itemReq.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("invalid sale item %q: %w", itemReq.ItemName, err)
		}
		items = append(items, *item)
	}

	// Montar payments
	now := time.Now()
	var payments []entity.Payment
	for _, payReq := range req.Payments {
		payment, err := entity.NewPayment(uuid.Nil, entity.PaymentMethod(payReq.PaymentMethod), payReq.Amount, now)
		if err != nil {
			return nil, fmt.Errorf("invalid payment: %w", err)
		}
		payments = append(payments, *payment)
	}

	// Montar aggregate (revalida conciliação pago == total)
	var createdByRef *uuid.UUID
	if createdBy != uuid.Nil {
		createdByRef = &createdBy
	}

	sale, err := entity.NewSale(tenantID, req.ClientID, items, payments, discountAmount, createdByRef, req.Notes)
	if err != nil {
		if errors.Is(err, entity.ErrPaymentMismatch) {
			metrics.SalesRejected.Inc()
		}
		return nil, err
	}

	// Persistir atomicamente (venda + itens + pagamentos + baixa de estoque)
	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("error saving sale: %w", err)
	}

	metrics.SalesCreated.Inc()
	log.Printf("Venda registrada: id=%s, itens=%d, total=%s", sale.ID, sale.TotalItems(), sale.Total)

	return BuildSaleResponse(sale), nil
}

// BuildSaleResponse monta o DTO de resposta a partir do aggregate
func BuildSaleResponse(sale *entity.Sale) *response.SaleResponse {
	itemsResp := make([]response.SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		itemsResp = append(itemsResp, response.SaleItemResponse{
			ItemID:     item.ID,
			ServiceID:  item.ServiceID,
			ProductID:  item.ProductID,
			BarberID:   item.BarberID,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	paymentsResp := make([]response.SalePaymentResponse, 0, len(sale.Payments))
	for _, payment := range sale.Payments {
		paymentsResp = append(paymentsResp, response.SalePaymentResponse{
			PaymentID:          payment.ID,
			PaymentMethod:      string(payment.PaymentMethod),
			PaymentMethodLabel: payment.PaymentMethod.Label(),
			Amount:             payment.Amount,
		})
	}

	return &response.SaleResponse{
		SaleID:         sale.ID,
		ClientID:       sale.ClientID,
		SaleDate:       sale.SaleDate,
		Items:          itemsResp,
		Payments:       paymentsResp,
		TotalItems:     sale.TotalItems(),
		Subtotal:       sale.Subtotal,
		DiscountAmount: sale.DiscountAmount,
		Total:          sale.Total,
		TotalPaid:      sale.TotalPaid(),
		Notes:          sale.Notes,
		CreatedAt:      sale.CreatedAt,
	}
}
