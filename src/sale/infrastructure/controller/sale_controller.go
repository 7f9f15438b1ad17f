package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	catalogEntity "github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/application/request"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/application/usecase"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleController maneja as requisições HTTP de vendas
type SaleController struct {
	createSaleUC *usecase.CreateSaleUseCase
	listSalesUC  *usecase.ListSalesUseCase
	getSaleUC    *usecase.GetSaleUseCase
}

// NewSaleController cria uma nova instância do controlador
func NewSaleController(
	createSaleUC *usecase.CreateSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	getSaleUC *usecase.GetSaleUseCase,
) *SaleController {
	return &SaleController{
		createSaleUC: createSaleUC,
		listSalesUC:  listSalesUC,
		getSaleUC:    getSaleUC,
	}
}

// RegisterRoutes registra as rotas do controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.POST("", c.CreateSale)
		sales.GET("", c.ListSales)
		sales.GET("/:sale_id", c.GetSale)
	}

	log.Println("Rotas Sale disponíveis:")
	log.Println("  POST   /api/v1/sales")
	log.Println("  GET    /api/v1/sales?month=YYYY-MM")
	log.Println("  GET    /api/v1/sales/:sale_id")
}

// CreateSale fecha uma venda do PDV
func (c *SaleController) CreateSale(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}
	userID, _ := middleware.UserID(ctx)

	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := c.createSaleUC.Execute(ctx.Request.Context(), tenantID, userID, &req)
	if err != nil {
		log.Printf("Erro ao registrar venda: %v", err)

		switch {
		case errors.Is(err, entity.ErrPaymentMismatch):
			// Conciliação não fechou: pago != total ao centavo
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "O valor pago deve ser igual ao total da venda",
			})
		case errors.Is(err, catalogEntity.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Estoque insuficiente", "details": err.Error()})
		case errors.Is(err, entity.ErrSaleMustHaveItems),
			errors.Is(err, entity.ErrInvalidDiscount),
			errors.Is(err, entity.ErrInvalidPaymentAmount),
			errors.Is(err, entity.ErrInvalidPaymentMethod),
			strings.Contains(err.Error(), "invalid"):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating sale", "details": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// ListSales lista as vendas de um mês (query param month=YYYY-MM)
func (c *SaleController) ListSales(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	month := ctx.Query("month")
	if month == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "month query parameter is required (format: YYYY-MM)"})
		return
	}

	resp, err := c.listSalesUC.Execute(ctx.Request.Context(), tenantID, month)
	if err != nil {
		log.Printf("Erro ao listar vendas: %v", err)

		if strings.Contains(err.Error(), "invalid month format") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format", "details": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetSale retorna uma venda com itens e pagamentos
func (c *SaleController) GetSale(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_id format"})
		return
	}

	resp, err := c.getSaleUC.Execute(ctx.Request.Context(), tenantID, saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		log.Printf("Erro ao buscar venda: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
