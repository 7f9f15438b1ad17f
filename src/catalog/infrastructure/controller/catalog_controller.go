package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/application/request"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/application/usecase"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogController maneja as requisições HTTP do catálogo
type CatalogController struct {
	saveServiceUC   *usecase.SaveServiceUseCase
	saveProductUC   *usecase.SaveProductUseCase
	listCatalogUC   *usecase.ListCatalogUseCase
	searchCatalogUC *usecase.SearchCatalogUseCase
	adjustStockUC   *usecase.AdjustStockUseCase
}

// NewCatalogController cria uma nova instância do controlador
func NewCatalogController(
	saveServiceUC *usecase.SaveServiceUseCase,
	saveProductUC *usecase.SaveProductUseCase,
	listCatalogUC *usecase.ListCatalogUseCase,
	searchCatalogUC *usecase.SearchCatalogUseCase,
	adjustStockUC *usecase.AdjustStockUseCase,
) *CatalogController {
	return &CatalogController{
		saveServiceUC:   saveServiceUC,
		saveProductUC:   saveProductUC,
		listCatalogUC:   listCatalogUC,
		searchCatalogUC: searchCatalogUC,
		adjustStockUC:   adjustStockUC,
	}
}

// RegisterRoutes registra as rotas do controlador
func (c *CatalogController) RegisterRoutes(router *gin.RouterGroup) {
	services := router.Group("/services")
	{
		services.GET("", c.ListServices)
		services.POST("", c.CreateService)
		services.PUT("/:service_id", c.UpdateService)
	}

	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.POST("", c.CreateProduct)
		products.PUT("/:product_id", c.UpdateProduct)
		products.POST("/stock-adjustments", c.AdjustStock)
	}

	router.GET("/catalog/search", c.SearchCatalog)

	log.Println("Rotas Catalog disponíveis:")
	log.Println("  GET    /api/v1/services")
	log.Println("  POST   /api/v1/services")
	log.Println("  PUT    /api/v1/services/:service_id")
	log.Println("  GET    /api/v1/products")
	log.Println("  POST   /api/v1/products")
	log.Println("  PUT    /api/v1/products/:product_id")
	log.Println("  POST   /api/v1/products/stock-adjustments")
	log.Println("  GET    /api/v1/catalog/search?q=termo")
}

// ListServices lista os serviços do tenant (?active=true filtra inativos)
func (c *CatalogController) ListServices(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	onlyActive := ctx.Query("active") == "true"
	services, err := c.listCatalogUC.Services(ctx.Request.Context(), tenantID, onlyActive)
	if err != nil {
		log.Printf("Erro ao listar serviços: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": services, "total_count": len(services)})
}

// CreateService cria um serviço
func (c *CatalogController) CreateService(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	var req request.SaveServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	service, err := c.saveServiceUC.Create(ctx.Request.Context(), tenantID, &req)
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, service)
}

// UpdateService atualiza um serviço existente
func (c *CatalogController) UpdateService(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	serviceID, err := uuid.Parse(ctx.Param("service_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service_id format"})
		return
	}

	var req request.SaveServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	service, err := c.saveServiceUC.Update(ctx.Request.Context(), tenantID, serviceID, &req)
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, service)
}

// ListProducts lista os produtos do tenant
func (c *CatalogController) ListProducts(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	onlyActive := ctx.Query("active") == "true"
	products, err := c.listCatalogUC.Products(ctx.Request.Context(), tenantID, onlyActive)
	if err != nil {
		log.Printf("Erro ao listar produtos: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": products, "total_count": len(products)})
}

// CreateProduct cria um produto
func (c *CatalogController) CreateProduct(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	var req request.SaveProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := c.saveProductUC.Create(ctx.Request.Context(), tenantID, &req)
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct atualiza um produto existente
func (c *CatalogController) UpdateProduct(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return
	}

	var req request.SaveProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := c.saveProductUC.Update(ctx.Request.Context(), tenantID, productID, &req)
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// AdjustStock lança uma movimentação manual de estoque
func (c *CatalogController) AdjustStock(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}
	userID, _ := middleware.UserID(ctx)

	var req request.AdjustStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := c.adjustStockUC.Execute(ctx.Request.Context(), tenantID, userID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrInsufficientStock) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Estoque insuficiente", "details": err.Error()})
			return
		}
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// SearchCatalog busca do PDV (?q=termo, mínimo 2 caracteres)
func (c *CatalogController) SearchCatalog(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	resp, err := c.searchCatalogUC.Execute(ctx.Request.Context(), tenantID, ctx.Query("q"))
	if err != nil {
		log.Printf("Erro na busca de catálogo: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

func (c *CatalogController) handleCatalogError(ctx *gin.Context, err error) {
	log.Printf("Erro no catálogo: %v", err)

	switch {
	case errors.Is(err, entity.ErrServiceNotFound), errors.Is(err, entity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNameRequired),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrInvalidDuration),
		errors.Is(err, entity.ErrInvalidStockQuantity),
		errors.Is(err, entity.ErrInvalidMovementType),
		errors.Is(err, entity.ErrZeroMovementQuantity):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
