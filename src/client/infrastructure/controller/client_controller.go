package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/client/application/usecase"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/client/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientController maneja as requisições HTTP de clientes
type ClientController struct {
	manageClientsUC *usecase.ManageClientsUseCase
}

// NewClientController cria uma nova instância do controlador
func NewClientController(manageClientsUC *usecase.ManageClientsUseCase) *ClientController {
	return &ClientController{
		manageClientsUC: manageClientsUC,
	}
}

// RegisterRoutes registra as rotas do controlador
func (c *ClientController) RegisterRoutes(router *gin.RouterGroup) {
	clients := router.Group("/clients")
	{
		clients.GET("", c.ListClients)
		clients.GET("/search", c.SearchClients)
		clients.POST("", c.CreateClient)
		clients.PUT("/:client_id", c.UpdateClient)
	}

	log.Println("Rotas Client disponíveis:")
	log.Println("  GET    /api/v1/clients")
	log.Println("  GET    /api/v1/clients/search?q=termo")
	log.Println("  POST   /api/v1/clients")
	log.Println("  PUT    /api/v1/clients/:client_id")
}

// ListClients lista os clientes do tenant
func (c *ClientController) ListClients(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	clients, err := c.manageClientsUC.List(ctx.Request.Context(), tenantID)
	if err != nil {
		log.Printf("Erro ao listar clientes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": clients, "total_count": len(clients)})
}

// SearchClients busca clientes por nome ou telefone (?q=termo)
func (c *ClientController) SearchClients(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	clients, err := c.manageClientsUC.Search(ctx.Request.Context(), tenantID, ctx.Query("q"))
	if err != nil {
		log.Printf("Erro na busca de clientes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": clients, "total_count": len(clients)})
}

// CreateClient cria um cliente
func (c *ClientController) CreateClient(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	var req usecase.SaveClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	client, err := c.manageClientsUC.Create(ctx.Request.Context(), tenantID, &req)
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, client)
}

// UpdateClient atualiza um cliente existente
func (c *ClientController) UpdateClient(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	clientID, err := uuid.Parse(ctx.Param("client_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client_id format"})
		return
	}

	var req usecase.SaveClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	client, err := c.manageClientsUC.Update(ctx.Request.Context(), tenantID, clientID, &req)
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, client)
}

func (c *ClientController) handleClientError(ctx *gin.Context, err error) {
	log.Printf("Erro em clientes: %v", err)

	switch {
	case errors.Is(err, entity.ErrClientNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNameRequired):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
