package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/schedule/application/usecase"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/schedule/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleController maneja as requisições HTTP da agenda
type ScheduleController struct {
	manageScheduleUC *usecase.ManageScheduleUseCase
}

// NewScheduleController cria uma nova instância do controlador
func NewScheduleController(manageScheduleUC *usecase.ManageScheduleUseCase) *ScheduleController {
	return &ScheduleController{
		manageScheduleUC: manageScheduleUC,
	}
}

// RegisterRoutes registra as rotas do controlador
func (c *ScheduleController) RegisterRoutes(router *gin.RouterGroup) {
	appointments := router.Group("/appointments")
	{
		appointments.GET("", c.ListDay)
		appointments.POST("", c.CreateAppointment)
		appointments.PATCH("/:appointment_id/status", c.UpdateStatus)
	}

	barbers := router.Group("/barbers")
	{
		barbers.GET("", c.ListBarbers)
		barbers.POST("", c.CreateBarber)
	}

	log.Println("Rotas Schedule disponíveis:")
	log.Println("  GET    /api/v1/appointments?date=YYYY-MM-DD")
	log.Println("  POST   /api/v1/appointments")
	log.Println("  PATCH  /api/v1/appointments/:appointment_id/status")
	log.Println("  GET    /api/v1/barbers")
	log.Println("  POST   /api/v1/barbers")
}

// ListDay lista os agendamentos de um dia (?date=YYYY-MM-DD)
func (c *ScheduleController) ListDay(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	date := ctx.Query("date")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required (format: YYYY-MM-DD)"})
		return
	}

	appointments, err := c.manageScheduleUC.ListDay(ctx.Request.Context(), tenantID, date)
	if err != nil {
		log.Printf("Erro ao listar agenda: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": appointments, "total_count": len(appointments)})
}

// CreateAppointment cria um agendamento
func (c *ScheduleController) CreateAppointment(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}
	userID, _ := middleware.UserID(ctx)

	var req usecase.CreateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	appointment, err := c.manageScheduleUC.CreateAppointment(ctx.Request.Context(), tenantID, userID, &req)
	if err != nil {
		c.handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, appointment)
}

// UpdateStatus transiciona o status do agendamento
func (c *ScheduleController) UpdateStatus(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	appointmentID, err := uuid.Parse(ctx.Param("appointment_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment_id format"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	appointment, err := c.manageScheduleUC.UpdateStatus(ctx.Request.Context(), tenantID, appointmentID, entity.AppointmentStatus(req.Status))
	if err != nil {
		c.handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

// ListBarbers lista os barbeiros do tenant
func (c *ScheduleController) ListBarbers(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	onlyActive := ctx.Query("active") == "true"
	barbers, err := c.manageScheduleUC.ListBarbers(ctx.Request.Context(), tenantID, onlyActive)
	if err != nil {
		log.Printf("Erro ao listar barbeiros: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": barbers, "total_count": len(barbers)})
}

// CreateBarber cria um barbeiro
func (c *ScheduleController) CreateBarber(ctx *gin.Context) {
	tenantID, ok := middleware.TenantID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return
	}

	var req usecase.SaveBarberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	barber, err := c.manageScheduleUC.SaveBarber(ctx.Request.Context(), tenantID, &req)
	if err != nil {
		c.handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, barber)
}

func (c *ScheduleController) handleScheduleError(ctx *gin.Context, err error) {
	log.Printf("Erro na agenda: %v", err)

	switch {
	case errors.Is(err, entity.ErrAppointmentNotFound), errors.Is(err, entity.ErrBarberNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidStatus),
		errors.Is(err, entity.ErrClientIDRequired),
		errors.Is(err, entity.ErrBarberIDRequired),
		errors.Is(err, entity.ErrServiceIDRequired),
		errors.Is(err, entity.ErrInvalidScheduledAt),
		errors.Is(err, entity.ErrInvalidDuration),
		errors.Is(err, entity.ErrInvalidCommissionRate):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
