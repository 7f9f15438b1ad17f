package controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/report/application/usecase"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// ReportController maneja as requisições HTTP de relatórios
type ReportController struct {
	dailyReportUC   *usecase.DailyReportUseCase
	monthlyReportUC *usecase.MonthlyReportUseCase
}

// NewReportController cria uma nova instância do controlador
func NewReportController(dailyReportUC *usecase.DailyReportUseCase, monthlyReportUC *usecase.MonthlyReportUseCase) *ReportController {
	return &ReportController{
		dailyReportUC:   dailyReportUC,
		monthlyReportUC: monthlyReportUC,
	}
}

// RegisterRoutes registra as rotas do controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/daily", c.DailyReport)
		reports.GET("/monthly", c.MonthlyReport)
	}

	log.Println("Rotas Report disponíveis:")
	log.Println("  GET    /api/v1/reports/daily?date=YYYY-MM-DD")
	log.Println("  GET    /api/v1/reports/monthly?month=YYYY-MM")
}

// DailyReport gera o relatório diário de vendas
func (c *ReportController) DailyReport(ctx *gin.Context) {
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

	resp, err := c.dailyReportUC.Execute(ctx.Request.Context(), tenantID, date)
	if err != nil {
		log.Printf("Erro no relatório diário: %v", err)

		if strings.Contains(err.Error(), "invalid date format") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format", "details": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating daily report", "details": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// MonthlyReport gera o resumo mensal de vendas
func (c *ReportController) MonthlyReport(ctx *gin.Context) {
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

	resp, err := c.monthlyReportUC.Execute(ctx.Request.Context(), tenantID, month)
	if err != nil {
		log.Printf("Erro no relatório mensal: %v", err)

		if strings.Contains(err.Error(), "invalid month format") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format", "details": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating monthly report", "details": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
