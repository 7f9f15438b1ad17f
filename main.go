package main

import (
	"database/sql"
	"log"

	authUseCase "github.com/Smart-Agenda-Pro/SmartAgenda/src/auth/application/usecase"
	authController "github.com/Smart-Agenda-Pro/SmartAgenda/src/auth/infrastructure/controller"
	authPersistence "github.com/Smart-Agenda-Pro/SmartAgenda/src/auth/infrastructure/persistence"
	catalogUseCase "github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/application/usecase"
	catalogCache "github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/infrastructure/cache"
	catalogController "github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/infrastructure/controller"
	catalogPersistence "github.com/Smart-Agenda-Pro/SmartAgenda/src/catalog/infrastructure/persistence"
	clientUseCase "github.com/Smart-Agenda-Pro/SmartAgenda/src/client/application/usecase"
	clientController "github.com/Smart-Agenda-Pro/SmartAgenda/src/client/infrastructure/controller"
	clientPersistence "github.com/Smart-Agenda-Pro/SmartAgenda/src/client/infrastructure/persistence"
	reportUseCase "github.com/Smart-Agenda-Pro/SmartAgenda/src/report/application/usecase"
	reportController "github.com/Smart-Agenda-Pro/SmartAgenda/src/report/infrastructure/controller"
	saleUseCase "github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/application/usecase"
	saleController "github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/infrastructure/controller"
	salePersistence "github.com/Smart-Agenda-Pro/SmartAgenda/src/sale/infrastructure/persistence"
	scheduleUseCase "github.com/Smart-Agenda-Pro/SmartAgenda/src/schedule/application/usecase"
	scheduleController "github.com/Smart-Agenda-Pro/SmartAgenda/src/schedule/infrastructure/controller"
	schedulePersistence "github.com/Smart-Agenda-Pro/SmartAgenda/src/schedule/infrastructure/persistence"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/shared/infrastructure/config"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/shared/infrastructure/middleware"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/shared/infrastructure/migrations"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("SmartAgenda API - Iniciando...")

	cfg := config.Load()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Tenant-ID"},
		AllowCredentials: true,
	}))

	if cfg.PrometheusEnabled {
		log.Println("Registrando endpoint /metrics")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Métricas Prometheus desabilitadas")
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok", "service": "smartagenda-api"})
	})

	db, err := cfg.ConnectDB()
	if err != nil {
		log.Fatalf("Erro ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()
	log.Println("Conexão com o banco de dados estabelecida")

	if err := migrations.Run(db); err != nil {
		log.Fatalf("Erro ao aplicar migrações: %v", err)
	}

	v1 := router.Group("/api/v1")

	// Rotas públicas (login)
	userRepo := authPersistence.NewUserPostgresRepository(db)
	loginUC := authUseCase.NewLoginUseCase(userRepo, cfg.JWTSecret)
	authCtrl := authController.NewAuthController(loginUC)
	authCtrl.RegisterRoutes(v1)

	// Rotas protegidas por JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthRequired(cfg.JWTSecret))

	setupSaleModule(protected, db)
	setupCatalogModule(protected, db)
	setupClientModule(protected, db)
	setupScheduleModule(protected, db)
	setupReportModule(protected, db)

	log.Printf("Servidor iniciado em http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Erro ao iniciar o servidor: %v", err)
	}
}

// setupSaleModule configura o módulo de vendas (PDV)
func setupSaleModule(router *gin.RouterGroup, db *sql.DB) {
	saleRepo := salePersistence.NewSalePostgresRepository(db)

	createSaleUC := saleUseCase.NewCreateSaleUseCase(saleRepo)
	listSalesUC := saleUseCase.NewListSalesUseCase(saleRepo)
	getSaleUC := saleUseCase.NewGetSaleUseCase(saleRepo)

	saleCtrl := saleController.NewSaleController(createSaleUC, listSalesUC, getSaleUC)
	saleCtrl.RegisterRoutes(router)
}

// setupCatalogModule configura o módulo de catálogo (serviços e produtos)
func setupCatalogModule(router *gin.RouterGroup, db *sql.DB) {
	serviceRepo := catalogPersistence.NewServicePostgresRepository(db)
	productRepo := catalogPersistence.NewProductPostgresRepository(db)
	cache := catalogCache.NewCatalogCache()

	saveServiceUC := catalogUseCase.NewSaveServiceUseCase(serviceRepo, cache)
	saveProductUC := catalogUseCase.NewSaveProductUseCase(productRepo, cache)
	listCatalogUC := catalogUseCase.NewListCatalogUseCase(serviceRepo, productRepo)
	searchCatalogUC := catalogUseCase.NewSearchCatalogUseCase(serviceRepo, productRepo, cache)
	adjustStockUC := catalogUseCase.NewAdjustStockUseCase(productRepo, cache)

	catalogCtrl := catalogController.NewCatalogController(saveServiceUC, saveProductUC, listCatalogUC, searchCatalogUC, adjustStockUC)
	catalogCtrl.RegisterRoutes(router)
}

// setupClientModule configura o módulo de clientes
func setupClientModule(router *gin.RouterGroup, db *sql.DB) {
	clientRepo := clientPersistence.NewClientPostgresRepository(db)
	manageClientsUC := clientUseCase.NewManageClientsUseCase(clientRepo)

	clientCtrl := clientController.NewClientController(manageClientsUC)
	clientCtrl.RegisterRoutes(router)
}

// setupScheduleModule configura o módulo de agenda (agendamentos e barbeiros)
func setupScheduleModule(router *gin.RouterGroup, db *sql.DB) {
	appointmentRepo := schedulePersistence.NewAppointmentPostgresRepository(db)
	barberRepo := schedulePersistence.NewBarberPostgresRepository(db)
	manageScheduleUC := scheduleUseCase.NewManageScheduleUseCase(appointmentRepo, barberRepo)

	scheduleCtrl := scheduleController.NewScheduleController(manageScheduleUC)
	scheduleCtrl.RegisterRoutes(router)
}

// setupReportModule configura o módulo de relatórios
func setupReportModule(router *gin.RouterGroup, db *sql.DB) {
	dailyReportUC := reportUseCase.NewDailyReportUseCase(db)
	monthlyReportUC := reportUseCase.NewMonthlyReportUseCase(db)

	reportCtrl := reportController.NewReportController(dailyReportUC, monthlyReportUC)
	reportCtrl.RegisterRoutes(router)
}
