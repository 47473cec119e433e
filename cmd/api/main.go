package main

import (
	"context"
	"log"

	_ "fishshop-backend/api/swagger" // swagger docs
	"fishshop-backend/internal/config"
	"fishshop-backend/internal/database"
	"fishshop-backend/internal/handler"
	"fishshop-backend/internal/middleware"
	"fishshop-backend/internal/repository"
	"fishshop-backend/internal/service"
	"fishshop-backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Fish Shop Management API
// @version         1.0
// @description     Backend for a fish shop: inventory, sales, billing, advance orders, finance logging and stock tracking.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	cfg := config.Load()

	db, err := database.NewConnection(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	stockRepo := repository.NewStockRepository(db)
	fishItemRepo := repository.NewFishItemRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	billRepo := repository.NewBillRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	advanceOrderRepo := repository.NewAdvanceOrderRepository(db)

	userService := service.NewUserService(userRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, stockRepo, txManager, wsHub)
	salesService := service.NewSalesService(saleRepo, stockRepo, txManager, wsHub)
	stockService := service.NewStockService(stockRepo, fishItemRepo, wsHub)
	billingService := service.NewBillingService(billRepo, customerRepo, txManager)
	financeService := service.NewFinanceService(transactionRepo)
	advanceOrderService := service.NewAdvanceOrderService(advanceOrderRepo)
	dashboardService := service.NewDashboardService(saleRepo, inventoryRepo)

	// Bootstrap admin account if configured
	userService.SeedAdmin(context.Background(), cfg.Defaults.AdminUsername, cfg.Defaults.AdminPassword)

	// Initialize Handlers
	userHandler := handler.NewUserHandler(userService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	salesHandler := handler.NewSalesHandler(salesService)
	stockHandler := handler.NewStockHandler(stockService)
	billHandler := handler.NewBillHandler(billingService)
	financeHandler := handler.NewFinanceHandler(financeService)
	advanceOrderHandler := handler.NewAdvanceOrderHandler(advanceOrderService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	userHandler.RegisterRoutes(router.Group(""))
	inventoryHandler.RegisterRoutes(router.Group(""))
	salesHandler.RegisterRoutes(router.Group(""))
	stockHandler.RegisterRoutes(router.Group(""))
	billHandler.RegisterRoutes(router.Group(""))
	financeHandler.RegisterRoutes(router.Group(""))
	advanceOrderHandler.RegisterRoutes(router.Group(""))
	dashboardHandler.RegisterRoutes(router.Group(""))

	log.Printf("Server listening on :%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
