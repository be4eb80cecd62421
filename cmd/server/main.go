package main

import (
	"time"

	"wholesale_manager/internal/config"
	"wholesale_manager/internal/database"
	"wholesale_manager/internal/handlers"
	"wholesale_manager/internal/logger"
	"wholesale_manager/internal/migrations"
	"wholesale_manager/internal/redis"
	"wholesale_manager/internal/repository"
	"wholesale_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	transportRepo := repository.NewTransportRepository(db)

	// Initialize services
	sessionTTL := time.Duration(cfg.SessionTimeout) * time.Second
	wizardTTL := time.Duration(cfg.WizardTTL) * time.Second

	authService := services.NewAuthService(userRepo, redisClient, sessionTTL)
	userService := services.NewUserService(userRepo)
	customerService := services.NewCustomerService(customerRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	productService := services.NewProductService(productRepo)
	employeeService := services.NewEmployeeService(employeeRepo)
	orderService := services.NewOrderService(orderRepo, orderItemRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	transportService := services.NewTransportService(transportRepo)
	wizardService := services.NewWizardService(redisClient, orderRepo, productRepo, paymentRepo, customerRepo, employeeRepo, wizardTTL)
	bulkService := services.NewBulkService(customerRepo, supplierRepo, productRepo, employeeRepo, orderRepo, orderItemRepo, paymentRepo, transportRepo)
	dashboardService := services.NewDashboardService(customerRepo, supplierRepo, productRepo, employeeRepo, orderRepo, orderItemRepo, paymentRepo, transportRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	recordHandler := handlers.NewRecordHandler(customerService, supplierService, productService, employeeService)
	orderHandler := handlers.NewOrderHandler(orderService, paymentService, transportService)
	wizardHandler := handlers.NewWizardHandler(wizardService)
	bulkHandler := handlers.NewBulkHandler(bulkService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	userHandler := handlers.NewUserHandler(userService)

	// Setup routes
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/api/auth/login", authHandler.Login)

	api := router.Group("/api", handlers.AuthRequired(authService))
	{
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", authHandler.Me)

		// Dashboard
		api.GET("/dashboard/summary", dashboardHandler.Summary)
		api.GET("/dashboard/top-products", dashboardHandler.TopProducts)
		api.GET("/dashboard/transport-status", dashboardHandler.TransportStatus)
		api.GET("/dashboard/recent-orders", dashboardHandler.RecentOrders)

		// Master record screens: Staff may read and create,
		// update/delete need the Manager role.
		api.GET("/customers", recordHandler.ListCustomers)
		api.GET("/customers/:id", recordHandler.GetCustomer)
		api.POST("/customers", recordHandler.CreateCustomer)
		api.GET("/suppliers", recordHandler.ListSuppliers)
		api.GET("/suppliers/:id", recordHandler.GetSupplier)
		api.POST("/suppliers", recordHandler.CreateSupplier)
		api.GET("/products", recordHandler.ListProducts)
		api.GET("/products/:id", recordHandler.GetProduct)
		api.POST("/products", recordHandler.CreateProduct)
		api.GET("/employees", recordHandler.ListEmployees)
		api.GET("/employees/:id", recordHandler.GetEmployee)
		api.POST("/employees", recordHandler.CreateEmployee)

		// Orders, payments, transportation
		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.POST("/orders/:id/cancel", orderHandler.CancelOrder)
		api.GET("/payments", orderHandler.ListPayments)
		api.GET("/payments/:id", orderHandler.GetPayment)
		api.POST("/payments", orderHandler.CreatePayment)
		api.GET("/transportation", orderHandler.ListTransports)
		api.GET("/transportation/:id", orderHandler.GetTransport)
		api.POST("/transportation", orderHandler.CreateTransport)

		// Order wizard
		api.POST("/wizard", wizardHandler.Start)
		api.GET("/wizard/:token", wizardHandler.Get)
		api.POST("/wizard/:token/items", wizardHandler.AddItem)
		api.PUT("/wizard/:token/items/:product_id", wizardHandler.UpdateItem)
		api.DELETE("/wizard/:token/items/:product_id", wizardHandler.RemoveItem)
		api.POST("/wizard/:token/checkout", wizardHandler.Checkout)
		api.POST("/wizard/:token/back", wizardHandler.BackToCart)
		api.POST("/wizard/:token/payment", wizardHandler.CapturePayment)
		api.POST("/wizard/:token/confirm", wizardHandler.Confirm)
		api.DELETE("/wizard/:token", wizardHandler.Cancel)

		manager := api.Group("", handlers.ManagerOnly())
		{
			manager.PUT("/customers/:id", recordHandler.UpdateCustomer)
			manager.DELETE("/customers/:id", recordHandler.DeleteCustomer)
			manager.PUT("/suppliers/:id", recordHandler.UpdateSupplier)
			manager.DELETE("/suppliers/:id", recordHandler.DeleteSupplier)
			manager.PUT("/products/:id", recordHandler.UpdateProduct)
			manager.DELETE("/products/:id", recordHandler.DeleteProduct)
			manager.PUT("/employees/:id", recordHandler.UpdateEmployee)
			manager.DELETE("/employees/:id", recordHandler.DeleteEmployee)

			manager.PUT("/orders/:id", orderHandler.UpdateOrder)
			manager.PUT("/payments/:id", orderHandler.UpdatePayment)
			manager.DELETE("/payments/:id", orderHandler.DeletePayment)
			manager.PUT("/transportation/:id", orderHandler.UpdateTransport)
			manager.DELETE("/transportation/:id", orderHandler.DeleteTransport)

			// Bulk import/export
			manager.GET("/bulk/:entity/export", bulkHandler.Export)
			manager.POST("/bulk/:entity/import", bulkHandler.Import)
			manager.GET("/bulk/:entity/template", bulkHandler.Template)

			// User management
			manager.GET("/users", userHandler.List)
			manager.POST("/users", userHandler.Create)
			manager.PUT("/users/:id/active", userHandler.SetActive)
			manager.PUT("/users/:id/password", userHandler.ResetPassword)
			manager.DELETE("/users/:id", userHandler.Delete)
		}
	}

	// Start server
	log.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
