package main

import (
	"log"

	"github.com/dealdesk/deal-management-api/internal/config"
	"github.com/dealdesk/deal-management-api/internal/constants"
	"github.com/dealdesk/deal-management-api/internal/database"
	"github.com/dealdesk/deal-management-api/internal/handlers"
	"github.com/dealdesk/deal-management-api/internal/middleware"
	"github.com/dealdesk/deal-management-api/internal/repository"
	"github.com/dealdesk/deal-management-api/internal/services"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Structured logger
	var logger *zap.Logger
	var err error
	if cfg.GinMode == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to add indexes: %v", err)
		}
	}

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.RequestLogger(logger))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionName, store))

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	dealRepo := repository.NewDealRepository(db)
	counselRepo := repository.NewCounselRepository(db)
	dirRepo := repository.NewDirectoryRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	prefStore := repository.NewPreferenceStore(db)

	// Services
	authService := services.NewAuthService(userRepo)
	dirService := services.NewDirectoryService(dirRepo)
	taskService := services.NewTaskService(taskRepo, dealRepo, dirService)
	dealService := services.NewDealService(dealRepo, taskRepo, counselRepo, companyRepo)
	companyService := services.NewCompanyService(companyRepo)
	counselService := services.NewCounselService(counselRepo, dealRepo, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService, dirService)
	dealHandler := handlers.NewDealHandler(dealService, companyService)
	counselHandler := handlers.NewCounselHandler(counselService)
	dirHandler := handlers.NewDirectoryHandler(dirService)
	prefHandler := handlers.NewPreferenceHandler(prefStore)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Deal Management API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Directory routes (protected)
		api.GET("/users", middleware.RequireAuth(), dirHandler.ListUsers)
		api.GET("/custom-assignees", middleware.RequireAuth(), dirHandler.ListCustomAssignees)
		api.POST("/custom-assignees", middleware.RequireAuth(), dirHandler.CreateCustomAssignee)
		api.GET("/law-firms", middleware.RequireAuth(), dirHandler.ListLawFirms)
		api.GET("/law-firms/:id/attorneys", middleware.RequireAuth(), dirHandler.ListFirmAttorneys)

		// Deal routes (protected)
		deals := api.Group("/deals")
		deals.Use(middleware.RequireAuth())
		{
			deals.GET("", dealHandler.ListDeals)
			deals.POST("", dealHandler.CreateDeal)
			deals.GET("/:id", middleware.RequireDealAccess(), dealHandler.GetDeal)
			deals.PATCH("/:id", middleware.RequireDealAccess(), dealHandler.UpdateDeal)
			deals.DELETE("/:id", middleware.RequireDealAccess(), dealHandler.DeleteDeal)
			deals.GET("/:id/stats", middleware.RequireDealAccess(), dealHandler.GetStats)
			deals.GET("/:id/working-group", middleware.RequireDealAccess(), dealHandler.GetWorkingGroup)
			deals.PUT("/:id/team", middleware.RequireDealAccess(), dealHandler.UpdateTeam)
			deals.GET("/:id/counsels", middleware.RequireDealAccess(), counselHandler.ListForDeal)
		}

		// Company routes (protected)
		api.PATCH("/companies/:id", middleware.RequireAuth(), dealHandler.UpdateCompany)

		// Counsel routes (protected)
		api.GET("/deal-counsels/working-set", middleware.RequireAuth(), counselHandler.GetWorkingSet)
		api.POST("/deal-counsels/replace", middleware.RequireAuth(), counselHandler.Replace)

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", middleware.RequireTaskAccess(), taskHandler.GetTask)
			tasks.PATCH("/:id", middleware.RequireTaskAccess(), taskHandler.UpdateTask)
			tasks.DELETE("/:id", middleware.RequireTaskAccess(), taskHandler.DeleteTask)
			tasks.POST("/:id/cycle-status", middleware.RequireTaskAccess(), taskHandler.CycleStatus)
		}

		// Preference routes (protected)
		api.GET("/preferences/:key", middleware.RequireAuth(), prefHandler.GetPreference)
		api.PUT("/preferences/:key", middleware.RequireAuth(), prefHandler.SetPreference)
	}

	// Start server
	logger.Info("Server starting", zap.String("addr", ":8080"))
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
