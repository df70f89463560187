package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boost-market/pkg/config"
	"boost-market/pkg/jwt"
	"boost-market/pkg/logger"
	"boost-market/pkg/middleware"
	"boost-market/pkg/s3"
	catalogHTTP "boost-market/services/catalog/internal/controller/http"
	"boost-market/services/catalog/internal/repo/persistent"
	"boost-market/services/catalog/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, s3Client *s3.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	planRepo := persistent.NewPlanRepository(db)
	configRepo := persistent.NewConfigRepository(db)

	catalogUseCase := usecase.NewCatalogUseCase(planRepo, configRepo, s3Client, redisClient, log)
	catalogHandler := catalogHTTP.NewCatalogHandler(catalogUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	{
		// Public catalog surface
		api.GET("/plans", catalogHandler.GetPlans)
		api.GET("/plans/:id", catalogHandler.GetPlan)
		api.GET("/config/payment", catalogHandler.GetPaymentConfig)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(jwtService))
		admin.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("/plans", catalogHandler.CreatePlan)
			admin.PUT("/plans/:id", catalogHandler.UpdatePlan)
			admin.DELETE("/plans/:id", catalogHandler.DeletePlan)
			admin.PUT("/config/payment", catalogHandler.UpdatePaymentConfig)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Catalog service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down catalog service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Catalog service exited")
}
