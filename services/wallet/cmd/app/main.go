package main

import (
	"boost-market/pkg/cache"
	"boost-market/pkg/config"
	"boost-market/pkg/database"
	"boost-market/pkg/logger"
	"boost-market/pkg/queue"
	"boost-market/pkg/s3"
	app "boost-market/services/wallet/internal/app"
)

// @title           Wallet Service API
// @version         1.0
// @description     Wallet ledger and deposit settlement for the Boost Market platform

// @host      localhost:8004
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, admin review notifications disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, redisClient, s3Client, queueClient)
}
