package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/crime_stats/internal/config"
	v1 "github.com/shenikar/crime_stats/internal/handler/http/v1"
	"github.com/shenikar/crime_stats/internal/metrics"
	"github.com/shenikar/crime_stats/internal/repository"
	"github.com/shenikar/crime_stats/internal/service"
	"github.com/shenikar/crime_stats/internal/webhook"
	"github.com/shenikar/crime_stats/pkg/logger"
	"github.com/shenikar/crime_stats/pkg/migrator"
	"github.com/shenikar/crime_stats/pkg/postgres"
	redisclient "github.com/shenikar/crime_stats/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/crime_stats/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Crime Statistics API
// @version 1.0
// @description Filtering and aggregation of city crime incidents for the statistics dashboard.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := migrator.Up(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	datasetRepo := repository.NewDatasetRepository(dbpool, redisClient, cfg.SnapshotTTL)

	// Загрузка данных и построение хранилища (один раз при старте)
	datasetService := service.NewDatasetService(datasetRepo, log, webhookPublisher)
	store, err := datasetService.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load incident dataset: %v", err)
	}

	// Метрики и сервис панели
	appMetrics := metrics.New()
	dashboardService := service.NewDashboardService(store, log, cfg, appMetrics)

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboardService, log)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), appMetrics.Middleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(appMetrics.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithField("version", store.Version()).Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel() // Останавливаем воркер вебхуков

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
