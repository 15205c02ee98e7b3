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
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/traffic_overlay/internal/config"
	v1 "github.com/shenikar/traffic_overlay/internal/handler/http/v1"
	"github.com/shenikar/traffic_overlay/internal/mapview"
	"github.com/shenikar/traffic_overlay/internal/notice"
	"github.com/shenikar/traffic_overlay/internal/repository"
	"github.com/shenikar/traffic_overlay/internal/service"
	"github.com/shenikar/traffic_overlay/internal/stream"
	"github.com/shenikar/traffic_overlay/pkg/logger"
	redisclient "github.com/shenikar/traffic_overlay/pkg/redis"

	_ "github.com/shenikar/traffic_overlay/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Traffic Overlay API
// @version 1.0
// @description Live traffic map overlay: incident reports, device location and driving routes.
// @host localhost:8080
// @BasePath /api/v1

// newNoticeBoard выбирает хранилище уведомлений: Redis, если адрес задан, иначе память
func newNoticeBoard(ctx context.Context, cfg *config.Config, log *logrus.Logger) (notice.Board, *redis.Client, error) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR is not set, notices are kept in memory")
		return notice.NewMemoryBoard(cfg.NoticeCapacity), nil, nil
	}

	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Successfully connected to Redis")

	deliver := cfg.WebhookURL != ""
	return notice.NewRedisBoard(redisClient, cfg.NoticeCapacity, deliver), redisClient, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	location, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Хранилище уведомлений
	board, redisClient, err := newNoticeBoard(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()

		// Воркер доставки уведомлений на вебхук
		if cfg.WebhookURL != "" {
			webhookWorker := notice.NewWebhookWorker(redisClient, log, cfg)
			webhookWorker.Start(ctx)
		}
	}

	// Инициализация репозиториев внешних сервисов
	httpClient := repository.NewHTTPClient(cfg.HTTPClientTimeout)
	reportRepo := repository.NewReportRepository(cfg.ReportsAPIURL, httpClient)
	routeRepo := repository.NewRouteRepository(cfg.ORSAPIURL, cfg.ORSAPIKey, cfg.ORSProfile, httpClient)

	// Поток обновлений карты для клиентов
	hub := stream.NewHub(log)
	defer hub.Close()

	// Сессия карты
	viewOpts := mapview.DefaultOptions()
	viewOpts.MaxZoom = cfg.MapMaxZoom
	viewOpts.Width = cfg.ViewportWidth
	viewOpts.Height = cfg.ViewportHeight

	session := service.NewSession(reportRepo, routeRepo, board, notice.Multi(board, hub), hub, log, service.SessionOptions{
		View: viewOpts,
		Tracker: service.TrackerOptions{
			WatchTimeout:  cfg.LocationWatchTimeout,
			ZoomThreshold: cfg.LocationZoomThreshold,
			Zoom:          cfg.LocationZoom,
		},
		PollInterval: cfg.ReportsPollInterval,
		FixTimeout:   cfg.LocationFixTimeout,
		Trigger:      cfg.NavigationTrigger,
		Location:     location,
	})
	if err := session.Start(ctx); err != nil {
		log.Fatalf("Failed to start map session: %v", err)
	}
	go session.Run(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(session, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	cancel()

	log.Info("Server gracefully stopped")
}
