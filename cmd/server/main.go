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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/petcare-br/service-shelter/internal/application"
	"github.com/petcare-br/service-shelter/internal/config"
	"github.com/petcare-br/service-shelter/internal/database"
	"github.com/petcare-br/service-shelter/internal/events"
	"github.com/petcare-br/service-shelter/internal/handler"
	"github.com/petcare-br/service-shelter/internal/logger"
	"github.com/petcare-br/service-shelter/internal/middleware"
	"github.com/petcare-br/service-shelter/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-shelter")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-shelter",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.PetModel{},
			&repository.TutorModel{},
			&repository.AdocaoModel{},
			&repository.CuidadoModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig.URL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize Kafka producer for lifecycle events
	var publisher events.Publisher
	if cfg.KafkaConfig.Enabled {
		producer := events.NewProducer(cfg.KafkaConfig.Brokers, log)
		defer func() { _ = producer.Close() }()
		publisher = producer
	}

	// Initialize repositories and the transactional unit of work
	repos := repository.NewRepositories(db)
	uow := repository.NewTxManager(db)

	// Initialize application services
	petService := application.NewPetService(repos, uow, publisher, log)
	tutorService := application.NewTutorService(repos, log)
	careService := application.NewCareService(repos, log)
	adoptionService := application.NewAdoptionService(repos, log)

	// Initialize HTTP handlers
	petHandler := handler.NewPetHandler(petService)
	tutorHandler := handler.NewTutorHandler(tutorService)
	careHandler := handler.NewCareHandler(careService)
	adoptionHandler := handler.NewAdoptionHandler(adoptionService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	// Register health and metrics routes
	healthHandler := handler.NewHealthHandler(db)
	healthHandler.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register API routes
	petHandler.RegisterRoutes(&router.RouterGroup)
	tutorHandler.RegisterRoutes(&router.RouterGroup)
	careHandler.RegisterRoutes(&router.RouterGroup)
	adoptionHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-shelter...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-shelter stopped")
}
