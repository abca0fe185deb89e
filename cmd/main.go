package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/fireduino/fireduino-api/internal/alert"
	"github.com/fireduino/fireduino-api/internal/config"
	v1 "github.com/fireduino/fireduino-api/internal/handler/http/v1"
	"github.com/fireduino/fireduino-api/internal/ingest"
	"github.com/fireduino/fireduino-api/internal/repository"
	"github.com/fireduino/fireduino-api/internal/routing"
	"github.com/fireduino/fireduino-api/internal/service"
	"github.com/fireduino/fireduino-api/internal/session"
	"github.com/fireduino/fireduino-api/internal/sms"
	"github.com/fireduino/fireduino-api/pkg/logger"
	"github.com/fireduino/fireduino-api/pkg/postgres"
	redisclient "github.com/fireduino/fireduino-api/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/fireduino/fireduino-api/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Fireduino API
// @version 1.0
// @description Backend for the Fireduino fire detection and dispatch platform.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Run migrations
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Connect to PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Initialize Redis client
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Initialize the SMS delivery pipeline: Redis-backed queue plus a
	// Twilio worker draining it.
	sender := sms.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, cfg.SMSTimeout, log)
	alertPublisher := alert.NewRedisPublisher(redisClient)
	alertWorker := alert.NewWorker(redisClient, sender, log, cfg)
	alertWorker.Start(ctx)

	// Initialize the travel-distance resolver
	routingClient := routing.NewDistanceMatrixClient(cfg.DistanceMatrixURL, cfg.DistanceMatrixKey, cfg.RoutingTimeout)
	resolver := routing.NewResolver(routingClient, log)

	// Initialize repositories
	departmentRepo := repository.NewDepartmentRepository(dbpool, redisClient)
	establishmentRepo := repository.NewEstablishmentRepository(dbpool)
	fireduinoRepo := repository.NewFireduinoRepository(dbpool)
	incidentRepo := repository.NewIncidentRepository(dbpool)
	userRepo := repository.NewUserRepository(dbpool)
	auditRepo := repository.NewAuditRepository(dbpool)

	// Initialize services
	departmentService := service.NewDepartmentService(departmentRepo, log)
	establishmentService := service.NewEstablishmentService(establishmentRepo, log)
	fireduinoService := service.NewFireduinoService(fireduinoRepo, log)
	incidentService := service.NewIncidentService(incidentRepo, auditRepo, log, cfg)
	userService := service.NewUserService(userRepo, establishmentRepo, auditRepo, log)
	auditService := service.NewAuditService(auditRepo, log)
	dispatchService := service.NewDispatchService(
		fireduinoRepo,
		establishmentRepo,
		departmentRepo,
		incidentRepo,
		resolver,
		alertPublisher,
		log,
		cfg,
	)

	// Initialize sessions
	sessions := session.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Start the device event listener feeding the dispatch pipeline
	listener := ingest.NewListener(cfg.DeviceEventURL, dispatchService, log)
	listener.Start(ctx)

	// Initialize handlers
	handler := v1.NewHandler(
		departmentService,
		establishmentService,
		fireduinoService,
		userService,
		incidentService,
		auditService,
		sessions,
		log,
		cfg,
	)

	// Set up the Gin router
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Swagger UI route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start the HTTP server
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

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

	log.Info("Server gracefully stopped")
}
