package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appointment-booking-service/config"
	deliveryHttp "appointment-booking-service/internal/delivery/http"
	"appointment-booking-service/internal/delivery/http/handler"
	"appointment-booking-service/internal/delivery/http/middleware"
	"appointment-booking-service/internal/infrastructure/cache"
	"appointment-booking-service/internal/infrastructure/database"
	"appointment-booking-service/internal/repository"
	"appointment-booking-service/internal/usecase"
	"appointment-booking-service/pkg/credentials"
	"appointment-booking-service/pkg/jwt"
	"appointment-booking-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	credentialStore := credentials.NewConfigStore(cfg.Admin)

	bookingRepo := repository.NewBookingRepository()

	log := logrus.StandardLogger()

	bookingUsecase := usecase.NewBookingUsecase(db, log, bookingRepo, customValidator)
	reportUsecase := usecase.NewReportUsecase(db, log, bookingRepo)
	authUsecase := usecase.NewAuthUsecase(log, credentialStore, jwtService, redisClient)

	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase)
	reportHandler := handler.NewReportHandler(reportUsecase)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(authHandler, bookingHandler, reportHandler, healthHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
