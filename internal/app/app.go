package app

import (
	"fmt"

	"agenda_backend/internal/config"
	"agenda_backend/internal/handlers"
	"agenda_backend/internal/logger"
	"agenda_backend/internal/middleware"
	"agenda_backend/internal/models"
	"agenda_backend/internal/repositories"
	"agenda_backend/internal/routes"
	"agenda_backend/internal/services"
	"agenda_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run starts the API server. It only returns on a fatal startup error.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	log := logger.GetLogger()

	db, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Tokens past their 31-day window are dead weight; sweep them once
	// per boot. The auth middleware rejects them either way.
	if err := repositories.NewAccessTokenRepository().DeleteExpired(db); err != nil {
		logger.Warn("Failed to purge expired tokens", "error", err)
	}

	router, err := SetupRouter(db, cfg)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Server starting", "addr", addr, "env", cfg.Server.Env)

	if err := router.Run(addr); err != nil {
		logger.Fatal("Server stopped", "error", err)
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Event{},
		&models.AccessToken{},
	)
}

// SetupRouter builds the gin engine with middleware, services and
// routes. Tests call it with their own db.
func SetupRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:         cfg.Storage.Type,
		BasePath:     cfg.Storage.BasePath,
		BaseURL:      cfg.Storage.BaseURL,
		Bucket:       cfg.Storage.Bucket,
		Region:       cfg.Storage.Region,
		AccessKey:    cfg.Storage.AccessKey,
		SecretKey:    cfg.Storage.SecretKey,
		Endpoint:     cfg.Storage.Endpoint,
		UsePathStyle: cfg.Storage.UsePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	container := services.NewServiceContainer(services.Deps{
		Storage:      store,
		MaxPhotoSize: cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	})

	appHandlers := handlers.NewAppHandlers(container, store)
	tokenRepo := repositories.NewAccessTokenRepository()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	routes.RegisterRoutes(router, appHandlers, tokenRepo)

	return router, nil
}
