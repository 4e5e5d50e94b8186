package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/edsontomaz/gestao-financeira/internal/config"
	"github.com/edsontomaz/gestao-financeira/internal/handlers"
	"github.com/edsontomaz/gestao-financeira/internal/ledger"
	"github.com/edsontomaz/gestao-financeira/internal/logger"
	"github.com/edsontomaz/gestao-financeira/internal/middleware"
	"github.com/edsontomaz/gestao-financeira/internal/services"
	"github.com/edsontomaz/gestao-financeira/internal/storage"
	drivestorage "github.com/edsontomaz/gestao-financeira/internal/storage/drive"
	memorystorage "github.com/edsontomaz/gestao-financeira/internal/storage/memory"
	"github.com/edsontomaz/gestao-financeira/internal/validator"

	_ "github.com/edsontomaz/gestao-financeira/internal/docs" // Import swagger docs
)

// @title           Gestao Financeira API
// @version         1.0
// @description     Per-profile financial ledger: income/expense records, credit-card installment series, monthly summaries, and snapshot backup/restore to remote storage.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the ledger backend (in-memory by default, sqlite when configured)
	store, err := ledger.Open(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	log.Infof("Ledger backend: %s", appConfig.LedgerBackend)

	// Open the remote snapshot storage backend
	remote, err := openRemoteStorage(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open remote storage: %w", err)
	}
	log.Infof("Snapshot storage backend: %s", appConfig.StorageBackend)

	// Register custom request validators
	validator.Register()

	// Initialize services
	transactionService := services.NewTransactionService(store)
	summaryService := services.NewSummaryService(store)
	backupService := services.NewBackupService(store, remote, appConfig.BackupFolder, appConfig.BackupTimeout)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	backupHandler := handlers.NewBackupHandler(backupService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group, scoped per profile
	v1 := router.Group("/api/v1")
	profiles := v1.Group("/profiles/:profile")
	profiles.Use(middleware.ProfileScope())

	transactions := profiles.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/export", transactionHandler.ExportTransactions)
	transactions.POST("/import", transactionHandler.ImportTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	profiles.GET("/summary", summaryHandler.GetSummary)
	profiles.POST("/backup", backupHandler.Backup)
	profiles.POST("/restore", backupHandler.Restore)
	profiles.GET("/backup/status", backupHandler.Status)

	log.Infof("Starting gestao-financeira server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// openRemoteStorage builds the snapshot storage backend selected by
// configuration. The in-memory backend keeps development working without
// Google credentials.
func openRemoteStorage(cfg *config.Config) (storage.RemoteStorage, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendDrive:
		return drivestorage.NewClient(context.Background(), cfg.GoogleCredentialsFile)
	case config.StorageBackendMemory, "":
		return memorystorage.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
