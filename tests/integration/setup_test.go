package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edsontomaz/gestao-financeira/internal/handlers"
	"github.com/edsontomaz/gestao-financeira/internal/ledger"
	"github.com/edsontomaz/gestao-financeira/internal/logger"
	"github.com/edsontomaz/gestao-financeira/internal/middleware"
	"github.com/edsontomaz/gestao-financeira/internal/services"
	memorystorage "github.com/edsontomaz/gestao-financeira/internal/storage/memory"
	"github.com/edsontomaz/gestao-financeira/internal/validator"
)

// testApp holds the full application stack for integration tests: an
// in-memory ledger and an in-memory snapshot storage behind the real router.
type testApp struct {
	Store  *ledger.MemoryStore
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by in-memory backends.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	store := ledger.NewMemoryStore()
	remote := memorystorage.New()

	// Services
	transactionService := services.NewTransactionService(store)
	summaryService := services.NewSummaryService(store)
	backupService := services.NewBackupService(store, remote, "TestBackups", time.Second)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	backupHandler := handlers.NewBackupHandler(backupService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

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

	return &testApp{Store: store, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
