package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/edsontomaz/gestao-financeira/internal/errors"
	"github.com/edsontomaz/gestao-financeira/internal/middleware"
	"github.com/edsontomaz/gestao-financeira/internal/models"
	"github.com/edsontomaz/gestao-financeira/internal/period"
	"github.com/edsontomaz/gestao-financeira/internal/services"
	"github.com/edsontomaz/gestao-financeira/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn func(profile models.Profile, input services.CreateTransactionInput) ([]*models.Transaction, error)
	getTransactionFn    func(profile models.Profile, id string) (*models.Transaction, error)
	listTransactionsFn  func(profile models.Profile, rng period.Range) ([]*models.Transaction, error)
	updateTransactionFn func(profile models.Profile, id string, input services.UpdateTransactionInput) (*models.Transaction, error)
	deleteTransactionFn func(profile models.Profile, id string) (int, error)
	importFn            func(profile models.Profile, candidates []*models.Transaction) (*services.ImportResult, error)
	exportFn            func(profile models.Profile) ([]*models.Transaction, error)
}

func (m *mockTransactionService) CreateTransaction(profile models.Profile, input services.CreateTransactionInput) ([]*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(profile, input)
	}
	return []*models.Transaction{{}}, nil
}

func (m *mockTransactionService) GetTransaction(profile models.Profile, id string) (*models.Transaction, error) {
	if m.getTransactionFn != nil {
		return m.getTransactionFn(profile, id)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) ListTransactions(profile models.Profile, rng period.Range) ([]*models.Transaction, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(profile, rng)
	}
	return []*models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(profile models.Profile, id string, input services.UpdateTransactionInput) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(profile, id, input)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(profile models.Profile, id string) (int, error) {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(profile, id)
	}
	return 1, nil
}

func (m *mockTransactionService) ImportTransactions(profile models.Profile, candidates []*models.Transaction) (*services.ImportResult, error) {
	if m.importFn != nil {
		return m.importFn(profile, candidates)
	}
	return &services.ImportResult{}, nil
}

func (m *mockTransactionService) ExportTransactions(profile models.Profile) ([]*models.Transaction, error) {
	if m.exportFn != nil {
		return m.exportFn(profile)
	}
	return []*models.Transaction{}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- mock summary service ---

type mockSummaryService struct {
	getSummaryFn func(profile models.Profile) (*services.Summary, error)
}

func (m *mockSummaryService) GetSummary(profile models.Profile) (*services.Summary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(profile)
	}
	return &services.Summary{}, nil
}

var _ services.SummaryServicer = (*mockSummaryService)(nil)

// --- mock backup service ---

type mockBackupService struct {
	backupFn  func(ctx context.Context, profile models.Profile) (int, error)
	restoreFn func(ctx context.Context, profile models.Profile) (*services.RestoreResult, error)
	statusFn  func(ctx context.Context, profile models.Profile) (*services.BackupStatus, error)
}

func (m *mockBackupService) Backup(ctx context.Context, profile models.Profile) (int, error) {
	if m.backupFn != nil {
		return m.backupFn(ctx, profile)
	}
	return 0, nil
}

func (m *mockBackupService) Restore(ctx context.Context, profile models.Profile) (*services.RestoreResult, error) {
	if m.restoreFn != nil {
		return m.restoreFn(ctx, profile)
	}
	return &services.RestoreResult{}, nil
}

func (m *mockBackupService) Status(ctx context.Context, profile models.Profile) (*services.BackupStatus, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, profile)
	}
	return &services.BackupStatus{}, nil
}

var _ services.BackupServicer = (*mockBackupService)(nil)

// --- helpers ---

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	profiles := r.Group("/profiles/:profile", middleware.ProfileScope())
	profiles.POST("/transactions", handler.CreateTransaction)
	profiles.GET("/transactions", handler.ListTransactions)
	profiles.GET("/transactions/export", handler.ExportTransactions)
	profiles.POST("/transactions/import", handler.ImportTransactions)
	profiles.GET("/transactions/:id", handler.GetTransaction)
	profiles.PUT("/transactions/:id", handler.UpdateTransaction)
	profiles.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
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

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(profile models.Profile, input services.CreateTransactionInput) ([]*models.Transaction, error) {
				return []*models.Transaction{{
					ID:            "t1",
					Profile:       profile,
					Type:          input.Type,
					Amount:        input.Amount,
					Description:   input.Description,
					Category:      input.Category,
					PaymentMethod: input.PaymentMethod,
				}}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, http.MethodPost, "/profiles/personal/transactions",
			`{"type":"expense","amount":"35.90","description":"Groceries","category":"food","payment_method":"cash"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		result := parseJSON(t, rec)
		records, ok := result["transactions"].([]interface{})
		if !ok || len(records) != 1 {
			t.Fatalf("expected 1 transaction in response, got: %v", result)
		}
	})

	t.Run("rejects unknown profile", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, http.MethodPost, "/profiles/corporate/transactions",
			`{"type":"expense","amount":"35.90","description":"Groceries","category":"food","payment_method":"cash"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PROFILE")
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, http.MethodPost, "/profiles/personal/transactions",
			`{"type":"expense","amount":"35.90","description":"Groceries","category":"food","payment_method":"cheque"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("rejects unparseable due date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, http.MethodPost, "/profiles/personal/transactions",
			`{"type":"expense","amount":"35.90","description":"Groceries","category":"food","payment_method":"cash","due_date":"someday"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("propagates service error", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(models.Profile, services.CreateTransactionInput) ([]*models.Transaction, error) {
				return nil, apperrors.ErrInvalidCategory
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, http.MethodPost, "/profiles/personal/transactions",
			`{"type":"expense","amount":"35.90","description":"Groceries","category":"salary","payment_method":"cash"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CATEGORY")
	})
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("passes period filter to the service", func(t *testing.T) {
		var gotRange period.Range
		txSvc := &mockTransactionService{
			listTransactionsFn: func(_ models.Profile, rng period.Range) ([]*models.Transaction, error) {
				gotRange = rng
				return []*models.Transaction{}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, http.MethodGet, "/profiles/personal/transactions?period=last_month", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotRange != period.RangeLastMonth {
			t.Errorf("expected range last_month, got %q", gotRange)
		}
	})

	t.Run("rejects unknown period", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, http.MethodGet, "/profiles/personal/transactions?period=fortnight", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("paginates when requested", func(t *testing.T) {
		records := make([]*models.Transaction, 5)
		for i := range records {
			records[i] = &models.Transaction{ID: "t" + string(rune('a'+i))}
		}
		txSvc := &mockTransactionService{
			listTransactionsFn: func(models.Profile, period.Range) ([]*models.Transaction, error) {
				return records, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, http.MethodGet, "/profiles/personal/transactions?page=2&page_size=2", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data, ok := result["data"].([]interface{})
		if !ok || len(data) != 2 {
			t.Fatalf("expected page of 2 items, got: %v", result)
		}
		if result["total_items"] != float64(5) {
			t.Errorf("expected total_items 5, got %v", result["total_items"])
		}
	})
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	t.Run("returns 404 when missing", func(t *testing.T) {
		txSvc := &mockTransactionService{
			getTransactionFn: func(models.Profile, string) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, http.MethodGet, "/profiles/personal/transactions/missing", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("passes only provided fields", func(t *testing.T) {
		var gotInput services.UpdateTransactionInput
		txSvc := &mockTransactionService{
			updateTransactionFn: func(_ models.Profile, _ string, input services.UpdateTransactionInput) (*models.Transaction, error) {
				gotInput = input
				return &models.Transaction{ID: "t1"}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, http.MethodPut, "/profiles/personal/transactions/t1", `{"amount":"20.00"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotInput.Amount == nil || !gotInput.Amount.Equal(decimal.RequireFromString("20.00")) {
			t.Errorf("expected amount 20.00, got %v", gotInput.Amount)
		}
		if gotInput.Description != nil || gotInput.Category != nil {
			t.Error("expected omitted fields to stay nil")
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("reports cascade count", func(t *testing.T) {
		txSvc := &mockTransactionService{
			deleteTransactionFn: func(models.Profile, string) (int, error) { return 3, nil },
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, http.MethodDelete, "/profiles/personal/transactions/t1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if result := parseJSON(t, rec); result["deleted"] != float64(3) {
			t.Errorf("expected deleted 3, got %v", result["deleted"])
		}
	})
}

func TestTransactionHandler_ImportTransactions(t *testing.T) {
	t.Run("returns import counts", func(t *testing.T) {
		txSvc := &mockTransactionService{
			importFn: func(_ models.Profile, candidates []*models.Transaction) (*services.ImportResult, error) {
				return &services.ImportResult{Imported: len(candidates)}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, http.MethodPost, "/profiles/personal/transactions/import",
			`[{"type":"expense","amount":"10.00","description":"Lunch","category":"food","payment_method":"cash"}]`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if result := parseJSON(t, rec); result["imported"] != float64(1) {
			t.Errorf("expected imported 1, got %v", result["imported"])
		}
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, http.MethodPost, "/profiles/personal/transactions/import", `{"not":"an array"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
