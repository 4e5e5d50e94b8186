package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/edsontomaz/gestao-financeira/internal/models"
	"github.com/edsontomaz/gestao-financeira/internal/period"
	"github.com/edsontomaz/gestao-financeira/internal/storage"
)

// CreateTransactionInput carries the fields of a create request. When the
// payment method is credit_card and Installments >= 2 the create expands
// into a time-sequenced installment series.
type CreateTransactionInput struct {
	Type          models.TransactionType
	Amount        decimal.Decimal
	Description   string
	Category      models.Category
	PaymentMethod models.PaymentMethod
	CardOperator  string
	Installments  int
	DueDate       *time.Time
}

// UpdateTransactionInput carries the mutable fields of an update request.
// Identity fields and installment-series linkage cannot be changed.
type UpdateTransactionInput struct {
	Amount        *decimal.Decimal
	Description   *string
	Category      *models.Category
	PaymentMethod *models.PaymentMethod
	CardOperator  *string
}

// ImportResult reports the aggregate outcome of a batch import. A corrupt or
// duplicate row never aborts the rest of the batch.
type ImportResult struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Invalid    int `json:"invalid"`
}

// Summary holds a profile's aggregate totals. Income, expenses, and balance
// are scoped to the current calendar month; future expenses cover strictly
// later months; the transaction count is all-time.
type Summary struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transaction_count"`
	FutureExpenses   decimal.Decimal `json:"future_expenses"`
}

// RestoreResult reports the aggregate outcome of a snapshot restore.
type RestoreResult struct {
	Restored int `json:"restored"`
	Skipped  int `json:"skipped"`
}

// BackupStatus describes the remote storage connection and whether a
// snapshot exists for the profile.
type BackupStatus struct {
	Account   *storage.Account `json:"account"`
	HasBackup bool             `json:"has_backup"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(profile models.Profile, input CreateTransactionInput) ([]*models.Transaction, error)
	GetTransaction(profile models.Profile, id string) (*models.Transaction, error)
	ListTransactions(profile models.Profile, rng period.Range) ([]*models.Transaction, error)
	UpdateTransaction(profile models.Profile, id string, input UpdateTransactionInput) (*models.Transaction, error)
	DeleteTransaction(profile models.Profile, id string) (int, error)
	ImportTransactions(profile models.Profile, candidates []*models.Transaction) (*ImportResult, error)
	ExportTransactions(profile models.Profile) ([]*models.Transaction, error)
}

// SummaryServicer defines the contract for summary aggregation.
type SummaryServicer interface {
	GetSummary(profile models.Profile) (*Summary, error)
}

// BackupServicer defines the contract for snapshot backup and restore
// against remote storage.
type BackupServicer interface {
	Backup(ctx context.Context, profile models.Profile) (int, error)
	Restore(ctx context.Context, profile models.Profile) (*RestoreResult, error)
	Status(ctx context.Context, profile models.Profile) (*BackupStatus, error)
}
