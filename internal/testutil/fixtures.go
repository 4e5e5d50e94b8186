// Package testutil provides test helpers for building ledger fixtures and
// making assertions.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/edsontomaz/gestao-financeira/internal/ledger"
	"github.com/edsontomaz/gestao-financeira/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Amount parses a decimal amount literal, failing the test on a bad literal.
func Amount(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", value, err)
	}
	return d
}

// NewTestExpense builds a valid cash expense with a unique description.
func NewTestExpense(t *testing.T, profile models.Profile, amount string) *models.Transaction {
	t.Helper()

	return &models.Transaction{
		Profile:            profile,
		Type:               models.TransactionTypeExpense,
		Amount:             Amount(t, amount),
		Description:        fmt.Sprintf("Test expense %d", nextID()),
		Category:           models.CategoryFood,
		PaymentMethod:      models.PaymentMethodCash,
		Installments:       1,
		CurrentInstallment: 1,
	}
}

// NewTestIncome builds a valid income record with a unique description.
func NewTestIncome(t *testing.T, profile models.Profile, amount string) *models.Transaction {
	t.Helper()

	return &models.Transaction{
		Profile:            profile,
		Type:               models.TransactionTypeIncome,
		Amount:             Amount(t, amount),
		Description:        fmt.Sprintf("Test income %d", nextID()),
		Category:           models.CategorySalary,
		PaymentMethod:      models.PaymentMethodPix,
		Installments:       1,
		CurrentInstallment: 1,
	}
}

// CreateTestTransaction inserts the record into the store and returns the
// stored copy.
func CreateTestTransaction(t *testing.T, store ledger.Store, record *models.Transaction) *models.Transaction {
	t.Helper()

	created, err := store.Create(record)
	if err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return created
}
