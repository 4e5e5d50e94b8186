// Package ledger owns transaction record state. Not-found is a regular
// return value at this layer, never an error: a profile mismatch behaves
// exactly like an absent record, which is the cross-profile isolation
// guarantee rather than an authorization failure.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/edsontomaz/gestao-financeira/internal/models"
)

// Patch holds the mutable, non-identity fields of a transaction. Identity
// fields (id, profile, type, installment-series linkage, timestamps) are
// never overwritten, even if a caller tries.
type Patch struct {
	Amount        *decimal.Decimal
	Description   *string
	Category      *models.Category
	PaymentMethod *models.PaymentMethod
	CardOperator  *string
}

// Store is the contract every ledger backend implements. The error returns
// carry infrastructure failures only (the in-memory backend never produces
// one except for duplicate-id creates); absence is always reported in-value.
type Store interface {
	// Create inserts a record, assigning a new id unless one is supplied.
	// A supplied id that already exists fails with ErrDuplicateTransaction.
	Create(t *models.Transaction) (*models.Transaction, error)

	// Get returns the record with the given id, scoped to profile.
	Get(id string, profile models.Profile) (*models.Transaction, bool, error)

	// List returns all of a profile's records, newest CreatedAt first.
	List(profile models.Profile) ([]*models.Transaction, error)

	// Update applies the patch to the record with the given id, scoped to
	// profile, and returns the updated record.
	Update(id string, profile models.Profile, patch Patch) (*models.Transaction, bool, error)

	// Delete removes a single record and reports whether it existed.
	Delete(id string, profile models.Profile) (bool, error)

	// DeleteByParent removes every record whose ParentTransactionID equals
	// parentID, scoped to profile, and returns the number removed.
	DeleteByParent(parentID string, profile models.Profile) (int, error)

	// Clear removes every record for the profile. Used only by restore.
	Clear(profile models.Profile) error

	// Count returns the total number of records for the profile.
	Count(profile models.Profile) (int, error)
}

// apply copies the patch's set fields onto t.
func (p Patch) apply(t *models.Transaction) {
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.PaymentMethod != nil {
		t.PaymentMethod = *p.PaymentMethod
	}
	if p.CardOperator != nil {
		t.CardOperator = *p.CardOperator
	}
}
