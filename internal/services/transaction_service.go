package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/edsontomaz/gestao-financeira/internal/errors"
	"github.com/edsontomaz/gestao-financeira/internal/fingerprint"
	"github.com/edsontomaz/gestao-financeira/internal/ledger"
	"github.com/edsontomaz/gestao-financeira/internal/logger"
	"github.com/edsontomaz/gestao-financeira/internal/models"
	"github.com/edsontomaz/gestao-financeira/internal/period"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store ledger.Store
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(store ledger.Store) TransactionServicer {
	return &transactionService{store: store}
}

// CreateTransaction creates a transaction for the profile. Credit-card
// purchases with two or more installments expand into a series of records:
// the first installment's id becomes the series parent id, due dates advance
// one calendar month per step from the base date, and each description is
// suffixed with its position. Any other payment method or a single
// installment stores exactly one record.
func (s *transactionService) CreateTransaction(profile models.Profile, input CreateTransactionInput) ([]*models.Transaction, error) {
	installments := input.Installments
	if installments == 0 {
		installments = 1
	}

	draft := &models.Transaction{
		Profile:            profile,
		Type:               input.Type,
		Amount:             input.Amount,
		Description:        strings.TrimSpace(input.Description),
		Category:           input.Category,
		PaymentMethod:      input.PaymentMethod,
		CardOperator:       input.CardOperator,
		Installments:       installments,
		CurrentInstallment: 1,
		DueDate:            input.DueDate,
	}
	// The card operator only means something for card payments.
	if !input.PaymentMethod.IsCard() {
		draft.CardOperator = ""
	}

	if input.PaymentMethod != models.PaymentMethodCreditCard || installments <= 1 {
		draft.Installments = 1
		if err := draft.Validate(); err != nil {
			return nil, err
		}
		created, err := s.store.Create(draft)
		if err != nil {
			return nil, err
		}
		return []*models.Transaction{created}, nil
	}

	return s.expandInstallments(draft, installments)
}

// expandInstallments creates the N records of a credit-card installment
// series as one logical operation: if any creation fails, the records
// created so far are compensated away so a partial series is never left
// behind.
//
// The per-installment amount is the total divided by N and rounded to two
// decimals independently for every installment; the summed series may drift
// from the original total by up to N-1 cents.
func (s *transactionService) expandInstallments(draft *models.Transaction, n int) ([]*models.Transaction, error) {
	perInstallment := draft.Amount.Div(decimal.NewFromInt(int64(n))).Round(2)

	base := time.Now()
	if draft.DueDate != nil && !draft.DueDate.IsZero() {
		base = *draft.DueDate
	}

	created := make([]*models.Transaction, 0, n)
	var parentID *string
	for i := 1; i <= n; i++ {
		due := period.AddMonths(base, i-1)
		installment := &models.Transaction{
			Profile:             draft.Profile,
			Type:                draft.Type,
			Amount:              perInstallment,
			Description:         fmt.Sprintf("%s (%d/%d)", draft.Description, i, n),
			Category:            draft.Category,
			PaymentMethod:       draft.PaymentMethod,
			CardOperator:        draft.CardOperator,
			Installments:        n,
			CurrentInstallment:  i,
			ParentTransactionID: parentID,
			DueDate:             &due,
		}
		if err := installment.Validate(); err != nil {
			s.rollback(draft.Profile, created)
			return nil, err
		}

		stored, err := s.store.Create(installment)
		if err != nil {
			s.rollback(draft.Profile, created)
			return nil, err
		}
		created = append(created, stored)

		if i == 1 {
			parentID = &stored.ID
		}
	}
	return created, nil
}

// rollback deletes records created by a failed expansion.
func (s *transactionService) rollback(profile models.Profile, created []*models.Transaction) {
	for _, t := range created {
		if _, err := s.store.Delete(t.ID, profile); err != nil {
			logger.Get().Errorw("failed to roll back installment",
				"transaction_id", t.ID,
				"error", err.Error(),
			)
		}
	}
}

// GetTransaction retrieves a transaction by id, scoped to profile. A record
// owned by another profile is reported as not found.
func (s *transactionService) GetTransaction(profile models.Profile, id string) (*models.Transaction, error) {
	t, found, err := s.store.Get(id, profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrTransactionNotFound
	}
	return t, nil
}

// ListTransactions returns the profile's records, newest first, filtered to
// the given period range by effective date.
func (s *transactionService) ListTransactions(profile models.Profile, rng period.Range) ([]*models.Transaction, error) {
	records, err := s.store.List(profile)
	if err != nil {
		return nil, err
	}
	if rng == period.RangeAll || rng == "" {
		return records, nil
	}

	now := time.Now()
	filtered := make([]*models.Transaction, 0, len(records))
	for _, t := range records {
		if period.InRange(t.EffectiveDate(), now, rng) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// UpdateTransaction mutates the non-identity fields of a transaction. A new
// category must belong to the stored record's type set.
func (s *transactionService) UpdateTransaction(profile models.Profile, id string, input UpdateTransactionInput) (*models.Transaction, error) {
	existing, found, err := s.store.Get(id, profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrTransactionNotFound
	}

	if input.Amount != nil && !input.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than zero")
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Description is required")
	}
	if input.Category != nil && !models.ValidCategory(existing.Type, *input.Category) {
		return nil, apperrors.ErrInvalidCategory
	}
	if input.PaymentMethod != nil && !input.PaymentMethod.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown payment method")
	}

	updated, found, err := s.store.Update(id, profile, ledger.Patch{
		Amount:        input.Amount,
		Description:   input.Description,
		Category:      input.Category,
		PaymentMethod: input.PaymentMethod,
		CardOperator:  input.CardOperator,
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrTransactionNotFound
	}
	return updated, nil
}

// DeleteTransaction deletes a transaction. Deleting the first installment of
// a series cascades to every record referencing it; deleting any other
// record removes only that record. Returns the number of records deleted.
func (s *transactionService) DeleteTransaction(profile models.Profile, id string) (int, error) {
	t, found, err := s.store.Get(id, profile)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, apperrors.ErrTransactionNotFound
	}

	deleted := 0
	if t.ParentTransactionID == nil {
		count, err := s.store.DeleteByParent(t.ID, profile)
		if err != nil {
			return 0, err
		}
		deleted += count
	}

	ok, err := s.store.Delete(id, profile)
	if err != nil {
		return deleted, err
	}
	if ok {
		deleted++
	}
	return deleted, nil
}

// ImportTransactions imports a batch of already-parsed candidate records.
// Each candidate is validated and fingerprinted individually: invalid rows
// are skipped, and a candidate matching a stored record or an earlier
// accepted candidate in the same batch is flagged as a duplicate
// (first occurrence wins). Imported records receive fresh ids.
func (s *transactionService) ImportTransactions(profile models.Profile, candidates []*models.Transaction) (*ImportResult, error) {
	existing, err := s.store.List(profile)
	if err != nil {
		return nil, err
	}
	seen := fingerprint.NewSet(existing)

	result := &ImportResult{}
	for _, candidate := range candidates {
		candidate.Profile = profile
		candidate.ID = ""
		if candidate.Installments == 0 {
			candidate.Installments = 1
		}
		if candidate.CurrentInstallment == 0 {
			candidate.CurrentInstallment = 1
		}

		if err := candidate.Validate(); err != nil {
			result.Invalid++
			continue
		}
		if seen.IsDuplicate(candidate) {
			result.Duplicates++
			continue
		}
		if _, err := s.store.Create(candidate); err != nil {
			result.Invalid++
			continue
		}
		seen.Add(candidate)
		result.Imported++
	}
	return result, nil
}

// ExportTransactions returns a plain structural copy of all of the profile's
// records, ids included, suitable for snapshot serialization.
func (s *transactionService) ExportTransactions(profile models.Profile) ([]*models.Transaction, error) {
	return s.store.List(profile)
}
