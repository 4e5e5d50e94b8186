package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/edsontomaz/gestao-financeira/internal/ledger"
	"github.com/edsontomaz/gestao-financeira/internal/models"
	"github.com/edsontomaz/gestao-financeira/internal/period"
)

// summaryService folds a profile's records into aggregate totals.
type summaryService struct {
	store ledger.Store
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(store ledger.Store) SummaryServicer {
	return &summaryService{store: store}
}

// GetSummary computes the profile's totals. Income and expenses are scoped
// to the current calendar month by effective date; future expenses sum
// expense records in strictly later months with no upper bound; the balance
// subtracts only current-month expenses. The transaction count is the
// all-time record count for the profile, not month-scoped.
func (s *summaryService) GetSummary(profile models.Profile) (*Summary, error) {
	records, err := s.store.List(profile)
	if err != nil {
		return nil, err
	}
	count, err := s.store.Count(profile)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := &Summary{
		TotalIncome:      decimal.Zero,
		TotalExpenses:    decimal.Zero,
		Balance:          decimal.Zero,
		FutureExpenses:   decimal.Zero,
		TransactionCount: count,
	}

	for _, t := range records {
		effective := t.EffectiveDate()
		switch t.Type {
		case models.TransactionTypeIncome:
			if period.SameMonth(effective, now) {
				summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
			}
		case models.TransactionTypeExpense:
			if period.SameMonth(effective, now) {
				summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount)
			} else if period.IsFutureMonth(effective, now) {
				summary.FutureExpenses = summary.FutureExpenses.Add(t.Amount)
			}
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary, nil
}
