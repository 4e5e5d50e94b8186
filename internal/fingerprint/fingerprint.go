// Package fingerprint derives a stable identity fingerprint from a
// transaction's semantic fields. Two records are duplicates iff their
// fingerprints are equal; the comparison is exact, not fuzzy.
package fingerprint

import (
	"strconv"
	"strings"

	"github.com/edsontomaz/gestao-financeira/internal/models"
)

const separator = "|"

// Fingerprint builds the identity string for a transaction. Fields are
// joined in fixed order with fixed formatting so the result is stable across
// export/import round trips:
// type, amount (2-decimal form), lowercased trimmed description, category,
// payment method, card operator ("" if absent), installments,
// currentInstallment, effective date truncated to the calendar day
// ("" when the record carries no usable date).
func Fingerprint(t *models.Transaction) string {
	installments := t.Installments
	if installments < 1 {
		installments = 1
	}
	current := t.CurrentInstallment
	if current < 1 {
		current = 1
	}

	day := ""
	if effective := t.EffectiveDate(); !effective.IsZero() {
		day = effective.Format("2006-01-02")
	}

	return strings.Join([]string{
		string(t.Type),
		t.Amount.StringFixed(2),
		strings.ToLower(strings.TrimSpace(t.Description)),
		string(t.Category),
		string(t.PaymentMethod),
		t.CardOperator,
		strconv.Itoa(installments),
		strconv.Itoa(current),
		day,
	}, separator)
}

// Set tracks fingerprints already seen. During a batch import a candidate is
// a duplicate when it matches a stored record or an earlier candidate
// accepted in the same batch; first occurrence wins.
type Set struct {
	seen map[string]struct{}
}

// NewSet builds a Set seeded with the fingerprints of existing records.
func NewSet(existing []*models.Transaction) *Set {
	s := &Set{seen: make(map[string]struct{}, len(existing))}
	for _, t := range existing {
		s.seen[Fingerprint(t)] = struct{}{}
	}
	return s
}

// IsDuplicate reports whether the candidate's fingerprint is already known.
func (s *Set) IsDuplicate(candidate *models.Transaction) bool {
	_, ok := s.seen[Fingerprint(candidate)]
	return ok
}

// Add records the candidate's fingerprint as seen.
func (s *Set) Add(candidate *models.Transaction) {
	s.seen[Fingerprint(candidate)] = struct{}{}
}
