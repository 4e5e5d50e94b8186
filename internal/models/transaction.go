package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/edsontomaz/gestao-financeira/internal/errors"
)

// Profile is the data-isolation partition key. Every record and derived view
// belongs to exactly one profile; records of different profiles are never
// visible to each other.
type Profile string

const (
	ProfilePersonal Profile = "personal"
	ProfileFamily   Profile = "family"
)

// Profiles is the closed set of valid profiles.
var Profiles = []Profile{ProfilePersonal, ProfileFamily}

// Valid reports whether p is a known profile.
func (p Profile) Valid() bool {
	for _, known := range Profiles {
		if p == known {
			return true
		}
	}
	return false
}

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCash       PaymentMethod = "cash"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix, PaymentMethodCash:
		return true
	}
	return false
}

// IsCard reports whether the method is a card type. The card operator field
// is only meaningful for card payments.
func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodDebitCard
}

// Category is a transaction category. The valid set is keyed by the
// transaction type: income categories and expense categories are disjoint,
// and a cross-type value is a validation failure.
type Category string

// Income categories.
const (
	CategorySalary           Category = "salary"
	CategoryBonus            Category = "bonus"
	CategoryInvestmentReturn Category = "investment_return"
	CategoryGift             Category = "gift"
	CategoryOtherIncome      Category = "other_income"
)

// Expense categories.
const (
	CategoryFood         Category = "food"
	CategoryTransport    Category = "transport"
	CategoryHousing      Category = "housing"
	CategoryHealth       Category = "health"
	CategoryEducation    Category = "education"
	CategoryLeisure      Category = "leisure"
	CategoryShopping     Category = "shopping"
	CategoryServices     Category = "services"
	CategoryOtherExpense Category = "other_expense"
)

var incomeCategories = map[Category]bool{
	CategorySalary:           true,
	CategoryBonus:            true,
	CategoryInvestmentReturn: true,
	CategoryGift:             true,
	CategoryOtherIncome:      true,
}

var expenseCategories = map[Category]bool{
	CategoryFood:         true,
	CategoryTransport:    true,
	CategoryHousing:      true,
	CategoryHealth:       true,
	CategoryEducation:    true,
	CategoryLeisure:      true,
	CategoryShopping:     true,
	CategoryServices:     true,
	CategoryOtherExpense: true,
}

// ValidCategory reports whether c belongs to the category set of the given
// transaction type.
func ValidCategory(t TransactionType, c Category) bool {
	switch t {
	case TransactionTypeIncome:
		return incomeCategories[c]
	case TransactionTypeExpense:
		return expenseCategories[c]
	}
	return false
}

// MaxInstallments bounds credit-card installment series.
const MaxInstallments = 48

// Transaction represents a single ledger record. An installment series is a
// set of transactions sharing one conceptual purchase: the first installment
// has no parent, installments 2..N carry ParentTransactionID pointing at the
// first installment's ID.
type Transaction struct {
	ID                  string          `gorm:"type:uuid;primaryKey" json:"id"`
	Profile             Profile         `gorm:"not null;index" json:"profile"`
	Type                TransactionType `gorm:"not null" json:"type"`
	Amount              decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Description         string          `gorm:"not null" json:"description"`
	Category            Category        `gorm:"not null" json:"category"`
	PaymentMethod       PaymentMethod   `gorm:"not null" json:"payment_method"`
	CardOperator        string          `json:"card_operator,omitempty"`
	Installments        int             `gorm:"not null;default:1" json:"installments"`
	CurrentInstallment  int             `gorm:"not null;default:1" json:"current_installment"`
	ParentTransactionID *string         `gorm:"index" json:"parent_transaction_id,omitempty"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
	DueDate             *time.Time      `json:"due_date,omitempty"`
}

// EffectiveDate returns the date used for period classification: the due
// date when present, otherwise the creation timestamp.
func (t *Transaction) EffectiveDate() time.Time {
	if t.DueDate != nil && !t.DueDate.IsZero() {
		return *t.DueDate
	}
	return t.CreatedAt
}

// Clone returns a deep copy of the transaction. The ledger store hands out
// clones so callers can never mutate stored state through a shared pointer.
func (t *Transaction) Clone() *Transaction {
	c := *t
	if t.ParentTransactionID != nil {
		parent := *t.ParentTransactionID
		c.ParentTransactionID = &parent
	}
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return &c
}

// Validate checks the transaction's semantic fields. It does not check
// identity fields (ID, CreatedAt), which are assigned by the store.
func (t *Transaction) Validate() error {
	if !t.Profile.Valid() {
		return apperrors.ErrInvalidProfile
	}
	if !t.Type.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown transaction type")
	}
	if !t.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than zero")
	}
	if strings.TrimSpace(t.Description) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Description is required")
	}
	if !ValidCategory(t.Type, t.Category) {
		return apperrors.ErrInvalidCategory
	}
	if !t.PaymentMethod.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown payment method")
	}
	if t.Installments < 1 || t.Installments > MaxInstallments {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Installments must be between 1 and 48")
	}
	if t.CurrentInstallment < 1 || t.CurrentInstallment > t.Installments {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Current installment out of range")
	}
	return nil
}
