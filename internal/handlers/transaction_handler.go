package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/edsontomaz/gestao-financeira/internal/errors"
	"github.com/edsontomaz/gestao-financeira/internal/models"
	"github.com/edsontomaz/gestao-financeira/internal/pagination"
	"github.com/edsontomaz/gestao-financeira/internal/period"
	"github.com/edsontomaz/gestao-financeira/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Type          models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount        decimal.Decimal        `json:"amount" binding:"required"`
	Description   string                 `json:"description" binding:"required,max=200"`
	Category      models.Category        `json:"category" binding:"required"`
	PaymentMethod models.PaymentMethod   `json:"payment_method" binding:"required,payment_method"`
	CardOperator  string                 `json:"card_operator" binding:"max=50"`
	Installments  int                    `json:"installments" binding:"omitempty,min=1,max=48"`
	DueDate       *string                `json:"due_date"`
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. Identity fields and series linkage are not accepted.
type UpdateTransactionRequest struct {
	Amount        *decimal.Decimal      `json:"amount"`
	Description   *string               `json:"description" binding:"omitempty,max=200"`
	Category      *models.Category      `json:"category"`
	PaymentMethod *models.PaymentMethod `json:"payment_method" binding:"omitempty,payment_method"`
	CardOperator  *string               `json:"card_operator" binding:"omitempty,max=50"`
}

// ImportTransactionRequest represents one already-parsed candidate row of a
// batch import. Rows are validated individually; a bad row is counted, not
// rejected wholesale.
type ImportTransactionRequest struct {
	Type               models.TransactionType `json:"type"`
	Amount             decimal.Decimal        `json:"amount"`
	Description        string                 `json:"description"`
	Category           models.Category        `json:"category"`
	PaymentMethod      models.PaymentMethod   `json:"payment_method"`
	CardOperator       string                 `json:"card_operator"`
	Installments       int                    `json:"installments"`
	CurrentInstallment int                    `json:"current_installment"`
	CreatedAt          *string                `json:"created_at"`
	DueDate            *string                `json:"due_date"`
}

// ListQuery holds the optional list filters.
type ListQuery struct {
	Period string `form:"period" binding:"omitempty,period_range"`
	pagination.PageRequest
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Create a transaction; credit-card purchases with installments >= 2 expand into a monthly series
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       profile path string true "Profile" Enums(personal, family)
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} map[string][]models.Transaction "Created records, in installment order"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile}/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	profile, err := getProfile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.CreateTransactionInput{
		Type:          req.Type,
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		CardOperator:  req.CardOperator,
		Installments:  req.Installments,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, parseErr := parseFlexibleDate(*req.DueDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid due_date"))
			return
		}
		input.DueDate = &due
	}

	created, err := h.transactionService.CreateTransaction(profile, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transactions": created})
}

// ListTransactions returns a profile's transactions, newest first
// @Summary     List transactions
// @Description List a profile's transactions, optionally filtered to a period bucket and paginated
// @Tags        transactions
// @Produce     json
// @Param       profile path string true "Profile" Enums(personal, family)
// @Param       period query string false "Period filter" Enums(this_month, last_month, last_3_months, this_year, next_month, all)
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} map[string][]models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /profiles/{profile}/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	profile, err := getProfile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	rng, _ := period.ParseRange(query.Period)

	records, err := h.transactionService.ListTransactions(profile, rng)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if query.Requested() {
		c.JSON(http.StatusOK, pagination.Paginate(records, query.PageRequest))
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": records})
}

// GetTransaction retrieves a transaction by ID
// @Summary     Get a transaction
// @Description Get a single transaction by id, scoped to the profile
// @Tags        transactions
// @Produce     json
// @Param       profile path string true "Profile" Enums(personal, family)
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]models.Transaction
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /profiles/{profile}/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	profile, err := getProfile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransaction(profile, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction mutates a transaction's non-identity fields
// @Summary     Update a transaction
// @Description Update amount, description, category, payment method, or card operator
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       profile path string true "Profile" Enums(personal, family)
// @Param       id path string true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} map[string]models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /profiles/{profile}/transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	profile, err := getProfile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updated, err := h.transactionService.UpdateTransaction(profile, c.Param("id"), services.UpdateTransactionInput{
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		CardOperator:  req.CardOperator,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": updated})
}

// DeleteTransaction deletes a transaction, cascading over its series
// @Summary     Delete a transaction
// @Description Delete a transaction; deleting the first installment of a series deletes the whole series
// @Tags        transactions
// @Produce     json
// @Param       profile path string true "Profile" Enums(personal, family)
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]int "Number of records deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /profiles/{profile}/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	profile, err := getProfile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.transactionService.DeleteTransaction(profile, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ExportTransactions exports all of a profile's transactions
// @Summary     Export transactions
// @Description Export a plain snapshot of all the profile's records, ids included
// @Tags        transactions
// @Produce     json
// @Param       profile path string true "Profile" Enums(personal, family)
// @Success     200 {array} models.Transaction
// @Router      /profiles/{profile}/transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c *gin.Context) {
	profile, err := getProfile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	records, err := h.transactionService.ExportTransactions(profile)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// ImportTransactions imports a batch of candidate transactions
// @Summary     Import transactions
// @Description Import already-parsed candidate rows; duplicates (by fingerprint) and invalid rows are counted, not fatal
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       profile path string true "Profile" Enums(personal, family)
// @Param       request body []ImportTransactionRequest true "Candidate rows"
// @Success     200 {object} services.ImportResult
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /profiles/{profile}/transactions/import [post]
func (h *TransactionHandler) ImportTransactions(c *gin.Context) {
	profile, err := getProfile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var rows []ImportTransactionRequest
	if err := c.ShouldBindJSON(&rows); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	candidates := make([]*models.Transaction, 0, len(rows))
	for _, row := range rows {
		candidate := &models.Transaction{
			Type:               row.Type,
			Amount:             row.Amount,
			Description:        row.Description,
			Category:           row.Category,
			PaymentMethod:      row.PaymentMethod,
			CardOperator:       row.CardOperator,
			Installments:       row.Installments,
			CurrentInstallment: row.CurrentInstallment,
		}
		if row.DueDate != nil && *row.DueDate != "" {
			// An unparseable date row still goes through; the fingerprint
			// treats it as dateless and validation decides its fate.
			if due, parseErr := parseFlexibleDate(*row.DueDate); parseErr == nil {
				candidate.DueDate = &due
			}
		}
		// The original timestamp rides along so an export/import round trip
		// fingerprints identically.
		if row.CreatedAt != nil && *row.CreatedAt != "" {
			if created, parseErr := parseFlexibleDate(*row.CreatedAt); parseErr == nil {
				candidate.CreatedAt = created
			}
		}
		candidates = append(candidates, candidate)
	}

	result, err := h.transactionService.ImportTransactions(profile, candidates)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
