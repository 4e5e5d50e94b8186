package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edsontomaz/gestao-financeira/internal/services"
)

// SummaryHandler handles summary requests.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary returns the profile's aggregate totals
// @Summary     Get profile summary
// @Description Current-month income/expense totals and balance, all-time record count, and strictly-future expense total
// @Tags        summary
// @Produce     json
// @Param       profile path string true "Profile" Enums(personal, family)
// @Success     200 {object} services.Summary
// @Failure     400 {object} ErrorResponse "Invalid profile"
// @Router      /profiles/{profile}/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	profile, err := getProfile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.GetSummary(profile)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
