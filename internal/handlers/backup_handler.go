package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edsontomaz/gestao-financeira/internal/services"
)

// BackupHandler handles snapshot backup and restore requests.
type BackupHandler struct {
	backupService services.BackupServicer
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService services.BackupServicer) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Backup writes the profile's snapshot to remote storage
// @Summary     Back up a profile
// @Description Serialize all the profile's records and write them to remote storage, overwriting any previous snapshot
// @Tags        backup
// @Produce     json
// @Param       profile path string true "Profile" Enums(personal, family)
// @Success     200 {object} map[string]int "Number of records written"
// @Failure     502 {object} ErrorResponse "Storage unavailable"
// @Failure     504 {object} ErrorResponse "Storage timed out"
// @Router      /profiles/{profile}/backup [post]
func (h *BackupHandler) Backup(c *gin.Context) {
	profile, err := getProfile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	count, err := h.backupService.Backup(c.Request.Context(), profile)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": count})
}

// Restore replaces the profile's records with the remote snapshot
// @Summary     Restore a profile
// @Description Destructively replace the profile's records with the remote snapshot, preserving installment-series linkage
// @Tags        backup
// @Produce     json
// @Param       profile path string true "Profile" Enums(personal, family)
// @Success     200 {object} services.RestoreResult
// @Failure     404 {object} ErrorResponse "No backup exists"
// @Failure     502 {object} ErrorResponse "Storage unavailable"
// @Failure     504 {object} ErrorResponse "Storage timed out"
// @Router      /profiles/{profile}/restore [post]
func (h *BackupHandler) Restore(c *gin.Context) {
	profile, err := getProfile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.backupService.Restore(c.Request.Context(), profile)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Status reports the storage account and snapshot presence
// @Summary     Backup status
// @Description The connected storage account and whether a snapshot exists for the profile
// @Tags        backup
// @Produce     json
// @Param       profile path string true "Profile" Enums(personal, family)
// @Success     200 {object} services.BackupStatus
// @Failure     502 {object} ErrorResponse "Storage unavailable"
// @Router      /profiles/{profile}/backup/status [get]
func (h *BackupHandler) Status(c *gin.Context) {
	profile, err := getProfile(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.backupService.Status(c.Request.Context(), profile)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
