package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/edsontomaz/gestao-financeira/internal/errors"
	"github.com/edsontomaz/gestao-financeira/internal/models"
)

const profileKey = "profile"

// ProfileScope validates the :profile path parameter against the closed
// profile set and stores it on the context. An unknown profile name is a
// validation failure; it is not an authorization check.
func ProfileScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := models.Profile(c.Param("profile"))
		if !profile.Valid() {
			c.AbortWithStatusJSON(apperrors.ErrInvalidProfile.StatusCode, gin.H{
				"error": gin.H{
					"code":    apperrors.ErrInvalidProfile.Code,
					"message": apperrors.ErrInvalidProfile.Message,
				},
			})
			return
		}
		c.Set(profileKey, profile)
		c.Next()
	}
}

// GetProfile extracts the validated profile from the Gin context.
func GetProfile(c *gin.Context) (models.Profile, bool) {
	value, exists := c.Get(profileKey)
	if !exists {
		return "", false
	}
	profile, ok := value.(models.Profile)
	return profile, ok
}
