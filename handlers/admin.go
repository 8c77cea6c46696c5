package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"innflow/utils"
)

const adminTokenTTL = 2 * time.Hour

// AdminTokenHandler exchanges the admin API key for a short-lived JWT
// used on the mapping diagnostics endpoints.
func AdminTokenHandler(c *gin.Context) {
	var input struct {
		Key string `json:"key"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Key == "" {
		utils.JSONError(c, http.StatusBadRequest, "admin key is required", "")
		return
	}

	if err := utils.VerifyAdminKey(input.Key); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid admin key", "")
		return
	}

	token, err := utils.GenerateAdminToken(adminTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}
