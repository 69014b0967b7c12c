package handlers

import (
	"net/http"

	"github.com/SscSPs/bookkeeping_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the caller's ledger scope
// @Description Confirms the token is accepted and echoes the scope every ledger call will use.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router / [get]
func getHome(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	c.JSON(http.StatusOK, gin.H{"message": "Bookkeeping ledger API v1", "scope": userID})
}
