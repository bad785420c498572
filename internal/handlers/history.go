package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/tmdbfind/internal/constants"
	"github.com/amaumene/tmdbfind/internal/database"
)

func (h *Handler) handleHistory(c *gin.Context) {
	if h.services.DB == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lookup history is disabled"})
		return
	}

	limit := constants.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, constants.MaxHistoryLimit)
	}

	lookups, err := h.services.DB.GetLookups(limit)
	if err != nil {
		h.services.Logger.Errorf("[Handler] failed to read lookup history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read lookup history"})
		return
	}
	if lookups == nil {
		lookups = []database.LookupRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"lookups": lookups})
}
