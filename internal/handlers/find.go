package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/amaumene/tmdbfind/internal/errors"
	"github.com/amaumene/tmdbfind/internal/models"
)

func (h *Handler) handleFind(c *gin.Context) {
	stripJSONExtension(c, "imdbID")
	imdbID := c.Param("imdbID")

	if imdbID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing IMDb id"})
		return
	}

	result, err := h.services.TMDB.FindByIMDbID(c.Request.Context(), imdbID)
	if err != nil {
		h.services.Logger.Warnf("[Handler] find %s failed: %v", imdbID, err)
		h.respondFindError(c, err)
		return
	}

	if result.TvResults == nil {
		result = &models.SearchResult{TvResults: []models.TvEntry{}}
	}
	c.JSON(http.StatusOK, result)
}

// respondFindError maps every upstream failure to 502; the kind and the
// TMDB status are reported in the body.
func (h *Handler) respondFindError(c *gin.Context, err error) {
	var fe *apperrors.FindError
	if !errors.As(err, &fe) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	body := gin.H{
		"error": fe.Message,
		"kind":  fe.Kind,
	}
	if fe.StatusCode != 0 {
		body["status"] = fe.StatusCode
	}
	c.JSON(http.StatusBadGateway, body)
}
