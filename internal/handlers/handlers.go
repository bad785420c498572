// Package handlers implements the HTTP API served in serve mode.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amaumene/tmdbfind/internal/config"
	"github.com/amaumene/tmdbfind/internal/constants"
	"github.com/amaumene/tmdbfind/internal/services"
)

// Handler handles HTTP requests for the lookup API.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.handleHome)
	r.GET("/health", h.handleHealth)

	r.GET("/find/:imdbID", h.handleFind)
	r.GET("/history", h.handleHistory)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *Handler) handleHome(c *gin.Context) {
	c.String(http.StatusOK, "%s %s - GET /find/{imdbID} to look up TV shows on TMDB.", constants.AppName, constants.AppVersion)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"history": h.config != nil && h.config.HistoryEnabled(),
	})
}

// stripJSONExtension removes .json extension from a parameter if present
func stripJSONExtension(c *gin.Context, paramName string) {
	value := c.Param(paramName)
	if !strings.HasSuffix(value, ".json") {
		return
	}
	for i, param := range c.Params {
		if param.Key == paramName {
			c.Params[i].Value = strings.TrimSuffix(value, ".json")
			break
		}
	}
}
