// Package services provides the TMDB client and the container that wires it.
package services

import (
	"context"

	"github.com/amaumene/tmdbfind/internal/database"
	"github.com/amaumene/tmdbfind/internal/models"
	"github.com/amaumene/tmdbfind/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	TMDB   TMDBService
	DB     database.Database
	Logger logger.Logger
}

// TMDBService defines the interface for TMDB API operations.
type TMDBService interface {
	FindByIMDbID(ctx context.Context, imdbID string) (*models.SearchResult, error)
	FindByIMDbIDOrNil(ctx context.Context, imdbID string) *models.SearchResult
}

var _ TMDBService = (*TMDB)(nil)
