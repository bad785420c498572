package main

import (
	"fmt"

	"github.com/amaumene/tmdbfind/internal/config"
	"github.com/amaumene/tmdbfind/internal/database"
	"github.com/amaumene/tmdbfind/internal/services"
	"github.com/amaumene/tmdbfind/pkg/logger"
)

// App bundles everything a run needs.
type App struct {
	Logger    logger.Logger
	Config    *config.Config
	DB        database.Database
	Container *services.Container
}

// InitializeLogger rebuilds the logger once the configured level is known.
func (a *App) InitializeLogger() {
	if !logger.ValidLevel(a.Config.LogLevel) {
		a.Logger.Warnf("[App] unknown log level '%s', defaulting to info", a.Config.LogLevel)
	}
	a.Logger = logger.NewWithLevel(a.Config.LogLevel)
}

// InitializeDatabase opens the lookup history when a path is configured.
func (a *App) InitializeDatabase() error {
	if !a.Config.HistoryEnabled() {
		a.Logger.Debugf("[App] lookup history disabled")
		return nil
	}

	db, err := database.NewBolt(a.Config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = db

	a.Logger.Debugf("[App] lookup history at %s", a.Config.Database.Path)
	return nil
}

// InitializeServices builds the TMDB client and the service container.
func (a *App) InitializeServices() {
	tmdbService := services.NewTMDB(a.Config.TMDB, a.Logger)
	if a.DB != nil {
		tmdbService.SetDB(a.DB)
	}

	a.Container = &services.Container{
		TMDB:   tmdbService,
		DB:     a.DB,
		Logger: a.Logger,
	}

	a.Logger.Debugf("[App] services initialized")
}

// Close releases the database, if any.
func (a *App) Close() {
	if a.DB == nil {
		return
	}
	if err := a.DB.Close(); err != nil {
		a.Logger.Errorf("[App] failed to close database: %v", err)
	}
}
