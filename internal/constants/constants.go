// Package constants defines application-wide constants and default values.
package constants

const (
	// Application metadata
	AppName    = "tmdbfind"
	AppVersion = "1.0.0"

	// Environment variable prefix for config overrides
	EnvPrefix = "TMDBFIND"

	// Default configuration values
	DefaultPort     = 8080
	DefaultLogLevel = "info"

	// TMDB endpoint settings
	TMDBBaseURL        = "https://api.themoviedb.org/3"
	ExternalSourceIMDB = "imdb_id"

	// Identifier looked up when none is given on the command line
	DefaultIMDbID = "tt11126994"

	// Lookup history
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 1000
)
