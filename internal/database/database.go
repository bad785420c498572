// Package database provides lookup history persistence using BoltDB.
package database

import (
	"time"
)

// LookupRecord is one recorded /find lookup and its outcome.
type LookupRecord struct {
	IMDbID     string    `json:"imdb_id"`
	Outcome    string    `json:"outcome"`
	StatusCode int       `json:"status_code,omitempty"`
	TvResults  int       `json:"tv_results"`
	Error      string    `json:"error,omitempty"`
	LookedUpAt time.Time `json:"looked_up_at"`
}

// Database defines the interface for data persistence operations.
type Database interface {
	// StoreLookup appends a lookup record
	StoreLookup(rec *LookupRecord) error
	// GetLookups returns up to limit records, newest first
	GetLookups(limit int) ([]LookupRecord, error)
	// Close closes the database
	Close() error
}
