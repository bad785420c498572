package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/amaumene/tmdbfind/internal/config"
	"github.com/amaumene/tmdbfind/internal/database"
	apperrors "github.com/amaumene/tmdbfind/internal/errors"
	"github.com/amaumene/tmdbfind/internal/metrics"
	"github.com/amaumene/tmdbfind/internal/models"
	"github.com/amaumene/tmdbfind/pkg/httputil"
	"github.com/amaumene/tmdbfind/pkg/logger"
	"github.com/amaumene/tmdbfind/pkg/security"
)

// TMDB looks up titles on TMDB by external identifier.
type TMDB struct {
	apiKey         string
	baseURL        string
	externalSource string
	httpClient     *http.Client
	db             database.Database
	logger         logger.Logger
	validator      *security.APIKeyValidator
}

func NewTMDB(cfg config.TMDBConfig, log logger.Logger) *TMDB {
	validator := security.NewAPIKeyValidator()

	// The key is sent as configured; the format check only warns.
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey != "" && !validator.IsValidTMDBKey(apiKey) {
		log.Warnf("[TMDB] API key does not look like a v3 key (key: %s)", validator.MaskAPIKey(apiKey))
	}

	return &TMDB{
		apiKey:         apiKey,
		baseURL:        cfg.BaseURL,
		externalSource: cfg.ExternalSource,
		httpClient:     httputil.NewHTTPClient(cfg.Timeout),
		logger:         log,
		validator:      validator,
	}
}

// SetDB enables lookup history recording.
func (t *TMDB) SetDB(db database.Database) {
	t.db = db
}

// FindByIMDbID performs one /find lookup. Failures come back as *errors.FindError
// of kind remote, transport or parse. Nothing is cached.
func (t *TMDB) FindByIMDbID(ctx context.Context, imdbID string) (*models.SearchResult, error) {
	start := time.Now()
	result, err := t.find(ctx, imdbID)
	metrics.LookupDuration.Observe(time.Since(start).Seconds())
	metrics.LookupsTotal.WithLabelValues(outcomeOf(err)).Inc()
	if err == nil {
		metrics.TvResultsReturned.Add(float64(len(result.TvResults)))
	}
	t.recordLookup(imdbID, result, err)
	return result, err
}

// FindByIMDbIDOrNil logs any lookup failure and returns nil instead of an error.
// It is for library callers that only need "result or nothing"; the CLI and
// the HTTP handlers use FindByIMDbID so they can map the failure kind.
func (t *TMDB) FindByIMDbIDOrNil(ctx context.Context, imdbID string) *models.SearchResult {
	result, err := t.FindByIMDbID(ctx, imdbID)
	if err != nil {
		t.logger.Errorf("[TMDB] lookup for %s failed: %v", imdbID, err)
		return nil
	}
	return result
}

func (t *TMDB) find(ctx context.Context, imdbID string) (*models.SearchResult, error) {
	// TMDB requires the key as a query parameter
	url := t.buildFindURL(imdbID)

	t.logger.Debugf("[TMDB] fetching info for %s", imdbID)
	t.logger.Debugf("[TMDB] API URL: %s", t.validator.RedactURL(url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		t.logger.Errorf("[TMDB] failed to build request for %s: %v", imdbID, err)
		return nil, apperrors.NewTransportError("failed to build TMDB request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Errorf("[TMDB] request for %s failed: %v", imdbID, err)
		return nil, apperrors.NewTransportError("failed to fetch TMDB data", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.logger.Warnf("[TMDB] request failed: %d", resp.StatusCode)
		return nil, apperrors.NewRemoteError(resp.StatusCode)
	}

	var result models.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.logger.Errorf("[TMDB] failed to decode response for %s: %v", imdbID, err)
		return nil, apperrors.NewParseError("failed to decode TMDB response", err)
	}

	t.logger.Debugf("[TMDB] %s matched %d TV results", imdbID, len(result.TvResults))
	return &result, nil
}

// buildFindURL interpolates imdbID verbatim; it is neither validated nor escaped.
func (t *TMDB) buildFindURL(imdbID string) string {
	return fmt.Sprintf("%s/find/%s?api_key=%s&external_source=%s",
		t.baseURL, imdbID, t.apiKey, t.externalSource)
}

func (t *TMDB) recordLookup(imdbID string, result *models.SearchResult, err error) {
	if t.db == nil {
		return
	}

	rec := &database.LookupRecord{
		IMDbID:     imdbID,
		Outcome:    outcomeOf(err),
		StatusCode: http.StatusOK,
		LookedUpAt: time.Now(),
	}
	if err != nil {
		rec.StatusCode = apperrors.StatusCode(err)
		rec.Error = err.Error()
	} else {
		rec.TvResults = len(result.TvResults)
	}

	if err := t.db.StoreLookup(rec); err != nil {
		t.logger.Errorf("[TMDB] failed to store lookup for %s: %v", imdbID, err)
	}
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	switch {
	case errors.Is(err, apperrors.ErrRemote):
		return metrics.OutcomeRemoteError
	case errors.Is(err, apperrors.ErrParse):
		return metrics.OutcomeParseError
	default:
		return metrics.OutcomeTransportError
	}
}
