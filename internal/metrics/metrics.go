package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Lookup outcome label values
const (
	OutcomeSuccess        = "success"
	OutcomeRemoteError    = "remote_error"
	OutcomeTransportError = "transport_error"
	OutcomeParseError     = "parse_error"
)

// TMDB lookup metrics
var (
	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdbfind_lookups_total",
			Help: "Total number of TMDB find lookups by outcome.",
		},
		[]string{"outcome"},
	)

	LookupDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tmdbfind_lookup_duration_seconds",
			Help:    "Duration of TMDB find requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)

	TvResultsReturned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tmdbfind_tv_results_total",
			Help: "Total number of TV entries returned by successful lookups.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		LookupsTotal,
		LookupDuration,
		TvResultsReturned,
	)
}
