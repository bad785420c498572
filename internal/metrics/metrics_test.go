package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getCounterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.(prometheus.Metric).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func getCounterVecValue(cv *prometheus.CounterVec, labels ...string) float64 {
	c, err := cv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func TestMetrics_LookupsTotal(t *testing.T) {
	for _, outcome := range []string{OutcomeSuccess, OutcomeRemoteError, OutcomeTransportError, OutcomeParseError} {
		before := getCounterVecValue(LookupsTotal, outcome)
		LookupsTotal.WithLabelValues(outcome).Inc()
		after := getCounterVecValue(LookupsTotal, outcome)

		if after != before+1 {
			t.Errorf("Expected %s counter to increment by 1, got diff %.0f", outcome, after-before)
		}
	}
}

func TestMetrics_TvResultsReturned(t *testing.T) {
	before := getCounterValue(TvResultsReturned)
	TvResultsReturned.Add(3)
	after := getCounterValue(TvResultsReturned)

	if after != before+3 {
		t.Errorf("Expected counter to increase by 3, got diff %.0f", after-before)
	}
}

func TestMetrics_LookupDuration(t *testing.T) {
	LookupDuration.Observe(0.25)

	var m dto.Metric
	if err := LookupDuration.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if m.GetHistogram().GetSampleCount() == 0 {
		t.Error("Expected at least one observation")
	}
}
