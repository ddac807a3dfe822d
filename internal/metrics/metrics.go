// Package metrics provides Prometheus metrics for matching queries.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricQueriesTotal     = "gig_matcher_queries_total"
	MetricCandidates       = "gig_matcher_query_candidates"
	MetricMatches          = "gig_matcher_query_matches"
	MetricRejectionsTotal  = "gig_matcher_rejections_total"
	MetricLegacyMatchTotal = "gig_matcher_legacy_match_total"
)

var sizeBuckets = []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000}

// Metrics contains collectors for matching queries. A nil *Metrics is valid and records nothing.
type Metrics struct {
	queries     *prometheus.CounterVec
	candidates  *prometheus.HistogramVec
	matches     *prometheus.HistogramVec
	rejections  *prometheus.CounterVec
	legacyMatch *prometheus.CounterVec
}

// New creates collectors. They are not registered, call Register.
func New() *Metrics {
	return &Metrics{
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricQueriesTotal,
				Help: "Total number of ranking queries by direction",
			},
			[]string{"direction"},
		),
		candidates: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricCandidates,
				Help:    "Size of the candidate set per ranking query",
				Buckets: sizeBuckets,
			},
			[]string{"direction"},
		),
		matches: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricMatches,
				Help:    "Number of ranked results per ranking query",
				Buckets: sizeBuckets,
			},
			[]string{"direction"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRejectionsTotal,
				Help: "Total number of candidate pairs rejected, by direction and gate",
			},
			[]string{"direction", "gate"},
		),
		legacyMatch: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricLegacyMatchTotal,
				Help: "Total number of legacy boolean match checks by result",
			},
			[]string{"result"},
		),
	}
}

// Register registers all collectors with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("registering collector: %w", err)
		}
	}
	return nil
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.queries,
		m.candidates,
		m.matches,
		m.rejections,
		m.legacyMatch,
	}
}

// ObserveQuery records one ranking query with its candidate set size and result count.
func (m *Metrics) ObserveQuery(direction string, candidates, matches int) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(direction).Inc()
	m.candidates.WithLabelValues(direction).Observe(float64(candidates))
	m.matches.WithLabelValues(direction).Observe(float64(matches))
}

// IncRejections increments the rejection counter for the gate that failed.
func (m *Metrics) IncRejections(direction, gate string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(direction, gate).Inc()
}

// IncLegacyMatch counts a legacy boolean match check.
func (m *Metrics) IncLegacyMatch(matched bool) {
	if m == nil {
		return
	}
	result := "rejected"
	if matched {
		result = "matched"
	}
	m.legacyMatch.WithLabelValues(result).Inc()
}

// WriteTextfile writes the gathered metrics in the text exposition format, for node_exporter's
// textfile collector. Batch runs of the CLI have no endpoint to be scraped from.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("writing metrics to %q: %w", path, err)
	}
	return nil
}
