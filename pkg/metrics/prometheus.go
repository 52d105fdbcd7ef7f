package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	rankingsTotal  *prometheus.CounterVec
	rankingTokens  *prometheus.GaugeVec
	upstreamErrors *prometheus.CounterVec
	logoFallbacks  *prometheus.CounterVec
	votesTotal     prometheus.Counter
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		rankingsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "votepulse_rankings_total",
				Help: "Total number of ranking requests served",
			},
			[]string{"chain"},
		),
		rankingTokens: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "votepulse_ranking_tokens",
				Help: "Number of tokens in the last served ranking",
			},
			[]string{"chain"},
		),
		upstreamErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "votepulse_upstream_errors_total",
				Help: "Total number of upstream provider failures",
			},
			[]string{"source"},
		),
		logoFallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "votepulse_logo_fallbacks_total",
				Help: "Logo fallback lookups by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		votesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "votepulse_votes_total",
				Help: "Total number of votes cast",
			},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "votepulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordRanking records a served ranking and its size.
func (r *Recorder) RecordRanking(chain string, tokens int) {
	r.rankingsTotal.WithLabelValues(chain).Inc()
	r.rankingTokens.WithLabelValues(chain).Set(float64(tokens))
}

// RecordUpstreamError records a provider failure.
func (r *Recorder) RecordUpstreamError(source string) {
	r.upstreamErrors.WithLabelValues(source).Inc()
}

// RecordLogoFallback records a fallback lookup outcome (hit, miss).
func (r *Recorder) RecordLogoFallback(provider, outcome string) {
	r.logoFallbacks.WithLabelValues(provider, outcome).Inc()
}

// RecordVote records a cast vote.
func (r *Recorder) RecordVote(string) {
	r.votesTotal.Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
