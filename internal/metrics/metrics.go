// Package metrics exposes Prometheus collectors for the recommendation flow.
//
// Collectors are registered on the default registry at init time and served
// from /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationRequestsTotal counts recommendation requests by outcome.
	RecommendationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "film_recommendation_requests_total",
			Help: "Total number of film recommendation requests",
		},
		[]string{"outcome"},
	)

	// RecommendationDuration tracks end-to-end recommendation latency.
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "film_recommendation_duration_seconds",
			Help:    "Duration of film recommendation requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// CandidatesPerRequest tracks how many genre/era candidates each request considered.
	CandidatesPerRequest = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "film_recommendation_candidates",
			Help:    "Number of candidate films considered per recommendation request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	// ReviewServiceDuration tracks latency of batched review lookups by result.
	ReviewServiceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "review_service_request_duration_seconds",
			Help:    "Duration of batched review service lookups in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"result"},
	)
)

// RecordRecommendation records one finished recommendation request.
func RecordRecommendation(outcome string, duration time.Duration, candidates int) {
	RecommendationRequestsTotal.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if candidates >= 0 {
		CandidatesPerRequest.Observe(float64(candidates))
	}
}

// RecordReviewLookup records one batched review service call.
func RecordReviewLookup(result string, duration time.Duration) {
	ReviewServiceDuration.WithLabelValues(result).Observe(duration.Seconds())
}
