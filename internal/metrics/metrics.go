package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RankJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rank_jobs_completed_total",
			Help: "Total number of ranking jobs completed",
		},
		[]string{"source"},
	)

	RankJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rank_jobs_failed_total",
			Help: "Total number of ranking jobs failed",
		},
		[]string{"source", "error_code"},
	)

	RankJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "rank_job_duration_seconds",
			Help: "Duration of ranking job processing in seconds",
		},
		[]string{"source"},
	)

	RankJobsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rank_jobs_active",
			Help: "Number of ranking jobs currently in flight",
		},
	)

	ScoringRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_requests_total",
			Help: "Total number of scoring requests by endpoint",
		},
		[]string{"endpoint"},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_internships",
			Help: "Number of internships currently in the catalog",
		},
	)
)
