package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "robot_requests_total",
			Help: "Total number of generate requests by transport and response code",
		},
		[]string{"transport", "code"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "robot_generation_duration_seconds",
			Help:    "Duration of generation gateway calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "outcome"},
	)

	IntentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "robot_intents_total",
			Help: "Total number of classified prompts per intent category",
		},
		[]string{"intent"},
	)

	MovementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "robot_movements_total",
			Help: "Total number of resolved movement directives per direction",
		},
		[]string{"direction"},
	)
)
