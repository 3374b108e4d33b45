// FilePath: internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// Poller metrics
	PollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feeder_polls_total",
		Help: "Total number of device status polls, by outcome",
	}, []string{"outcome"})

	DeviceAvailable = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "feeder_device_available",
		Help: "Whether the feeder currently counts as available (1) or offline (0)",
	})

	HopperWeightGrams = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "feeder_hopper_weight_grams",
		Help: "Last known hopper weight in grams",
	})

	MaxCapacityGrams = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "feeder_max_capacity_grams",
		Help: "Estimated full hopper capacity in grams",
	})

	// Logbook metrics
	LogbookLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feeder_logbook_loads_total",
		Help: "Total number of feeding history loads",
	})

	LogbookEvents = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "feeder_logbook_events",
		Help: "Number of feeding events in the currently filtered set",
	})

	LogbookDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feeder_logbook_deletes_total",
		Help: "Total number of log deletions, by scope",
	}, []string{"scope"})

	// Amount and feeding metrics
	DispenseAmountGrams = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "feeder_dispense_amount_grams",
		Help: "Current dispense amount in grams",
	})

	FeedTriggers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feeder_feed_triggers_total",
		Help: "Total number of manually triggered feedings",
	})
)
