package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paynotify_events_enqueued_total",
		Help: "Total number of raw events placed on the processing queue.",
	})

	EventsReduced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paynotify_events_reduced_total",
		Help: "Total number of events reduced to a canonical event, labelled by category.",
	}, []string{"category"})

	EventsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paynotify_events_rejected_total",
		Help: "Total number of raw payloads rejected as malformed.",
	})

	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paynotify_events_dropped_total",
		Help: "Total number of events rejected due to a full queue.",
	})

	NotificationsComposed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paynotify_notifications_composed_total",
		Help: "Total number of display messages composed, labelled by category.",
	}, []string{"category"})

	NotificationsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paynotify_notifications_skipped_total",
		Help: "Total number of events not composed, labelled by reason (disabled, filtered).",
	}, []string{"reason"})

	EventProcessingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "paynotify_event_processing_duration_ms",
		Help:    "End-to-end reduce+compose latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	QueueUtilization = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "paynotify_queue_utilization_ratio",
		Help: "Current event queue utilization (0–1).",
	})
)
