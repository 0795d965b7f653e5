// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sitebuilder"

var (
	storeOperationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operation_seconds",
		Help:      "Duration of storage operations, including time spent waiting for a worker slot.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op", "result"})

	publishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "publish",
		Name:      "total",
		Help:      "FTP publish attempts by result.",
	}, []string{"result"})

	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "media",
		Name:      "uploads_total",
		Help:      "Media uploads by kind and result.",
	}, []string{"kind", "result"})

	contactTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "contact",
		Name:      "submissions_total",
		Help:      "Contact form submissions by notification outcome.",
	}, []string{"email"})
)

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveStoreOperation records how long a store operation took.
func ObserveStoreOperation(op string, started time.Time, err error) {
	storeOperationSeconds.WithLabelValues(op, result(err)).Observe(time.Since(started).Seconds())
}

// IncPublish counts a publish attempt.
func IncPublish(err error) {
	publishTotal.WithLabelValues(result(err)).Inc()
}

// IncUpload counts a media upload; result is "ok", "rejected" or "error".
func IncUpload(kind, outcome string) {
	uploadsTotal.WithLabelValues(kind, outcome).Inc()
}

// IncContact counts a contact submission; email is "sent", "failed" or "skipped".
func IncContact(email string) {
	contactTotal.WithLabelValues(email).Inc()
}
