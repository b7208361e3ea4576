package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contact relay outcomes.
const (
	OutcomeDelivered = "delivered"
	OutcomeSkipped   = "skipped"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
	OutcomeInvalid   = "invalid"
)

var (
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Contact form submissions by relay outcome",
	}, []string{"channel", "outcome"})

	TelegramRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "telegram_send_duration_seconds",
		Help:    "Latency of Telegram sendMessage calls",
		Buckets: prometheus.DefBuckets,
	})
)

// RecordSubmission counts one submission; channel is "api" or "form".
func RecordSubmission(channel, outcome string) {
	ContactSubmissions.WithLabelValues(channel, outcome).Inc()
}
