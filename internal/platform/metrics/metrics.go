package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SubmissionsAccepted  prometheus.Counter
	SubmissionsRejected  *prometheus.CounterVec
	NotificationFailures *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SubmissionsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leadgate_submissions_accepted_total",
			Help: "Total number of contact submissions stored",
		}),
		SubmissionsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgate_submissions_rejected_total",
			Help: "Total number of contact submissions rejected, by reason",
		}, []string{"reason"}),
		NotificationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgate_notification_failures_total",
			Help: "Total number of failed notification dispatches, by target",
		}, []string{"target"}),
	}
}

// The increment helpers are nil-safe so tests can pass a zero Metrics value
// without registering collectors.

func (m *Metrics) IncrementAccepted() {
	if m == nil || m.SubmissionsAccepted == nil {
		return
	}
	m.SubmissionsAccepted.Inc()
}

func (m *Metrics) IncrementRejected(reason string) {
	if m == nil || m.SubmissionsRejected == nil {
		return
	}
	m.SubmissionsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementNotificationFailure(target string) {
	if m == nil || m.NotificationFailures == nil {
		return
	}
	m.NotificationFailures.WithLabelValues(target).Inc()
}
