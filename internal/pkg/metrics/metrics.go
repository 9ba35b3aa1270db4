// Package metrics exposes prometheus counters for the fulfillment coordinator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the coordinator's counters on a private prometheus registry.
type Registry struct {
	reg *prometheus.Registry

	TransitionsApplied     *prometheus.CounterVec
	TransitionsRejected    *prometheus.CounterVec
	CascadesCompleted      prometheus.Counter
	CascadesFailed         prometheus.Counter
	AlertsEmitted          prometheus.Counter
	NotificationsPublished prometheus.Counter
	NotificationsFailed    prometheus.Counter
}

// NewRegistry creates and registers the coordinator metrics.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	applied := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fulfillment_transitions_applied_total"},
		[]string{"entity"},
	)
	rejected := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fulfillment_transitions_rejected_total"},
		[]string{"entity"},
	)
	cascadesOK := prometheus.NewCounter(prometheus.CounterOpts{Name: "fulfillment_cascades_completed_total"})
	cascadesFailed := prometheus.NewCounter(prometheus.CounterOpts{Name: "fulfillment_cascades_failed_total"})
	alerts := prometheus.NewCounter(prometheus.CounterOpts{Name: "fulfillment_alerts_emitted_total"})
	published := prometheus.NewCounter(prometheus.CounterOpts{Name: "fulfillment_notifications_published_total"})
	failed := prometheus.NewCounter(prometheus.CounterOpts{Name: "fulfillment_notifications_failed_total"})

	r.MustRegister(applied, rejected, cascadesOK, cascadesFailed, alerts, published, failed)

	return &Registry{
		reg:                    r,
		TransitionsApplied:     applied,
		TransitionsRejected:    rejected,
		CascadesCompleted:      cascadesOK,
		CascadesFailed:         cascadesFailed,
		AlertsEmitted:          alerts,
		NotificationsPublished: published,
		NotificationsFailed:    failed,
	}
}

// Handler returns the HTTP handler serving the registry in prometheus format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
