package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg       *prometheus.Registry
	Received  prometheus.Counter
	Persisted prometheus.Counter
	Failed    prometheus.Counter
	Rejected  *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	received := prometheus.NewCounter(prometheus.CounterOpts{Name: "webhook_orders_received_total"})
	persisted := prometheus.NewCounter(prometheus.CounterOpts{Name: "webhook_orders_persisted_total"})
	failed := prometheus.NewCounter(prometheus.CounterOpts{Name: "webhook_orders_failed_total"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "webhook_orders_rejected_total"}, []string{"field"})

	r.MustRegister(received, persisted, failed, rejected)
	return &Registry{
		reg:       r,
		Received:  received,
		Persisted: persisted,
		Failed:    failed,
		Rejected:  rejected,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
