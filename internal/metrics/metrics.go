package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robalobadob/pokerhands/internal/poker"
)

// Metrics holds the service's Prometheus collectors. Each instance owns its
// registry so several servers (e.g. in tests) can coexist.
type Metrics struct {
	registry         *prometheus.Registry
	HandsEvaluated   *prometheus.CounterVec
	Showdowns        *prometheus.CounterVec
	EvaluationErrors *prometheus.CounterVec
}

// New creates and registers all metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		HandsEvaluated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "poker_hands_evaluated_total",
			Help: "Hands classified, by category",
		}, []string{"category"}),
		Showdowns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "poker_showdowns_total",
			Help: "Two-hand comparisons, by outcome",
		}, []string{"outcome"}),
		EvaluationErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "poker_evaluation_errors_total",
			Help: "Rejected hands, by reason",
		}, []string{"reason"}),
	}
}

// ObserveHand counts one successful evaluation.
func (m *Metrics) ObserveHand(r poker.Result) {
	m.HandsEvaluated.WithLabelValues(r.Category.String()).Inc()
}

// ObserveShowdown counts one comparison by its winner.
func (m *Metrics) ObserveShowdown(o poker.Outcome) {
	m.Showdowns.WithLabelValues(o.Winner.String()).Inc()
}

// ObserveError counts one rejected hand.
func (m *Metrics) ObserveError(reason string) {
	m.EvaluationErrors.WithLabelValues(reason).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
