package prom

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nursery"

// Recorder exports nursery counters to a prometheus registry.
type Recorder struct {
	stateChanges *prometheus.CounterVec
	alerts       *prometheus.CounterVec
	moves        *prometheus.CounterVec
	careTasks    prometheus.Counter
	sales        prometheus.Counter
	revenue      prometheus.Counter
}

func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		stateChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_changes_total",
			Help:      "Lifecycle transitions by source and target state.",
		}, []string{"from", "to"}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "care_alerts_total",
			Help:      "Care alerts raised by kind.",
		}, []string{"kind"}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Plants moved to display by kind.",
		}, []string{"kind"}),
		careTasks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "care_tasks_executed_total",
			Help:      "Scheduled care tasks executed.",
		}),
		sales: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_total",
			Help:      "Plants sold.",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_total",
			Help:      "Sum of sale prices.",
		}),
	}
	for _, c := range []prometheus.Collector{r.stateChanges, r.alerts, r.moves, r.careTasks, r.sales, r.revenue} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) RecordStateChange(from, to string) {
	r.stateChanges.WithLabelValues(from, to).Inc()
}

func (r *Recorder) RecordAlert(kind string) {
	r.alerts.WithLabelValues(kind).Inc()
}

func (r *Recorder) RecordCareTasks(executed int) {
	if executed > 0 {
		r.careTasks.Add(float64(executed))
	}
}

func (r *Recorder) RecordMoves(kind string, n int) {
	if n > 0 {
		r.moves.WithLabelValues(kind).Add(float64(n))
	}
}

func (r *Recorder) RecordSale(price float64) {
	r.sales.Inc()
	if price > 0 {
		r.revenue.Add(price)
	}
}
