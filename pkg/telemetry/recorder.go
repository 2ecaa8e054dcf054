// Package telemetry counts session activity on a private Prometheus
// registry. Nothing is served; WriteText dumps the current values.
package telemetry

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const namespace = "seatbench"

const (
	ResultOK    = "ok"
	ResultEmpty = "empty"
	ResultError = "error"
)

type Recorder struct {
	registry *prometheus.Registry

	loads     *prometheus.CounterVec
	saves     *prometheus.CounterVec
	added     prometheus.Counter
	cancelled *prometheus.CounterVec
	renders   prometheus.Counter
	records   prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_loads_total",
			Help:      "Dataset load attempts by result.",
		}, []string{"result"}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_saves_total",
			Help:      "Dataset save attempts by result.",
		}, []string{"result"}),
		added: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_added_total",
			Help:      "Records appended through the entry flow.",
		}),
		cancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_cancelled_total",
			Help:      "Entry flows abandoned, by step.",
		}, []string{"step"}),
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Plot specifications built.",
		}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Records currently held by the session.",
		}),
	}
	r.registry.MustRegister(r.loads, r.saves, r.added, r.cancelled, r.renders, r.records)
	return r
}

func (r *Recorder) Load(result string) {
	r.loads.WithLabelValues(result).Inc()
}

func (r *Recorder) Save(result string) {
	r.saves.WithLabelValues(result).Inc()
}

func (r *Recorder) Added() {
	r.added.Inc()
}

func (r *Recorder) Cancelled(step string) {
	r.cancelled.WithLabelValues(step).Inc()
}

func (r *Recorder) Rendered() {
	r.renders.Inc()
}

func (r *Recorder) Records(n int) {
	r.records.Set(float64(n))
}

// Registry exposes the private registry to collectors and test helpers.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Gather returns the current metric families.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}

// WriteText writes every metric family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
