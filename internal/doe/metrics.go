package doe

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Point status labels
const (
	StatusValid   = "valid"
	StatusPartial = "partial"
	StatusInvalid = "invalid"
)

// Metrics bundles Prometheus instruments for DOE sweeps.
type Metrics struct {
	Points          *prometheus.CounterVec
	MissingStations prometheus.Counter
	SweepDuration   prometheus.Histogram
}

// NewMetrics registers DOE metrics against reg, defaulting to the global
// registry when nil. Registering twice on the same registry reuses the
// existing collectors.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	points, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gowing",
		Subsystem: "doe",
		Name:      "points_total",
		Help:      "Wing polar points produced, labeled by completeness.",
	}, []string{"status"}), "gowing_doe_points_total")
	if err != nil {
		return nil, err
	}

	missing, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gowing",
		Subsystem: "doe",
		Name:      "missing_stations_total",
		Help:      "Span stations for which no section polar data was available.",
	}), "gowing_doe_missing_stations_total")
	if err != nil {
		return nil, err
	}

	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gowing",
		Subsystem: "doe",
		Name:      "sweep_duration_seconds",
		Help:      "Wall time of complete DOE sweeps.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
	}), "gowing_doe_sweep_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Metrics{Points: points, MissingStations: missing, SweepDuration: duration}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		are := prometheus.AlreadyRegisteredError{}
		if !errors.As(err, &are) {
			var zero T
			return zero, fmt.Errorf("register %s: %w", name, err)
		}
		existing, ok := are.ExistingCollector.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%s registered with a different type", name)
		}
		return existing, nil
	}
	return c, nil
}

func (m *Metrics) observe(status string, missing int) {
	if m == nil {
		return
	}
	m.Points.WithLabelValues(status).Inc()
	if missing > 0 {
		m.MissingStations.Add(float64(missing))
	}
}
