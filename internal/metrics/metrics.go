package metrics

import (
	"fmt"

	"ironmaiden/internal/dto"

	"github.com/prometheus/client_golang/prometheus"
)

// Exporter keeps simulator metrics in a private registry and writes them in
// the Prometheus text format for a node_exporter textfile collector.
type Exporter struct {
	path     string
	registry *prometheus.Registry

	generatedTotal *prometheus.CounterVec
	eventsTotal    prometheus.Gauge
	malformedTotal prometheus.Gauge
	eventsByLoc    *prometheus.GaugeVec
}

// NewExporter returns nil when path is empty; every method on a nil Exporter
// is a no-op.
func NewExporter(path string) *Exporter {
	if path == "" {
		return nil
	}

	e := &Exporter{
		path:     path,
		registry: prometheus.NewRegistry(),
	}
	e.generatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ironmaiden",
		Name:      "events_generated_total",
		Help:      "Events generated and appended during this invocation",
	}, []string{"location"})
	e.eventsTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ironmaiden",
		Name:      "log_lines",
		Help:      "Lines in the event log, malformed lines included",
	})
	e.malformedTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ironmaiden",
		Name:      "log_malformed_lines",
		Help:      "Lines in the event log without three fields",
	})
	e.eventsByLoc = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ironmaiden",
		Name:      "log_events_by_location",
		Help:      "Logged events per location",
	}, []string{"location"})

	e.registry.MustRegister(e.generatedTotal, e.eventsTotal, e.malformedTotal, e.eventsByLoc)
	return e
}

func (e *Exporter) ObserveGenerated(location string) {
	if e == nil {
		return
	}
	e.generatedTotal.WithLabelValues(location).Inc()
}

func (e *Exporter) ObserveSummary(s *dto.Summary) {
	if e == nil || s == nil {
		return
	}
	e.eventsTotal.Set(float64(s.Total))
	e.malformedTotal.Set(float64(s.Malformed))
	e.eventsByLoc.Reset()
	for _, c := range s.Counts {
		e.eventsByLoc.WithLabelValues(c.Location).Set(float64(c.Count))
	}
}

// Flush writes the current registry to the configured file.
func (e *Exporter) Flush() error {
	if e == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(e.path, e.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", e.path, err)
	}
	return nil
}
