// Package metrics records what a generation run did, for collection by the
// node-exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "machinegen"

// Recorder holds the metrics of a single run on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	instancesLoaded    *prometheus.GaugeVec
	manifestsGenerated *prometheus.CounterVec
	slotsResolved      *prometheus.GaugeVec
	phaseDuration      *prometheus.GaugeVec
	runDuration        prometheus.Gauge
	runSuccess         prometheus.Gauge
	lastSuccess        prometheus.Gauge
}

// NewRecorder creates a Recorder with all metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		instancesLoaded: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "source",
				Name:      "instances_loaded",
				Help:      "Number of instances read from the instance source",
			},
			[]string{"source"},
		),
		manifestsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "manifest",
				Name:      "objects_generated_total",
				Help:      "Number of manifest objects generated by variant and kind",
			},
			[]string{"variant", "kind"},
		),
		slotsResolved: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "manifest",
				Name:      "slots_resolved",
				Help:      "Number of plan slots resolved to an instance by role",
			},
			[]string{"role"},
		),
		phaseDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "run",
				Name:      "phase_duration_seconds",
				Help:      "Duration of each pipeline phase in seconds",
			},
			[]string{"phase"},
		),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Duration of the whole run in seconds",
		}),
		runSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "success",
			Help:      "Whether the run succeeded (1) or not (0)",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run",
		}),
	}

	r.registry.MustRegister(
		r.instancesLoaded,
		r.manifestsGenerated,
		r.slotsResolved,
		r.phaseDuration,
		r.runDuration,
		r.runSuccess,
		r.lastSuccess,
	)
	return r
}

// Registry exposes the registry, for tests and custom exporters.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordInstances records how many instances a source returned.
func (r *Recorder) RecordInstances(source string, n int) {
	r.instancesLoaded.WithLabelValues(source).Set(float64(n))
}

// RecordManifests records generated objects per kind.
func (r *Recorder) RecordManifests(variant string, kinds map[string]int) {
	for kind, n := range kinds {
		r.manifestsGenerated.WithLabelValues(variant, kind).Add(float64(n))
	}
}

// RecordSlots records resolved slots for a role.
func (r *Recorder) RecordSlots(role string, n int) {
	r.slotsResolved.WithLabelValues(role).Set(float64(n))
}

// RecordPhase records how long a phase took.
func (r *Recorder) RecordPhase(phase string, d time.Duration) {
	r.phaseDuration.WithLabelValues(phase).Set(d.Seconds())
}

// RecordRun records the outcome of the run.
func (r *Recorder) RecordRun(d time.Duration, success bool, now time.Time) {
	r.runDuration.Set(d.Seconds())
	if success {
		r.runSuccess.Set(1)
		r.lastSuccess.Set(float64(now.Unix()))
	} else {
		r.runSuccess.Set(0)
	}
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
