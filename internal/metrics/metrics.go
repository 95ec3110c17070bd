// Package metrics counts city operations in an in-process Prometheus registry.
//
// Nothing is served over the network; counters are gathered on demand and
// written in the Prometheus text exposition format.
package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/conn-castle/smart-city/internal/messages"
)

const namespace = "smartcity"

// Recorder owns the city's counters. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry         *prometheus.Registry
	operations       *prometheus.CounterVec
	accessDecisions  *prometheus.CounterVec
	reports          prometheus.Counter
	simulations      prometheus.Counter
	unknownSubsystem prometheus.Counter
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Subsystem operations dispatched through the city facade.",
		}, []string{"subsystem"}),
		accessDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_decisions_total",
			Help:      "Access guard decisions by role and outcome.",
		}, []string{"role", "allowed"}),
		reports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "energy_reports_total",
			Help:      "Energy consumption reports assembled.",
		}),
		simulations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "Simulation cycles run.",
		}),
		unknownSubsystem: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_subsystem_total",
			Help:      "Lookups of subsystem names that do not exist.",
		}),
	}
	r.registry.MustRegister(r.operations, r.accessDecisions, r.reports, r.simulations, r.unknownSubsystem)
	return r
}

// Operation counts one dispatched operation.
func (r *Recorder) Operation(subsystem string) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(subsystem).Inc()
}

// AccessDecision counts one guard decision.
func (r *Recorder) AccessDecision(role string, allowed bool) {
	if r == nil {
		return
	}
	r.accessDecisions.WithLabelValues(role, strconv.FormatBool(allowed)).Inc()
}

// Report counts one assembled energy report.
func (r *Recorder) Report() {
	if r == nil {
		return
	}
	r.reports.Inc()
}

// Simulation counts one simulation cycle.
func (r *Recorder) Simulation() {
	if r == nil {
		return
	}
	r.simulations.Inc()
}

// UnknownSubsystem counts one rejected subsystem lookup.
func (r *Recorder) UnknownSubsystem() {
	if r == nil {
		return
	}
	r.unknownSubsystem.Inc()
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// WriteText writes all counters in the Prometheus text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf(messages.MetricsGatherErrFmt, err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf(messages.MetricsWriteFamilyErrFmt, mf.GetName(), err)
		}
	}
	return nil
}
