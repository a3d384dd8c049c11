package metrics

import (
	coremetrics "github.com/plantops/maintcore/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	programs    *prometheus.CounterVec
	conflicts   *prometheus.GaugeVec
	utilization *prometheus.GaugeVec
	hours       prometheus.Gauge
}

// NewPromSink registers planning metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusAddr.
func NewPromSink(cfg coremetrics.Config) (coremetrics.PlanningSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.PlanningSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	programs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planning_program_events_total",
		Help: "Total number of weekly program build and lifecycle events",
	}, []string{"plant_id", "status"})
	conflicts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "planning_conflicts",
		Help: "Conflicts found by the last detection pass",
	}, []string{"type"})
	utilization := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "planning_utilization_pct",
		Help: "Resource utilization from the last leveling pass",
	}, []string{"stat"})
	hours := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "planning_program_hours",
		Help: "Total hours of the last recorded weekly program",
	})

	if err := reg.Register(programs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			programs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(conflicts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			conflicts = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(utilization); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			utilization = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(hours); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			hours = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{programs: programs, conflicts: conflicts, utilization: utilization, hours: hours}, nil
}

// RecordProgram increments the program event counter and updates hour totals.
func (s *PromSink) RecordProgram(ev coremetrics.ProgramEvent) error {
	s.programs.WithLabelValues(ev.PlantID, ev.Status).Inc()
	s.hours.Set(ev.TotalHours)
	return nil
}

// RecordConflicts sets the conflict gauges per conflict type.
func (s *PromSink) RecordConflicts(ev coremetrics.ConflictsEvent) error {
	s.conflicts.WithLabelValues("area_interference").Set(float64(ev.AreaInterference))
	s.conflicts.WithLabelValues("overallocation").Set(float64(ev.Overallocation))
	return nil
}

// RecordLeveling sets the utilization gauges.
func (s *PromSink) RecordLeveling(ev coremetrics.LevelingEvent) error {
	s.utilization.WithLabelValues("mean").Set(ev.MeanPct)
	s.utilization.WithLabelValues("peak").Set(ev.PeakPct)
	return nil
}
