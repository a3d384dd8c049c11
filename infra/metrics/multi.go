package metrics

import coremetrics "github.com/plantops/maintcore/core/metrics"

// MultiSink fanouts planning events to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.PlanningSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.PlanningSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordProgram forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordProgram(ev coremetrics.ProgramEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordProgram(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordConflicts forwards conflict-scan events.
func (m *MultiSink) RecordConflicts(ev coremetrics.ConflictsEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordConflicts(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordLeveling forwards leveling events.
func (m *MultiSink) RecordLeveling(ev coremetrics.LevelingEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordLeveling(ev); err != nil {
			return err
		}
	}
	return nil
}
