package metrics

import (
	"testing"

	coremetrics "github.com/plantops/maintcore/core/metrics"
)

type recordSink struct {
	count int
}

func (r *recordSink) RecordProgram(coremetrics.ProgramEvent) error {
	r.count++
	return nil
}

func (r *recordSink) RecordConflicts(coremetrics.ConflictsEvent) error {
	r.count++
	return nil
}

func (r *recordSink) RecordLeveling(coremetrics.LevelingEvent) error {
	r.count++
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordProgram(coremetrics.ProgramEvent{}); err != nil {
		t.Fatalf("record program: %v", err)
	}
	if err := m.RecordConflicts(coremetrics.ConflictsEvent{}); err != nil {
		t.Fatalf("record conflicts: %v", err)
	}
	if err := m.RecordLeveling(coremetrics.LevelingEvent{}); err != nil {
		t.Fatalf("record leveling: %v", err)
	}
	if s1.count != 3 || s2.count != 3 {
		t.Fatalf("events not forwarded")
	}
}
