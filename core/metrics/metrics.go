package metrics

import "time"

// ProgramEvent captures a weekly program build or lifecycle change.
type ProgramEvent struct {
	ProgramID  string
	PlantID    string
	Week       int
	Year       int
	Packages   int
	TotalHours float64
	Status     string
	Time       time.Time
}

// ConflictsEvent captures the result of a conflict-detection pass.
type ConflictsEvent struct {
	ProgramID        string
	AreaInterference int
	Overallocation   int
	Time             time.Time
}

// LevelingEvent captures the result of a resource-leveling pass.
type LevelingEvent struct {
	ProgramID      string
	Slots          int
	MeanPct        float64
	PeakPct        float64
	Bottleneck     string
	MultiDaySplits int
	Time           time.Time
}

// PlanningSink records planning events for observability purposes.
type PlanningSink interface {
	RecordProgram(ev ProgramEvent) error
	RecordConflicts(ev ConflictsEvent) error
	RecordLeveling(ev LevelingEvent) error
}

// NopSink implements PlanningSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordProgram(ProgramEvent) error     { return nil }
func (NopSink) RecordConflicts(ConflictsEvent) error { return nil }
func (NopSink) RecordLeveling(LevelingEvent) error   { return nil }
