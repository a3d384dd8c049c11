package scheduler

import (
	"testing"

	"github.com/plantops/maintcore/core/model"
)

func morningElectricians(n int) []model.Worker {
	workers := make([]model.Worker, n)
	for i := range workers {
		workers[i] = model.Worker{
			ID:        string(rune('a' + i)),
			Specialty: model.SpecialtyElectrical,
			Shift:     model.ShiftMorning,
			Available: true,
		}
	}
	return workers
}

func TestLevelResourcesUtilization(t *testing.T) {
	e := testEngine()
	wp := pkg("p1", 8, []model.Specialty{model.SpecialtyElectrical}, "CON-CRU-PU-001")
	p := e.BuildWeeklyProgram("PLANT-A", 2, 2025, []model.ScheduledPackage{wp})

	// Two available electricians on mornings: 16h capacity.
	slots := e.LevelResources(p, morningElectricians(2))
	if len(slots) != 1 {
		t.Fatalf("expected one populated slot, got %d", len(slots))
	}
	s := slots[0]
	if s.AssignedHours != 8 || s.CapacityHours != 16 {
		t.Fatalf("bad slot accounting: %.1f/%.1f", s.AssignedHours, s.CapacityHours)
	}
	if s.UtilizationPct != 50 {
		t.Fatalf("utilization = %.1f, want 50", s.UtilizationPct)
	}
}

func TestLevelResourcesZeroCapacity(t *testing.T) {
	e := testEngine()
	wp := pkg("p1", 8, []model.Specialty{model.SpecialtyElectrical}, "CON-CRU-PU-001")
	p := e.BuildWeeklyProgram("PLANT-A", 2, 2025, []model.ScheduledPackage{wp})

	// No workers at all: utilization must be 0, never a division by zero.
	slots := e.LevelResources(p, nil)
	if len(slots) != 1 {
		t.Fatalf("expected one slot, got %d", len(slots))
	}
	if slots[0].UtilizationPct != 0 || slots[0].CapacityHours != 0 {
		t.Fatalf("zero-capacity bucket must report zero utilization: %+v", slots[0])
	}
}

func TestLevelResourcesSplitsTeamEvenly(t *testing.T) {
	e := testEngine()
	wp := pkg("p1", 10, []model.Specialty{model.SpecialtyMechanical, model.SpecialtyElectrical}, "BRY-SAG-ML-001")
	p := e.BuildWeeklyProgram("PLANT-A", 2, 2025, []model.ScheduledPackage{wp})
	slots := e.LevelResources(p, nil)
	if len(slots) != 2 {
		t.Fatalf("expected two specialty slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.AssignedHours != 5 {
			t.Fatalf("hours must split evenly across the team: %+v", s)
		}
	}
}

func TestEnhancedLevelingOverload(t *testing.T) {
	e := testEngine()
	wp := pkg("p1", 20, []model.Specialty{model.SpecialtyElectrical}, "CON-CRU-PU-001")
	wp.Shift = model.ShiftMorning
	p := e.BuildWeeklyProgram("PLANT-A", 2, 2025, []model.ScheduledPackage{wp})

	// 20h demand against 16h of declared morning electrical capacity.
	res := e.LevelResourcesEnhanced(p, morningElectricians(2), nil)
	if res.BottleneckPct <= 100 {
		t.Fatalf("expected >100%% utilization, got %.1f", res.BottleneckPct)
	}
	if res.Bottleneck != model.SpecialtyElectrical {
		t.Fatalf("bottleneck should be ELECTRICAL, got %s", res.Bottleneck)
	}
	found := false
	for _, s := range res.Suggestions {
		if s.Kind == model.SuggestAddShift {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an add-shift suggestion, got %+v", res.Suggestions)
	}
	if res.PeakPct < res.MeanPct {
		t.Fatalf("peak %.1f cannot be below mean %.1f", res.PeakPct, res.MeanPct)
	}
}

func TestEnhancedLevelingAutoSplit(t *testing.T) {
	e := testEngine()
	// 20h for a single electrician: exceeds the 8h daily default, so the
	// enhanced pass must propose a multi-day split.
	wp := pkg("p1", 20, []model.Specialty{model.SpecialtyElectrical}, "CON-CRU-PU-001")
	p := e.BuildWeeklyProgram("PLANT-A", 2, 2025, []model.ScheduledPackage{wp})

	res := e.LevelResourcesEnhanced(p, morningElectricians(2), nil)
	if len(res.MultiDay) != 1 {
		t.Fatalf("expected one multi-day split, got %d", len(res.MultiDay))
	}
	md := res.MultiDay[0]
	sum := 0.0
	for _, a := range md.Allocations {
		sum += a.Hours
	}
	if diff := sum - md.TotalHours; diff > 0.5 || diff < -0.5 {
		t.Fatalf("split hours %.1f do not conserve total %.1f", sum, md.TotalHours)
	}
}
