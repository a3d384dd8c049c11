package scheduler

import (
	"testing"

	"github.com/plantops/maintcore/core/model"
)

func countTasks(tasks []model.SupportTask, typ model.SupportTaskType) int {
	n := 0
	for _, t := range tasks {
		if t.Type == typ {
			n++
		}
	}
	return n
}

func TestSupportTasksForShutdownPackage(t *testing.T) {
	e := testEngine()
	wp := pkg("p1", 6, []model.Specialty{model.SpecialtyMechanical}, "BRY-SAG-ML-001")
	wp.ShutdownRequired = true
	p := e.BuildWeeklyProgram("PLANT-A", 2, 2025, []model.ScheduledPackage{wp})
	p = e.AssignSupportTasks(p)

	// Shutdown + long mechanical job: lockout, guard, crane, cleaning, commissioning.
	if len(p.SupportTasks) != 5 {
		t.Fatalf("expected 5 support tasks, got %d", len(p.SupportTasks))
	}
	for _, typ := range []model.SupportTaskType{
		model.TaskLockout, model.TaskGuardRemoval, model.TaskCraneSupport,
		model.TaskCleaning, model.TaskCommissioning,
	} {
		if countTasks(p.SupportTasks, typ) != 1 {
			t.Fatalf("missing task %s", typ)
		}
	}
	for _, st := range p.SupportTasks {
		before := st.Type == model.TaskLockout || st.Type == model.TaskGuardRemoval || st.Type == model.TaskCraneSupport
		if st.RequiredBefore != before {
			t.Fatalf("task %s has wrong required_before=%v", st.Type, st.RequiredBefore)
		}
	}
	// 6h package + 0.5+0.5+1+0.5+0.5 support hours.
	if p.TotalHours != 9 {
		t.Fatalf("total hours = %.1f, want 9", p.TotalHours)
	}
}

func TestSupportTasksOnlinePackage(t *testing.T) {
	e := testEngine()
	wp := pkg("p1", 3, []model.Specialty{model.SpecialtyElectrical}, "CON-CRU-PU-001")
	p := e.BuildWeeklyProgram("PLANT-A", 2, 2025, []model.ScheduledPackage{wp})
	p = e.AssignSupportTasks(p)

	// No shutdown, short, non-mechanical: cleaning and commissioning only.
	if len(p.SupportTasks) != 2 {
		t.Fatalf("expected 2 support tasks, got %d", len(p.SupportTasks))
	}
	if countTasks(p.SupportTasks, model.TaskCraneSupport) != 0 {
		t.Fatalf("crane support requires a long mechanical job")
	}
	if p.TotalHours != 4 {
		t.Fatalf("total hours = %.1f, want 4", p.TotalHours)
	}
}

func TestSupportTasksCraneThreshold(t *testing.T) {
	e := testEngine()
	// Exactly 4h does not trigger crane support; the duration must exceed it.
	wp := pkg("p1", 4, []model.Specialty{model.SpecialtyMechanical}, "BRY-SAG-ML-001")
	p := e.BuildWeeklyProgram("PLANT-A", 2, 2025, []model.ScheduledPackage{wp})
	p = e.AssignSupportTasks(p)
	if countTasks(p.SupportTasks, model.TaskCraneSupport) != 0 {
		t.Fatalf("4h mechanical job must not trigger crane support")
	}
}

func TestAssignSupportTasksIdempotentTotals(t *testing.T) {
	e := testEngine()
	wp := pkg("p1", 3, []model.Specialty{model.SpecialtyElectrical}, "CON-CRU-PU-001")
	p := e.BuildWeeklyProgram("PLANT-A", 2, 2025, []model.ScheduledPackage{wp})
	p = e.AssignSupportTasks(p)
	p = e.AssignSupportTasks(p)
	if p.TotalHours != 4 {
		t.Fatalf("reassigning support tasks must not double-count: %.1f", p.TotalHours)
	}
}
