package optimizer

import (
	"testing"
	"time"

	"github.com/plantops/maintcore/core/model"
	"github.com/plantops/maintcore/core/scheduler"
)

var now = time.Date(2025, 1, 8, 7, 0, 0, 0, time.UTC)

func newOptimizer() *Optimizer {
	return New(scheduler.Config{}, nil)
}

func TestOptimizeGroupsDatedFromTomorrow(t *testing.T) {
	items := []model.DemandItem{
		{ID: "d1", EquipmentTag: "BRY-SAG-ML-001", EstimatedHours: 4, MaterialsReady: true, Specialties: []model.Specialty{model.SpecialtyMechanical}},
		{ID: "d2", EquipmentTag: "BRY-SAG-ML-001", EstimatedHours: 2, MaterialsReady: true, Specialties: []model.Specialty{model.SpecialtyMechanical}},
	}
	res := newOptimizer().Optimize(now, items, nil, nil, 14)
	if len(res.Packages) != 1 {
		t.Fatalf("expected one grouped package, got %d", len(res.Packages))
	}
	tomorrow := now.AddDate(0, 0, 1)
	if !res.Packages[0].Date.Equal(tomorrow) {
		t.Fatalf("group must be dated tomorrow, got %v", res.Packages[0].Date)
	}
}

func TestOptimizeSinglesTwoPerDay(t *testing.T) {
	items := []model.DemandItem{
		{ID: "d1", EquipmentTag: "AAA-ONE-X-001", EstimatedHours: 2, MaterialsReady: true},
		{ID: "d2", EquipmentTag: "BBB-TWO-X-001", EstimatedHours: 2, MaterialsReady: true},
		{ID: "d3", EquipmentTag: "CCC-TRE-X-001", EstimatedHours: 2, MaterialsReady: true},
	}
	res := newOptimizer().Optimize(now, items, nil, nil, 14)
	if len(res.Packages) != 3 {
		t.Fatalf("expected three individual packages, got %d", len(res.Packages))
	}
	tomorrow := now.AddDate(0, 0, 1)
	if !res.Packages[0].Date.Equal(tomorrow) || !res.Packages[1].Date.Equal(tomorrow) {
		t.Fatalf("first two singles share tomorrow")
	}
	if !res.Packages[2].Date.Equal(tomorrow.AddDate(0, 0, 1)) {
		t.Fatalf("third single moves to the next day, got %v", res.Packages[2].Date)
	}
	if res.Packages[0].Shift == res.Packages[1].Shift {
		t.Fatalf("same-day singles must alternate shifts")
	}
}

func TestOptimizeShutdownWindowPlacement(t *testing.T) {
	items := []model.DemandItem{
		{ID: "d1", EquipmentTag: "BRY-SAG-ML-001", EstimatedHours: 4, MaterialsReady: true, ShutdownRequired: true},
	}
	windows := []model.ShutdownWindow{
		{ID: "w-late", Start: now.AddDate(0, 0, 40), End: now.AddDate(0, 0, 42)},
		{ID: "w-early", Start: now.AddDate(0, 0, 5), End: now.AddDate(0, 0, 6)},
	}
	res := newOptimizer().Optimize(now, items, nil, windows, 14)
	if len(res.Packages) != 1 {
		t.Fatalf("expected one shutdown package, got %d", len(res.Packages))
	}
	if !res.Packages[0].Date.Equal(windows[1].Start) {
		t.Fatalf("shutdown item must land in the first in-horizon window, got %v", res.Packages[0].Date)
	}
}

func TestOptimizeShutdownWithoutWindow(t *testing.T) {
	items := []model.DemandItem{
		{ID: "d1", EquipmentTag: "BRY-SAG-ML-001", EstimatedHours: 4, MaterialsReady: true, ShutdownRequired: true},
	}
	res := newOptimizer().Optimize(now, items, nil, nil, 14)
	if len(res.Packages) != 0 {
		t.Fatalf("shutdown work without a window must stay unscheduled: %+v", res.Packages)
	}
}

func TestOptimizeAlerts(t *testing.T) {
	items := []model.DemandItem{
		{ID: "d1", EquipmentTag: "BRY-SAG-ML-001", EstimatedHours: 4, MaterialsReady: true,
			Priority: model.PriorityEmergency, CreatedAt: now.AddDate(0, 0, -45)},
		{ID: "d2", EquipmentTag: "CON-CRU-PU-001", EstimatedHours: 2},
	}
	res := newOptimizer().Optimize(now, items, nil, nil, 14)

	kinds := map[model.AlertKind][]string{}
	for _, a := range res.Alerts {
		kinds[a.Kind] = a.ItemIDs
	}
	if ids := kinds[model.AlertOverdue]; len(ids) != 1 || ids[0] != "d1" {
		t.Fatalf("overdue alert wrong: %v", ids)
	}
	if ids := kinds[model.AlertMaterialDelay]; len(ids) != 1 || ids[0] != "d2" {
		t.Fatalf("material delay alert wrong: %v", ids)
	}
	if ids := kinds[model.AlertPriorityEscalation]; len(ids) != 1 || ids[0] != "d1" {
		t.Fatalf("escalation alert wrong: %v", ids)
	}
}

func TestOptimizeScheduleUtilization(t *testing.T) {
	items := []model.DemandItem{
		{ID: "d1", EquipmentTag: "AAA-ONE-X-001", EstimatedHours: 4, MaterialsReady: true},
	}
	workers := []model.Worker{
		{ID: "w1", Specialty: model.SpecialtyMechanical, Shift: model.ShiftMorning, Available: true},
	}
	res := newOptimizer().Optimize(now, items, workers, nil, 14)
	if len(res.Schedule) != 1 {
		t.Fatalf("expected one schedule bucket, got %d", len(res.Schedule))
	}
	b := res.Schedule[0]
	// 4h against one worker's 8h shift.
	if b.UtilizationPct != 50 {
		t.Fatalf("utilization = %.1f, want 50", b.UtilizationPct)
	}
	if b.Hours != 4 || len(b.PackageIDs) != 1 {
		t.Fatalf("bucket aggregation wrong: %+v", b)
	}
}
