package scheduler

import (
	"time"

	"github.com/google/uuid"

	"github.com/plantops/maintcore/core/logger"
	"github.com/plantops/maintcore/core/metrics"
	"github.com/plantops/maintcore/core/model"
	"github.com/plantops/maintcore/core/workflow"
)

// Engine computes weekly programs. It is stateless between calls: every
// operation takes its full input and returns a new result.
type Engine struct {
	cfg  Config
	log  logger.Logger
	sink metrics.PlanningSink
}

// New creates an Engine. A nil logger or sink falls back to no-op versions.
func New(cfg Config, log logger.Logger, sink metrics.PlanningSink) *Engine {
	cfg.SetDefaults()
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Engine{cfg: cfg, log: log, sink: sink}
}

// PackageFromGroup turns a demand group into a schedulable work package.
// Date and shift are left unset for BuildWeeklyProgram to assign.
func PackageFromGroup(g model.DemandGroup) model.ScheduledPackage {
	ready, total := 0, len(g.Items)
	for _, it := range g.Items {
		if it.MaterialsReady {
			ready++
		}
	}
	materials := model.MaterialsNotReady
	switch {
	case total > 0 && ready == total:
		materials = model.MaterialsReady
	case ready > 0:
		materials = model.MaterialsPartial
	}
	return model.ScheduledPackage{
		ID:               "WP-" + g.ID,
		Name:             g.Name,
		Items:            g.Items,
		Team:             g.Specialties,
		Hours:            g.TotalHours,
		Materials:        materials,
		ShutdownRequired: g.ShutdownRequired,
	}
}

// PackageFromItem wraps an individual ungrouped item as a work package.
func PackageFromItem(it model.DemandItem) model.ScheduledPackage {
	materials := model.MaterialsNotReady
	if it.MaterialsReady {
		materials = model.MaterialsReady
	}
	return model.ScheduledPackage{
		ID:               "WP-" + it.ID,
		Name:             it.EquipmentTag,
		Items:            []model.DemandItem{it},
		Team:             it.Specialties,
		Hours:            it.EstimatedHours,
		Materials:        materials,
		ShutdownRequired: it.ShutdownRequired,
	}
}

// BuildWeeklyProgram distributes the packages over the execution window of
// the given ISO week. The window starts on the Thursday of that week;
// packages are placed round-robin across the window days, alternating
// morning/afternoon shifts unless a date or shift is already set. The
// program starts in DRAFT.
func (e *Engine) BuildWeeklyProgram(plantID string, week, year int, pkgs []model.ScheduledPackage) model.WeeklyProgram {
	start := isoWeekThursday(year, week)
	total := 0.0
	placed := make([]model.ScheduledPackage, len(pkgs))
	for i, pkg := range pkgs {
		if pkg.Date.IsZero() {
			pkg.Date = start.AddDate(0, 0, i%e.cfg.WindowDays)
		}
		if pkg.Shift == "" {
			if i%2 == 0 {
				pkg.Shift = model.ShiftMorning
			} else {
				pkg.Shift = model.ShiftAfternoon
			}
		}
		total += pkg.Hours
		placed[i] = pkg
	}
	p := model.WeeklyProgram{
		ID:         uuid.NewString(),
		PlantID:    plantID,
		Week:       week,
		Year:       year,
		Packages:   placed,
		TotalHours: total,
		Status:     model.ProgramDraft,
	}
	e.log.Infof("built weekly program %s for %s W%02d/%d: %d packages, %.1fh",
		p.ID, plantID, week, year, len(placed), total)
	e.recordProgram(p)
	return p
}

// Finalize moves the program from DRAFT to FINAL. It is refused while any
// unresolved conflict exists; the unchanged program and an explanatory
// message are returned instead.
func (e *Engine) Finalize(p model.WeeklyProgram) (model.WeeklyProgram, string) {
	conflicts := e.DetectConflicts(p)
	if len(conflicts) > 0 {
		e.log.Warnf("finalize refused for program %s: %d unresolved conflicts", p.ID, len(conflicts))
		return p, "cannot finalize: unresolved conflicts remain"
	}
	next, msg, ok := e.transition(p, model.ProgramFinal)
	if !ok {
		return next, msg
	}
	now := time.Now()
	next.FinalizedAt = &now
	next.Conflicts = nil
	return next, "program finalized"
}

// Activate moves a finalized program into execution.
func (e *Engine) Activate(p model.WeeklyProgram) (model.WeeklyProgram, string) {
	next, msg, ok := e.transition(p, model.ProgramActive)
	if !ok {
		return next, msg
	}
	return next, "program activated"
}

// Complete closes out an active program. COMPLETED is terminal.
func (e *Engine) Complete(p model.WeeklyProgram) (model.WeeklyProgram, string) {
	next, msg, ok := e.transition(p, model.ProgramCompleted)
	if !ok {
		return next, msg
	}
	return next, "program completed"
}

// ReturnToDraft re-opens a finalized program for editing.
func (e *Engine) ReturnToDraft(p model.WeeklyProgram) (model.WeeklyProgram, string) {
	next, msg, ok := e.transition(p, model.ProgramDraft)
	if !ok {
		return next, msg
	}
	next.FinalizedAt = nil
	return next, "program returned to draft"
}

// transition validates the lifecycle change through the workflow registry.
// A refused transition returns the unchanged program and the reason.
func (e *Engine) transition(p model.WeeklyProgram, target string) (model.WeeklyProgram, string, bool) {
	err := workflow.ValidateTransition(workflow.EntityWeeklyProgram,
		workflow.State(p.Status), workflow.State(target))
	if err != nil {
		e.log.Warnf("program %s: %v", p.ID, err)
		return p, err.Error(), false
	}
	p.Status = target
	e.recordProgram(p)
	return p, "", true
}

func (e *Engine) recordProgram(p model.WeeklyProgram) {
	if err := e.sink.RecordProgram(metrics.ProgramEvent{
		ProgramID:  p.ID,
		PlantID:    p.PlantID,
		Week:       p.Week,
		Year:       p.Year,
		Packages:   len(p.Packages),
		TotalHours: p.TotalHours,
		Status:     p.Status,
		Time:       time.Now(),
	}); err != nil {
		e.log.Errorf("program metrics error: %v", err)
	}
}

// isoWeekThursday returns the Thursday of the given ISO week, the start of
// the fixed execution window. January 4th is always in ISO week 1.
func isoWeekThursday(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := jan4.AddDate(0, 0, 1-wd)
	return monday.AddDate(0, 0, (week-1)*7+3)
}
