package scheduler

import "github.com/plantops/maintcore/core/model"

// AssignSupportTasks derives the mandatory ancillary tasks for every package
// in the program and recomputes the total hours as package hours plus
// support-task hours.
func (e *Engine) AssignSupportTasks(p model.WeeklyProgram) model.WeeklyProgram {
	var tasks []model.SupportTask
	for _, pkg := range p.Packages {
		tasks = append(tasks, e.deriveSupportTasks(pkg)...)
	}
	p.SupportTasks = tasks

	total := 0.0
	for _, pkg := range p.Packages {
		total += pkg.Hours
	}
	for _, t := range tasks {
		total += t.Hours
	}
	p.TotalHours = total
	e.log.Debugf("assigned %d support tasks to program %s", len(tasks), p.ID)
	return p
}

// deriveSupportTasks applies the fixed derivation rules: isolation and guard
// removal for shutdown work, crane support for long mechanical jobs, and
// cleaning plus commissioning for every package.
func (e *Engine) deriveSupportTasks(pkg model.ScheduledPackage) []model.SupportTask {
	var tasks []model.SupportTask
	if pkg.ShutdownRequired {
		tasks = append(tasks,
			model.SupportTask{
				ID:             pkg.ID + "-LOCK",
				PackageID:      pkg.ID,
				Type:           model.TaskLockout,
				Hours:          e.cfg.SupportTaskHours,
				RequiredBefore: true,
			},
			model.SupportTask{
				ID:             pkg.ID + "-GUARD",
				PackageID:      pkg.ID,
				Type:           model.TaskGuardRemoval,
				Hours:          e.cfg.SupportTaskHours,
				RequiredBefore: true,
			},
		)
	}
	if pkg.HasSpecialty(model.SpecialtyMechanical) && pkg.Hours > e.cfg.CraneThresholdHours {
		tasks = append(tasks, model.SupportTask{
			ID:             pkg.ID + "-CRANE",
			PackageID:      pkg.ID,
			Type:           model.TaskCraneSupport,
			Hours:          e.cfg.CraneTaskHours,
			RequiredBefore: true,
		})
	}
	tasks = append(tasks,
		model.SupportTask{
			ID:        pkg.ID + "-CLEAN",
			PackageID: pkg.ID,
			Type:      model.TaskCleaning,
			Hours:     e.cfg.SupportTaskHours,
		},
		model.SupportTask{
			ID:        pkg.ID + "-COMM",
			PackageID: pkg.ID,
			Type:      model.TaskCommissioning,
			Hours:     e.cfg.SupportTaskHours,
		},
	)
	return tasks
}
