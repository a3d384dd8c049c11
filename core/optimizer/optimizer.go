// Package optimizer composes the backlog grouper and the scheduling engine
// into an end-to-end planning pass: stratify the backlog, build packages,
// lay out a rolling day/shift schedule and raise operational alerts.
package optimizer

import (
	"fmt"
	"sort"
	"time"

	"github.com/plantops/maintcore/core/backlog"
	"github.com/plantops/maintcore/core/logger"
	"github.com/plantops/maintcore/core/model"
	"github.com/plantops/maintcore/core/scheduler"
)

// overdueAgeDays is the backlog age beyond which an item raises an alert.
const overdueAgeDays = 30

// Optimizer schedules a backlog over a rolling horizon. Conflict detection
// and multi-day splitting stay with the scheduling engine; this layer only
// orchestrates.
type Optimizer struct {
	cfg scheduler.Config
	log logger.Logger
}

// New creates an Optimizer. A nil logger falls back to a no-op one.
func New(cfg scheduler.Config, log logger.Logger) *Optimizer {
	cfg.SetDefaults()
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Optimizer{cfg: cfg, log: log}
}

// DaySchedule aggregates the packages placed on one (date, shift) bucket.
type DaySchedule struct {
	Date           time.Time   `json:"date"`
	Shift          model.Shift `json:"shift"`
	PackageIDs     []string    `json:"package_ids"`
	Hours          float64     `json:"hours"`
	UtilizationPct float64     `json:"utilization_pct"`
}

// Result is the full output of one optimization pass.
type Result struct {
	Stratification backlog.Stratification   `json:"stratification"`
	Packages       []model.ScheduledPackage `json:"packages"`
	Schedule       []DaySchedule            `json:"schedule"`
	Alerts         []model.Alert            `json:"alerts"`
}

// Optimize runs the full pass against the backlog as of now: grouped
// packages are dated sequentially from tomorrow, ungrouped schedulable items
// go two per day, and shutdown-eligible items land in the first shutdown
// window starting inside the horizon.
func (o *Optimizer) Optimize(now time.Time, items []model.DemandItem, workers []model.Worker, windows []model.ShutdownWindow, horizonDays int) Result {
	res := Result{Stratification: backlog.Stratify(items)}

	groups := backlog.FindAllGroups(items)
	tomorrow := now.AddDate(0, 0, 1)
	for i, g := range groups {
		wp := scheduler.PackageFromGroup(g)
		wp.Date = tomorrow.AddDate(0, 0, i)
		wp.Shift = model.ShiftMorning
		res.Packages = append(res.Packages, wp)
	}

	rest := backlog.Ungrouped(items, groups)
	var shutdownEligible []model.DemandItem
	scheduled := 0
	for _, it := range rest {
		if it.ShutdownRequired && it.MaterialsReady {
			shutdownEligible = append(shutdownEligible, it)
			continue
		}
		if !it.MaterialsReady || it.ShutdownRequired {
			continue
		}
		wp := scheduler.PackageFromItem(it)
		wp.Date = tomorrow.AddDate(0, 0, scheduled/2)
		if scheduled%2 == 0 {
			wp.Shift = model.ShiftMorning
		} else {
			wp.Shift = model.ShiftAfternoon
		}
		res.Packages = append(res.Packages, wp)
		scheduled++
	}

	if win, ok := firstWindowInHorizon(windows, now, horizonDays); ok {
		for _, it := range shutdownEligible {
			wp := scheduler.PackageFromItem(it)
			wp.Date = win.Start
			wp.Shift = model.ShiftMorning
			res.Packages = append(res.Packages, wp)
		}
	} else if len(shutdownEligible) > 0 {
		o.log.Infof("no shutdown window within %d days for %d eligible items",
			horizonDays, len(shutdownEligible))
	}

	res.Schedule = o.buildSchedule(res.Packages, workers)
	res.Alerts = raiseAlerts(now, items)
	o.log.Infof("optimized backlog: %d items, %d packages, %d alerts",
		len(items), len(res.Packages), len(res.Alerts))
	return res
}

// firstWindowInHorizon returns the earliest window whose start date falls
// within [now, now+horizon].
func firstWindowInHorizon(windows []model.ShutdownWindow, now time.Time, horizonDays int) (model.ShutdownWindow, bool) {
	limit := now.AddDate(0, 0, horizonDays)
	best := model.ShutdownWindow{}
	found := false
	for _, w := range windows {
		if w.Start.Before(now) || w.Start.After(limit) {
			continue
		}
		if !found || w.Start.Before(best.Start) {
			best = w
			found = true
		}
	}
	return best, found
}

// buildSchedule aggregates packages per (date, shift) and computes the
// utilization against the total available workforce capacity on that shift.
func (o *Optimizer) buildSchedule(pkgs []model.ScheduledPackage, workers []model.Worker) []DaySchedule {
	shiftCapacity := map[model.Shift]float64{}
	for _, w := range workers {
		if w.Available {
			shiftCapacity[w.Shift] += o.cfg.ShiftCapacityHours
		}
	}

	type key struct {
		day   string
		shift model.Shift
	}
	buckets := map[key]*DaySchedule{}
	for _, wp := range pkgs {
		k := key{day: wp.Date.Format("2006-01-02"), shift: wp.Shift}
		b, ok := buckets[k]
		if !ok {
			b = &DaySchedule{Date: wp.Date, Shift: wp.Shift}
			buckets[k] = b
		}
		b.PackageIDs = append(b.PackageIDs, wp.ID)
		b.Hours += wp.Hours
	}

	out := make([]DaySchedule, 0, len(buckets))
	for _, b := range buckets {
		if capHours := shiftCapacity[b.Shift]; capHours > 0 {
			b.UtilizationPct = b.Hours / capHours * 100
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Shift < out[j].Shift
	})
	return out
}

// raiseAlerts flags overdue items, material delays and the presence of
// emergency-priority work.
func raiseAlerts(now time.Time, items []model.DemandItem) []model.Alert {
	var overdue, delayed, emergency []string
	for _, it := range items {
		if it.AgeDays(now) > overdueAgeDays {
			overdue = append(overdue, it.ID)
		}
		if !it.MaterialsReady {
			delayed = append(delayed, it.ID)
		}
		if it.Priority == model.PriorityEmergency {
			emergency = append(emergency, it.ID)
		}
	}
	var alerts []model.Alert
	if len(overdue) > 0 {
		alerts = append(alerts, model.Alert{
			Kind:    model.AlertOverdue,
			ItemIDs: overdue,
			Message: fmt.Sprintf("%d items older than %d days", len(overdue), overdueAgeDays),
		})
	}
	if len(delayed) > 0 {
		alerts = append(alerts, model.Alert{
			Kind:    model.AlertMaterialDelay,
			ItemIDs: delayed,
			Message: fmt.Sprintf("%d items waiting on materials", len(delayed)),
		})
	}
	if len(emergency) > 0 {
		alerts = append(alerts, model.Alert{
			Kind:    model.AlertPriorityEscalation,
			ItemIDs: emergency,
			Message: fmt.Sprintf("%d emergency-priority items in backlog", len(emergency)),
		})
	}
	return alerts
}
