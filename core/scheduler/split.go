package scheduler

import (
	"time"

	"github.com/plantops/maintcore/core/model"
)

// SplitMultiDayPackage spreads one oversized package across consecutive days.
// The bottleneck is the assigned specialty with the smallest per-day capacity;
// each day receives min(remaining, bottleneck capacity) until all hours are
// placed. The per-day hours always sum exactly to the package total.
func (e *Engine) SplitMultiDayPackage(pkg model.ScheduledPackage, caps []model.TradeCapacity, start time.Time) model.MultiDayPackage {
	bottleneck := model.Specialty("")
	daily := e.cfg.ShiftCapacityHours
	for i, spec := range pkg.Team {
		d := e.dailyCapacity(spec, caps)
		if i == 0 || d < daily {
			daily = d
			bottleneck = spec
		}
	}
	if daily <= 0 {
		daily = e.cfg.ShiftCapacityHours
	}
	if start.IsZero() {
		start = pkg.Date
	}
	if start.IsZero() {
		start = time.Now()
	}

	out := model.MultiDayPackage{
		PackageID:  pkg.ID,
		TotalHours: pkg.Hours,
		Bottleneck: bottleneck,
	}
	remaining := pkg.Hours
	for day := 0; remaining > 0; day++ {
		hours := remaining
		if hours > daily {
			hours = daily
		}
		out.Allocations = append(out.Allocations, model.DayAllocation{
			Day:   day + 1,
			Date:  start.AddDate(0, 0, day),
			Hours: hours,
		})
		remaining -= hours
	}
	out.TotalDays = len(out.Allocations)
	e.log.Debugf("split package %s over %d days (bottleneck %s, %.1fh/day)",
		pkg.ID, out.TotalDays, bottleneck, daily)
	return out
}
