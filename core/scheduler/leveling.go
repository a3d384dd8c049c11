package scheduler

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/plantops/maintcore/core/metrics"
	"github.com/plantops/maintcore/core/model"
)

type slotKey struct {
	date  string
	shift model.Shift
	spec  model.Specialty
}

// LevelResources computes the utilization of every (date, shift, specialty)
// bucket touched by the program. Capacity comes from the available workers;
// each package's hours are split evenly across its team specialties. Buckets
// without capacity report zero utilization rather than dividing by zero.
func (e *Engine) LevelResources(p model.WeeklyProgram, workers []model.Worker) []model.ResourceSlot {
	capacity := map[model.Shift]map[model.Specialty]float64{}
	for _, w := range workers {
		if !w.Available {
			continue
		}
		if capacity[w.Shift] == nil {
			capacity[w.Shift] = map[model.Specialty]float64{}
		}
		capacity[w.Shift][w.Specialty] += e.cfg.ShiftCapacityHours
	}

	assigned := map[slotKey]float64{}
	dates := map[string]time.Time{}
	for _, pkg := range p.Packages {
		if len(pkg.Team) == 0 {
			e.log.Warnf("package %s has no team assigned, skipped in leveling", pkg.ID)
			continue
		}
		date := pkg.Date
		if date.IsZero() {
			date = time.Now()
		}
		day := date.Format("2006-01-02")
		dates[day] = date
		share := pkg.Hours / float64(len(pkg.Team))
		for _, spec := range pkg.Team {
			assigned[slotKey{date: day, shift: pkg.Shift, spec: spec}] += share
		}
	}

	keys := make([]slotKey, 0, len(assigned))
	for k := range assigned {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		if keys[i].shift != keys[j].shift {
			return keys[i].shift < keys[j].shift
		}
		return keys[i].spec < keys[j].spec
	})

	slots := make([]model.ResourceSlot, 0, len(keys))
	for _, k := range keys {
		capHours := capacity[k.shift][k.spec]
		pct := 0.0
		if capHours > 0 {
			pct = assigned[k] / capHours * 100
		}
		slots = append(slots, model.ResourceSlot{
			Date:           dates[k.date],
			Shift:          k.shift,
			Specialty:      k.spec,
			AssignedHours:  assigned[k],
			CapacityHours:  capHours,
			UtilizationPct: pct,
		})
	}
	return slots
}

// LevelingResult is the output of the enhanced leveling pass.
type LevelingResult struct {
	Slots         []model.ResourceSlot         `json:"slots"`
	Bottleneck    model.Specialty              `json:"bottleneck"`
	BottleneckPct float64                      `json:"bottleneck_pct"`
	MeanPct       float64                      `json:"mean_pct"`
	PeakPct       float64                      `json:"peak_pct"`
	Suggestions   []model.ResolutionSuggestion `json:"suggestions"`
	MultiDay      []model.MultiDayPackage      `json:"multi_day"`
}

// LevelResourcesEnhanced extends LevelResources with bottleneck tracking,
// add-shift suggestions for every overloaded bucket, and automatic multi-day
// splitting for packages whose per-specialty share exceeds that specialty's
// daily capacity.
func (e *Engine) LevelResourcesEnhanced(p model.WeeklyProgram, workers []model.Worker, caps []model.TradeCapacity) LevelingResult {
	res := LevelingResult{Slots: e.LevelResources(p, workers)}

	pcts := make([]float64, 0, len(res.Slots))
	for _, s := range res.Slots {
		pcts = append(pcts, s.UtilizationPct)
		if s.UtilizationPct > res.BottleneckPct {
			res.BottleneckPct = s.UtilizationPct
			res.Bottleneck = s.Specialty
		}
		if s.UtilizationPct > 100 {
			excess := s.AssignedHours - s.CapacityHours
			res.Suggestions = append(res.Suggestions, model.ResolutionSuggestion{
				ConflictType: model.ConflictOverallocation,
				Kind:         model.SuggestAddShift,
				Suggestion: fmt.Sprintf("Add a %s shift for %s on %s: %.1fh assigned against %.1fh capacity",
					s.Shift, s.Specialty, s.Date.Format("2006-01-02"), s.AssignedHours, s.CapacityHours),
				Impact: fmt.Sprintf("covers %.1fh of excess demand", excess),
			})
		}
	}
	if len(pcts) > 0 {
		res.MeanPct = stat.Mean(pcts, nil)
		res.PeakPct = floats.Max(pcts)
	}

	for _, pkg := range p.Packages {
		if len(pkg.Team) == 0 {
			continue
		}
		share := pkg.Hours / float64(len(pkg.Team))
		minDaily := e.dailyCapacity(pkg.Team[0], caps)
		for _, spec := range pkg.Team[1:] {
			if d := e.dailyCapacity(spec, caps); d < minDaily {
				minDaily = d
			}
		}
		if share > minDaily {
			res.MultiDay = append(res.MultiDay, e.SplitMultiDayPackage(pkg, caps, pkg.Date))
		}
	}

	if err := e.sink.RecordLeveling(metrics.LevelingEvent{
		ProgramID:      p.ID,
		Slots:          len(res.Slots),
		MeanPct:        res.MeanPct,
		PeakPct:        res.PeakPct,
		Bottleneck:     string(res.Bottleneck),
		MultiDaySplits: len(res.MultiDay),
		Time:           time.Now(),
	}); err != nil {
		e.log.Errorf("leveling metrics error: %v", err)
	}
	return res
}

// dailyCapacity resolves the per-day capacity for a specialty from the trade
// capacity table, falling back to the configured shift capacity.
func (e *Engine) dailyCapacity(spec model.Specialty, caps []model.TradeCapacity) float64 {
	for _, c := range caps {
		if c.Specialty != spec {
			continue
		}
		if c.TotalHours > 0 {
			return c.TotalHours
		}
		if c.Headcount > 0 && c.HoursPerWorker > 0 {
			return float64(c.Headcount) * c.HoursPerWorker
		}
	}
	return e.cfg.ShiftCapacityHours
}
