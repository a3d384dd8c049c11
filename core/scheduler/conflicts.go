package scheduler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/plantops/maintcore/core/metrics"
	"github.com/plantops/maintcore/core/model"
)

// DetectConflicts computes area-interference and specialist-overallocation
// conflicts across the program's packages. The result is a full recompute;
// it replaces, never accumulates.
func (e *Engine) DetectConflicts(p model.WeeklyProgram) []model.Conflict {
	type bucket struct {
		date  time.Time
		shift model.Shift
		pkgs  []model.ScheduledPackage
	}
	buckets := map[string]*bucket{}
	var order []string
	for _, pkg := range p.Packages {
		key := pkg.Date.Format("2006-01-02") + "|" + string(pkg.Shift)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{date: pkg.Date, shift: pkg.Shift}
			buckets[key] = b
			order = append(order, key)
		}
		b.pkgs = append(b.pkgs, pkg)
	}
	sort.Strings(order)

	var conflicts []model.Conflict
	for _, key := range order {
		b := buckets[key]

		// Area interference: more than one package needing the same area.
		areaPkgs := map[string][]string{}
		for _, pkg := range b.pkgs {
			for _, area := range pkg.Areas() {
				areaPkgs[area] = append(areaPkgs[area], pkg.ID)
			}
		}
		areas := make([]string, 0, len(areaPkgs))
		for a := range areaPkgs {
			areas = append(areas, a)
		}
		sort.Strings(areas)
		for _, area := range areas {
			ids := areaPkgs[area]
			if len(ids) < 2 {
				continue
			}
			conflicts = append(conflicts, model.Conflict{
				Type:       model.ConflictAreaInterference,
				Date:       b.date,
				Shift:      b.shift,
				Area:       area,
				PackageIDs: ids,
				Description: fmt.Sprintf("packages %s all require area %s on %s %s",
					strings.Join(ids, ", "), area, b.date.Format("2006-01-02"), b.shift),
			})
		}

		// Specialist overallocation: a trade's assigned hours exceed the
		// per-shift capacity.
		specHours := map[model.Specialty]float64{}
		specPkgs := map[model.Specialty][]string{}
		for _, pkg := range b.pkgs {
			if len(pkg.Team) == 0 {
				continue
			}
			share := pkg.Hours / float64(len(pkg.Team))
			for _, spec := range pkg.Team {
				specHours[spec] += share
				specPkgs[spec] = append(specPkgs[spec], pkg.ID)
			}
		}
		specs := make([]model.Specialty, 0, len(specHours))
		for s := range specHours {
			specs = append(specs, s)
		}
		sort.Slice(specs, func(i, j int) bool { return specs[i] < specs[j] })
		for _, spec := range specs {
			hours := specHours[spec]
			if hours <= e.cfg.ShiftCapacityHours {
				continue
			}
			conflicts = append(conflicts, model.Conflict{
				Type:          model.ConflictOverallocation,
				Date:          b.date,
				Shift:         b.shift,
				Specialty:     spec,
				PackageIDs:    specPkgs[spec],
				AssignedHours: hours,
				CapacityHours: e.cfg.ShiftCapacityHours,
				Description: fmt.Sprintf("%s assigned %.1fh exceeds %.1fh capacity on %s %s",
					spec, hours, e.cfg.ShiftCapacityHours, b.date.Format("2006-01-02"), b.shift),
			})
		}
	}
	return conflicts
}

// RefreshConflicts recomputes the conflicts and returns the program with its
// stored conflict list replaced.
func (e *Engine) RefreshConflicts(p model.WeeklyProgram) model.WeeklyProgram {
	conflicts := e.DetectConflicts(p)
	p.Conflicts = conflicts

	area, over := 0, 0
	for _, c := range conflicts {
		if c.Type == model.ConflictAreaInterference {
			area++
		} else {
			over++
		}
	}
	if err := e.sink.RecordConflicts(metrics.ConflictsEvent{
		ProgramID:        p.ID,
		AreaInterference: area,
		Overallocation:   over,
		Time:             time.Now(),
	}); err != nil {
		e.log.Errorf("conflict metrics error: %v", err)
	}
	return p
}

// SuggestResolutions produces advisory recommendations for each conflict:
// rescheduling for area interference, adding a shift for overallocation and,
// when several packages are implicated, reassigning the last one to a
// cross-trained resource. Nothing is auto-applied.
func (e *Engine) SuggestResolutions(conflicts []model.Conflict) []model.ResolutionSuggestion {
	var out []model.ResolutionSuggestion
	for _, c := range conflicts {
		switch c.Type {
		case model.ConflictAreaInterference:
			if len(c.PackageIDs) == 0 {
				continue
			}
			out = append(out, model.ResolutionSuggestion{
				ConflictType: c.Type,
				Kind:         model.SuggestReschedule,
				PackageID:    c.PackageIDs[0],
				Suggestion: fmt.Sprintf("Move package %s to a different day to free area %s",
					c.PackageIDs[0], c.Area),
				Impact: "removes the area interference without extra resources",
			})
		case model.ConflictOverallocation:
			out = append(out, model.ResolutionSuggestion{
				ConflictType: c.Type,
				Kind:         model.SuggestAddShift,
				Suggestion: fmt.Sprintf("Add a %s shift for %s: %.1fh assigned against %.1fh capacity",
					c.Shift, c.Specialty, c.AssignedHours, c.CapacityHours),
				Impact: fmt.Sprintf("covers %.1fh of excess demand", c.AssignedHours-c.CapacityHours),
			})
			if len(c.PackageIDs) > 1 {
				last := c.PackageIDs[len(c.PackageIDs)-1]
				out = append(out, model.ResolutionSuggestion{
					ConflictType: c.Type,
					Kind:         model.SuggestReassign,
					PackageID:    last,
					Suggestion: fmt.Sprintf("Reassign package %s to a cross-trained resource outside %s",
						last, c.Specialty),
					Impact: "relieves the overloaded trade at the cost of cross-training",
				})
			}
		}
	}
	return out
}
