package backlog

import "github.com/plantops/maintcore/core/model"

// Stratification is a read-only aggregation over the backlog. It never
// groups or mutates the input.
type Stratification struct {
	ByPriority       map[model.Priority]int `json:"by_priority"`
	ShutdownRequired int                    `json:"shutdown_required"`
	Online           int                    `json:"online"`
	MaterialsReady   int                    `json:"materials_ready"`
	MaterialsPending int                    `json:"materials_pending"`
	ByArea           map[string]int         `json:"by_area"`
	TotalItems       int                    `json:"total_items"`
	TotalHours       float64                `json:"total_hours"`
	SchedulableNow   int                    `json:"schedulable_now"`
}

// Stratify computes backlog statistics: priority buckets, shutdown vs online
// split, materials readiness, per-area counts and the number of items that
// can be scheduled immediately (materials ready and no shutdown needed).
func Stratify(items []model.DemandItem) Stratification {
	s := Stratification{
		ByPriority: map[model.Priority]int{},
		ByArea:     map[string]int{},
	}
	for _, it := range items {
		s.ByPriority[it.Priority]++
		if it.ShutdownRequired {
			s.ShutdownRequired++
		} else {
			s.Online++
		}
		if it.MaterialsReady {
			s.MaterialsReady++
		} else {
			s.MaterialsPending++
		}
		s.ByArea[it.AreaCode()]++
		s.TotalItems++
		s.TotalHours += it.EstimatedHours
		if it.MaterialsReady && !it.ShutdownRequired {
			s.SchedulableNow++
		}
	}
	return s
}
