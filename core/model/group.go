package model

import "sort"

// DemandGroup bundles two or more demand items for combined execution.
// Groups are created transiently by the backlog grouper and never mutated.
type DemandGroup struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Reason           string       `json:"reason"`
	Items            []DemandItem `json:"items"`
	TotalHours       float64      `json:"total_hours"`
	Specialties      []Specialty  `json:"specialties"`
	ShutdownRequired bool         `json:"shutdown_required"`
}

// ItemIDs returns the member item identifiers in member order.
func (g DemandGroup) ItemIDs() []string {
	ids := make([]string, len(g.Items))
	for i, it := range g.Items {
		ids[i] = it.ID
	}
	return ids
}

// NewDemandGroup aggregates the given items into a group, computing total
// hours, the specialty union and the shutdown requirement.
func NewDemandGroup(id, name, reason string, items []DemandItem) DemandGroup {
	g := DemandGroup{ID: id, Name: name, Reason: reason, Items: items}
	set := map[Specialty]struct{}{}
	for _, it := range items {
		g.TotalHours += it.EstimatedHours
		if it.ShutdownRequired {
			g.ShutdownRequired = true
		}
		for _, s := range it.Specialties {
			set[s] = struct{}{}
		}
	}
	for s := range set {
		g.Specialties = append(g.Specialties, s)
	}
	sort.Slice(g.Specialties, func(i, j int) bool { return g.Specialties[i] < g.Specialties[j] })
	return g
}
