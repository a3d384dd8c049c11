// Package backlog turns a flat list of maintenance demand items into
// candidate work-package groupings and readiness statistics.
package backlog

import (
	"fmt"
	"sort"

	"github.com/plantops/maintcore/core/model"
)

// GroupByEquipment partitions items by exact equipment tag and emits a group
// for every tag shared by at least two items.
func GroupByEquipment(items []model.DemandItem) []model.DemandGroup {
	byTag := partition(items, func(it model.DemandItem) string { return it.EquipmentTag })
	var groups []model.DemandGroup
	for _, tag := range sortedKeys(byTag) {
		members := byTag[tag]
		if len(members) < 2 {
			continue
		}
		groups = append(groups, model.NewDemandGroup(
			"GRP-EQ-"+tag,
			fmt.Sprintf("Combined work on %s", tag),
			fmt.Sprintf("%d pending items on the same equipment", len(members)),
			members,
		))
	}
	return groups
}

// GroupByArea partitions items by area code (first two tag segments) and
// emits a group for every area shared by at least two items.
func GroupByArea(items []model.DemandItem) []model.DemandGroup {
	byArea := partition(items, func(it model.DemandItem) string { return it.AreaCode() })
	var groups []model.DemandGroup
	for _, area := range sortedKeys(byArea) {
		members := byArea[area]
		if len(members) < 2 {
			continue
		}
		groups = append(groups, model.NewDemandGroup(
			"GRP-AREA-"+area,
			fmt.Sprintf("Area route %s", area),
			fmt.Sprintf("%d pending items in area %s", len(members), area),
			members,
		))
	}
	return groups
}

// GroupByShutdown restricts items to those that both require a shutdown
// window and have materials ready, then partitions the qualifying items by
// area. Items failing either precondition are never grouped here.
func GroupByShutdown(items []model.DemandItem) []model.DemandGroup {
	var eligible []model.DemandItem
	for _, it := range items {
		if it.ShutdownRequired && it.MaterialsReady {
			eligible = append(eligible, it)
		}
	}
	byArea := partition(eligible, func(it model.DemandItem) string { return it.AreaCode() })
	var groups []model.DemandGroup
	for _, area := range sortedKeys(byArea) {
		members := byArea[area]
		if len(members) < 2 {
			continue
		}
		groups = append(groups, model.NewDemandGroup(
			"GRP-SHUT-"+area,
			fmt.Sprintf("Shutdown opportunity %s", area),
			fmt.Sprintf("%d shutdown-ready items in area %s", len(members), area),
			members,
		))
	}
	return groups
}

// FindAllGroups runs all three strategies, sorts candidates by descending
// aggregate duration and greedily accepts groups whose member sets do not
// overlap an already-accepted group. Every demand item therefore appears in
// at most one output group; the tie-break biases toward the largest
// non-conflicting groupings first.
func FindAllGroups(items []model.DemandItem) []model.DemandGroup {
	var candidates []model.DemandGroup
	candidates = append(candidates, GroupByEquipment(items)...)
	candidates = append(candidates, GroupByArea(items)...)
	candidates = append(candidates, GroupByShutdown(items)...)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].TotalHours > candidates[j].TotalHours
	})

	used := map[string]struct{}{}
	var accepted []model.DemandGroup
	for _, g := range candidates {
		overlap := false
		for _, it := range g.Items {
			if _, ok := used[it.ID]; ok {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}
		for _, it := range g.Items {
			used[it.ID] = struct{}{}
		}
		accepted = append(accepted, g)
	}
	return accepted
}

// Ungrouped returns the items not claimed by any of the given groups, in
// input order. The caller schedules these individually.
func Ungrouped(items []model.DemandItem, groups []model.DemandGroup) []model.DemandItem {
	claimed := map[string]struct{}{}
	for _, g := range groups {
		for _, it := range g.Items {
			claimed[it.ID] = struct{}{}
		}
	}
	var rest []model.DemandItem
	for _, it := range items {
		if _, ok := claimed[it.ID]; !ok {
			rest = append(rest, it)
		}
	}
	return rest
}

func partition(items []model.DemandItem, key func(model.DemandItem) string) map[string][]model.DemandItem {
	out := map[string][]model.DemandItem{}
	for _, it := range items {
		k := key(it)
		out[k] = append(out[k], it)
	}
	return out
}

func sortedKeys(m map[string][]model.DemandItem) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
