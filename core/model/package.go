package model

import (
	"sort"
	"time"
)

// ScheduledPackage is a demand group or individual item bound to a calendar
// date and shift with an assigned team. Immutable once placed; multi-day
// splitting produces derived allocations that reference it by ID.
type ScheduledPackage struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Items            []DemandItem    `json:"items"`
	Date             time.Time       `json:"date"`
	Shift            Shift           `json:"shift"`
	Team             []Specialty     `json:"team"`
	Hours            float64         `json:"hours"`
	Materials        MaterialsStatus `json:"materials"`
	ShutdownRequired bool            `json:"shutdown_required"`
}

// Areas returns the distinct area codes covered by the package's items,
// sorted for deterministic output.
func (p ScheduledPackage) Areas() []string {
	set := map[string]struct{}{}
	for _, it := range p.Items {
		set[it.AreaCode()] = struct{}{}
	}
	areas := make([]string, 0, len(set))
	for a := range set {
		areas = append(areas, a)
	}
	sort.Strings(areas)
	return areas
}

// HasSpecialty reports whether the assigned team includes the specialty.
func (p ScheduledPackage) HasSpecialty(s Specialty) bool {
	for _, t := range p.Team {
		if t == s {
			return true
		}
	}
	return false
}

// SupportTaskType identifies a mandatory ancillary activity.
type SupportTaskType string

const (
	TaskLockout       SupportTaskType = "LOCKOUT_ISOLATION"
	TaskGuardRemoval  SupportTaskType = "GUARD_REMOVAL"
	TaskCraneSupport  SupportTaskType = "CRANE_SUPPORT"
	TaskCleaning      SupportTaskType = "POST_EXECUTION_CLEANING"
	TaskCommissioning SupportTaskType = "COMMISSIONING"
)

// SupportTask is a non-optional task derived from a package's attributes.
type SupportTask struct {
	ID             string          `json:"id"`
	PackageID      string          `json:"package_id"`
	Type           SupportTaskType `json:"type"`
	Hours          float64         `json:"hours"`
	RequiredBefore bool            `json:"required_before"`
}

// DayAllocation is one day's share of a multi-day package.
type DayAllocation struct {
	Day   int       `json:"day"`
	Date  time.Time `json:"date"`
	Hours float64   `json:"hours"`
}

// MultiDayPackage is the result of splitting an oversized package across
// consecutive days. The per-day hours always sum to the original total.
type MultiDayPackage struct {
	PackageID   string          `json:"package_id"`
	TotalHours  float64         `json:"total_hours"`
	Bottleneck  Specialty       `json:"bottleneck"`
	Allocations []DayAllocation `json:"allocations"`
	TotalDays   int             `json:"total_days"`
}
