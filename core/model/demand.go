package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Priority orders demand items by urgency. Lower values are more urgent.
type Priority int

const (
	PriorityEmergency Priority = iota
	PriorityUrgent
	PriorityNormal
	PriorityPlanned
)

// String returns the canonical uppercase name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityEmergency:
		return "EMERGENCY"
	case PriorityUrgent:
		return "URGENT"
	case PriorityNormal:
		return "NORMAL"
	case PriorityPlanned:
		return "PLANNED"
	}
	return "UNKNOWN"
}

// ParsePriority converts a priority name into a Priority value.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EMERGENCY":
		return PriorityEmergency, nil
	case "URGENT":
		return PriorityUrgent, nil
	case "NORMAL":
		return PriorityNormal, nil
	case "PLANNED":
		return PriorityPlanned, nil
	}
	return PriorityNormal, fmt.Errorf("unknown priority %q", s)
}

// MarshalJSON encodes the priority as its canonical name.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a priority from its canonical name.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Shift identifies a fixed daily work window.
type Shift string

const (
	ShiftMorning   Shift = "MORNING"
	ShiftAfternoon Shift = "AFTERNOON"
	ShiftNight     Shift = "NIGHT"
)

// Specialty is a labour skill category with its own capacity accounting.
type Specialty string

const (
	SpecialtyMechanical      Specialty = "MECHANICAL"
	SpecialtyElectrical      Specialty = "ELECTRICAL"
	SpecialtyInstrumentation Specialty = "INSTRUMENTATION"
	SpecialtyWelding         Specialty = "WELDING"
	SpecialtyScaffolding     Specialty = "SCAFFOLDING"
)

// MaterialsStatus describes how complete the material staging for a package is.
type MaterialsStatus string

const (
	MaterialsReady    MaterialsStatus = "READY"
	MaterialsPartial  MaterialsStatus = "PARTIAL"
	MaterialsNotReady MaterialsStatus = "NOT_READY"
)

// DemandItem is one unit of pending maintenance work awaiting scheduling.
// Items are immutable once created; the core only reads and re-groups them.
type DemandItem struct {
	ID               string      `json:"id"`
	EquipmentID      string      `json:"equipment_id"`
	EquipmentTag     string      `json:"equipment_tag"`
	Priority         Priority    `json:"priority"`
	Specialties      []Specialty `json:"specialties"`
	ShutdownRequired bool        `json:"shutdown_required"`
	MaterialsReady   bool        `json:"materials_ready"`
	EstimatedHours   float64     `json:"estimated_hours"`
	CreatedAt        time.Time   `json:"created_at"`
}

// AreaCode derives the physical area from the equipment tag as the first two
// dash-separated segments, e.g. "BRY-SAG-ML-001" -> "BRY-SAG".
func (d DemandItem) AreaCode() string {
	parts := strings.Split(d.EquipmentTag, "-")
	if len(parts) < 2 {
		return d.EquipmentTag
	}
	return parts[0] + "-" + parts[1]
}

// Validate checks that the demand item is sound for scheduling.
func (d DemandItem) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("demand item id is required")
	}
	if d.EstimatedHours <= 0 {
		return fmt.Errorf("estimated hours must be positive")
	}
	return nil
}

// AgeDays returns the age of the item in whole days relative to now.
func (d DemandItem) AgeDays(now time.Time) int {
	if d.CreatedAt.IsZero() {
		return 0
	}
	return int(now.Sub(d.CreatedAt).Hours() / 24)
}
