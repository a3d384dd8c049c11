package model

import "time"

// Weekly program lifecycle states. Transitions between them are enforced by
// the workflow registry, not by these constants.
const (
	ProgramDraft     = "DRAFT"
	ProgramFinal     = "FINAL"
	ProgramActive    = "ACTIVE"
	ProgramCompleted = "COMPLETED"
)

// ResourceSlot is the computed utilization of one (date, shift, specialty)
// bucket. Slots are fully recomputed on every leveling pass.
type ResourceSlot struct {
	Date           time.Time `json:"date"`
	Shift          Shift     `json:"shift"`
	Specialty      Specialty `json:"specialty"`
	AssignedHours  float64   `json:"assigned_hours"`
	CapacityHours  float64   `json:"capacity_hours"`
	UtilizationPct float64   `json:"utilization_pct"`
}

// ConflictType distinguishes the two detectable infeasibilities.
type ConflictType string

const (
	ConflictAreaInterference ConflictType = "AREA_INTERFERENCE"
	ConflictOverallocation   ConflictType = "OVERALLOCATION"
)

// Conflict records a detected scheduling infeasibility on one date/shift.
type Conflict struct {
	Type          ConflictType `json:"type"`
	Date          time.Time    `json:"date"`
	Shift         Shift        `json:"shift"`
	Area          string       `json:"area,omitempty"`
	Specialty     Specialty    `json:"specialty,omitempty"`
	PackageIDs    []string     `json:"package_ids"`
	AssignedHours float64      `json:"assigned_hours,omitempty"`
	CapacityHours float64      `json:"capacity_hours,omitempty"`
	Description   string       `json:"description"`
}

// SuggestionKind classifies a conflict-resolution recommendation.
type SuggestionKind string

const (
	SuggestReschedule SuggestionKind = "RESCHEDULE"
	SuggestAddShift   SuggestionKind = "ADD_SHIFT"
	SuggestReassign   SuggestionKind = "REASSIGN"
)

// ResolutionSuggestion is an advisory recommendation tied to one conflict.
// Suggestions are never auto-applied.
type ResolutionSuggestion struct {
	ConflictType ConflictType   `json:"conflict_type"`
	Kind         SuggestionKind `json:"kind"`
	PackageID    string         `json:"package_id,omitempty"`
	Suggestion   string         `json:"suggestion"`
	Impact       string         `json:"impact"`
}

// WeeklyProgram is the complete, lifecycle-managed execution plan for one
// plant and ISO week. TotalHours reflects the sum of package and support-task
// hours as of the last computation; it is not recomputed on read.
type WeeklyProgram struct {
	ID           string             `json:"id"`
	PlantID      string             `json:"plant_id"`
	Week         int                `json:"week"`
	Year         int                `json:"year"`
	Packages     []ScheduledPackage `json:"packages"`
	SupportTasks []SupportTask      `json:"support_tasks"`
	Slots        []ResourceSlot     `json:"slots"`
	Conflicts    []Conflict         `json:"conflicts"`
	TotalHours   float64            `json:"total_hours"`
	Status       string             `json:"status"`
	FinalizedAt  *time.Time         `json:"finalized_at,omitempty"`
}

// AlertKind classifies an operational alert raised by the backlog optimizer.
type AlertKind string

const (
	AlertOverdue            AlertKind = "OVERDUE"
	AlertMaterialDelay      AlertKind = "MATERIAL_DELAY"
	AlertPriorityEscalation AlertKind = "PRIORITY_ESCALATION"
)

// Alert flags a backlog condition requiring human attention.
type Alert struct {
	Kind    AlertKind `json:"kind"`
	ItemIDs []string  `json:"item_ids"`
	Message string    `json:"message"`
}
