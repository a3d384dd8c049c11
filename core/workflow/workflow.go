// Package workflow provides a table-driven transition validator shared by
// every stateful entity in the system. Transitions are data, not code: adding
// an entity type or changing its rules only touches the registry below.
package workflow

import (
	"errors"
	"fmt"
	"sort"
)

// EntityType identifies one stateful entity class.
type EntityType string

const (
	EntityApprovalWorkflow EntityType = "approval_workflow"
	EntityWorkRequest      EntityType = "work_request"
	EntityWorkOrder        EntityType = "work_order"
	EntityWeeklyProgram    EntityType = "weekly_program"
	EntityShutdown         EntityType = "shutdown"
)

// State is one lifecycle state of an entity.
type State string

var (
	// ErrUnknownEntityType reports an entity type missing from the registry.
	ErrUnknownEntityType = errors.New("unknown entity type")
	// ErrUnknownState reports a state that is not part of the entity's lifecycle.
	ErrUnknownState = errors.New("unknown state")
	// ErrInvalidTransition reports a transition not allowed by the registry.
	ErrInvalidTransition = errors.New("invalid transition")
)

// registry maps each entity type to its allowed transitions. Terminal states
// map to an empty set; self-transitions fail unless explicitly listed.
var registry = map[EntityType]map[State][]State{
	EntityApprovalWorkflow: {
		"PENDING":  {"APPROVED", "REJECTED"},
		"APPROVED": {},
		"REJECTED": {"PENDING"},
	},
	EntityWorkRequest: {
		"OPEN":      {"SCREENED", "CANCELLED"},
		"SCREENED":  {"APPROVED", "CANCELLED"},
		"APPROVED":  {"CONVERTED"},
		"CONVERTED": {},
		"CANCELLED": {},
	},
	EntityWorkOrder: {
		"PLANNED":      {"SCHEDULED", "CANCELLED"},
		"SCHEDULED":    {"IN_EXECUTION", "PLANNED"},
		"IN_EXECUTION": {"COMPLETED"},
		"COMPLETED":    {"CLOSED"},
		"CLOSED":       {},
		"CANCELLED":    {},
	},
	EntityWeeklyProgram: {
		"DRAFT":     {"FINAL"},
		"FINAL":     {"ACTIVE", "DRAFT"},
		"ACTIVE":    {"COMPLETED"},
		"COMPLETED": {},
	},
	EntityShutdown: {
		"PLANNED":        {"IN_PREPARATION", "CANCELLED"},
		"IN_PREPARATION": {"EXECUTING"},
		"EXECUTING":      {"COMPLETED"},
		"COMPLETED":      {},
		"CANCELLED":      {},
	},
}

// ValidateTransition checks that moving the entity from current to target is
// allowed. It returns nil on success and never mutates anything; the caller
// applies the new state to its own entity.
func ValidateTransition(entity EntityType, current, target State) error {
	states, ok := registry[entity]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntityType, entity)
	}
	allowed, ok := states[current]
	if !ok {
		return fmt.Errorf("%w: %s has no state %s", ErrUnknownState, entity, current)
	}
	for _, s := range allowed {
		if s == target {
			return nil
		}
	}
	return fmt.Errorf("%w: %s cannot move from %s to %s (allowed: %v)",
		ErrInvalidTransition, entity, current, target, allowed)
}

// CanTransition reports whether the transition is allowed without detail.
func CanTransition(entity EntityType, current, target State) bool {
	return ValidateTransition(entity, current, target) == nil
}

// ValidTransitions returns the allowed next states for the given state.
// Terminal states yield an empty slice.
func ValidTransitions(entity EntityType, state State) ([]State, error) {
	states, ok := registry[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntityType, entity)
	}
	allowed, ok := states[state]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no state %s", ErrUnknownState, entity, state)
	}
	out := make([]State, len(allowed))
	copy(out, allowed)
	return out, nil
}

// AllStates returns every state known for the entity type, sorted.
func AllStates(entity EntityType) ([]State, error) {
	states, ok := registry[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntityType, entity)
	}
	out := make([]State, 0, len(states))
	for s := range states {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
