package workflow

import (
	"errors"
	"testing"
)

func TestValidateTransitionAllowed(t *testing.T) {
	if err := ValidateTransition(EntityWeeklyProgram, "DRAFT", "FINAL"); err != nil {
		t.Fatalf("expected valid transition: %v", err)
	}
	if err := ValidateTransition(EntityWeeklyProgram, "FINAL", "DRAFT"); err != nil {
		t.Fatalf("reverse edge should be allowed: %v", err)
	}
}

func TestValidateTransitionRejected(t *testing.T) {
	err := ValidateTransition(EntityWeeklyProgram, "DRAFT", "ACTIVE")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSelfTransitionRejected(t *testing.T) {
	err := ValidateTransition(EntityWorkOrder, "PLANNED", "PLANNED")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("self transition must fail unless listed, got %v", err)
	}
}

func TestUnknownEntityType(t *testing.T) {
	err := ValidateTransition("turbine", "A", "B")
	if !errors.Is(err, ErrUnknownEntityType) {
		t.Fatalf("expected ErrUnknownEntityType, got %v", err)
	}
	if _, err := ValidTransitions("turbine", "A"); !errors.Is(err, ErrUnknownEntityType) {
		t.Fatalf("expected ErrUnknownEntityType, got %v", err)
	}
	if _, err := AllStates("turbine"); !errors.Is(err, ErrUnknownEntityType) {
		t.Fatalf("expected ErrUnknownEntityType, got %v", err)
	}
}

func TestUnknownState(t *testing.T) {
	err := ValidateTransition(EntityWeeklyProgram, "ARCHIVED", "DRAFT")
	if !errors.Is(err, ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	entities := []EntityType{
		EntityApprovalWorkflow, EntityWorkRequest, EntityWorkOrder,
		EntityWeeklyProgram, EntityShutdown,
	}
	for _, e := range entities {
		states, err := AllStates(e)
		if err != nil {
			t.Fatalf("%s: %v", e, err)
		}
		for _, s := range states {
			allowed, err := ValidTransitions(e, s)
			if err != nil {
				t.Fatalf("%s/%s: %v", e, s, err)
			}
			if len(allowed) > 0 {
				continue
			}
			// Terminal: no target may validate, including the state itself.
			for _, target := range states {
				if CanTransition(e, s, target) {
					t.Fatalf("%s: terminal state %s allows transition to %s", e, s, target)
				}
			}
		}
	}
}

func TestCompletedProgramIsTerminal(t *testing.T) {
	allowed, err := ValidTransitions(EntityWeeklyProgram, "COMPLETED")
	if err != nil {
		t.Fatalf("valid transitions: %v", err)
	}
	if len(allowed) != 0 {
		t.Fatalf("COMPLETED must be terminal, got %v", allowed)
	}
}
