package kpi

import (
	"context"
	"fmt"
)

// Scope identifies whose goal overrides are being read or written: one
// project and one flowsheet version.
type Scope struct {
	ProjectID          string `json:"projectId"`
	FlowsheetVersionID string `json:"flowsheetVersionId"`
}

// Key returns the scope's storage key.
func (s Scope) Key() string {
	return s.ProjectID + "/" + s.FlowsheetVersionID
}

// Valid reports whether both scope components are present.
func (s Scope) Valid() bool {
	return s.ProjectID != "" && s.FlowsheetVersionID != ""
}

// GoalStore persists goal overrides per scope. Implementations must reject
// invalid range goals; a failed Save leaves the stored map unchanged.
type GoalStore interface {
	// Load returns the stored overrides for the scope, empty if none.
	Load(ctx context.Context, scope Scope) (map[string]Goal, error)
	// Save replaces the stored overrides for the scope.
	Save(ctx context.Context, scope Scope, goals map[string]Goal) error
}

// validateGoals checks every goal before a save is accepted.
func validateGoals(scope Scope, goals map[string]Goal) error {
	if !scope.Valid() {
		return fmt.Errorf("goal store: incomplete scope %q", scope.Key())
	}
	for key, g := range goals {
		if err := ValidateRangeGoal(g); err != nil {
			return fmt.Errorf("goal for %s: %w", key, err)
		}
		switch g.Type {
		case GoalHigherIsBetter, GoalLowerIsBetter, GoalTargetRange, GoalUnknown:
		default:
			return fmt.Errorf("goal for %s: unknown goal type %q", key, g.Type)
		}
	}
	return nil
}
