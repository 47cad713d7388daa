// Package kpi catalogs the KPI metrics the simulation service emits, the
// improvement goal attached to each, and the persistence of per-flowsheet
// goal overrides.
package kpi

import (
	"errors"
	"fmt"
	"math"
)

// GoalType discriminates the goal tagged union.
type GoalType string

const (
	GoalHigherIsBetter GoalType = "higher_is_better"
	GoalLowerIsBetter  GoalType = "lower_is_better"
	GoalTargetRange    GoalType = "target_range"
	GoalUnknown        GoalType = "unknown"
)

// Goal is the direction of improvement for a metric, or a target range.
// Min/Max are only meaningful for GoalTargetRange.
type Goal struct {
	Type GoalType `json:"type"`
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
}

// HigherIsBetter returns a goal favoring larger values.
func HigherIsBetter() Goal { return Goal{Type: GoalHigherIsBetter} }

// LowerIsBetter returns a goal favoring smaller values.
func LowerIsBetter() Goal { return Goal{Type: GoalLowerIsBetter} }

// TargetRange returns a goal favoring values inside [min, max].
func TargetRange(min, max float64) Goal {
	return Goal{Type: GoalTargetRange, Min: &min, Max: &max}
}

// UnknownGoal returns the unset goal.
func UnknownGoal() Goal { return Goal{Type: GoalUnknown} }

// IsSet reports whether the goal can score a comparison. A target-range goal
// with missing or inverted bounds is treated as unset.
func (g Goal) IsSet() bool {
	switch g.Type {
	case GoalHigherIsBetter, GoalLowerIsBetter:
		return true
	case GoalTargetRange:
		return ValidateRangeGoal(g) == nil
	default:
		return false
	}
}

// ErrInvalidRangeGoal marks a malformed target-range goal.
var ErrInvalidRangeGoal = errors.New("invalid target range goal")

// ValidateRangeGoal checks that a target-range goal carries two finite
// bounds with min strictly below max. Non-range goal types pass unchanged.
func ValidateRangeGoal(g Goal) error {
	if g.Type != GoalTargetRange {
		return nil
	}
	if g.Min == nil || g.Max == nil {
		return fmt.Errorf("%w: both bounds are required", ErrInvalidRangeGoal)
	}
	if math.IsNaN(*g.Min) || math.IsInf(*g.Min, 0) || math.IsNaN(*g.Max) || math.IsInf(*g.Max, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidRangeGoal)
	}
	if *g.Min >= *g.Max {
		return fmt.Errorf("%w: min %v must be below max %v", ErrInvalidRangeGoal, *g.Min, *g.Max)
	}
	return nil
}

// RangeDistance is the distance from v to the target band: zero inside
// [min, max], otherwise the absolute gap to the nearer bound.
func (g Goal) RangeDistance(v float64) float64 {
	if g.Type != GoalTargetRange || g.Min == nil || g.Max == nil {
		return 0
	}
	if v < *g.Min {
		return *g.Min - v
	}
	if v > *g.Max {
		return v - *g.Max
	}
	return 0
}
