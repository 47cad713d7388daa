// Package compare scores a scenario's KPI results against a baseline run and
// assembles the ordered comparison rows the dashboard presents. Everything
// here is pure: identical inputs always produce identical output.
package compare

import (
	"math"

	"github.com/mineworks/grindflow/pkg/kpi"
)

// Verdict classifies a scenario KPI relative to baseline.
type Verdict string

const (
	Better  Verdict = "better"
	Worse   Verdict = "worse"
	Same    Verdict = "same"
	Unknown Verdict = "unknown"
)

// Epsilon is the absolute tolerance below which two KPI values are the same.
const Epsilon = 1e-6

// baselineZero is the magnitude below which a baseline cannot anchor a
// percentage delta.
const baselineZero = 1e-9

// Reason strings for unknown verdicts.
const (
	ReasonNoBaseline   = "no baseline value"
	ReasonNoScenario   = "no scenario value"
	ReasonGoalNotSet   = "goal not set"
	ReasonBaselineZero = "baseline is zero"
)

// Evaluation is the scored comparison of one KPI pair.
type Evaluation struct {
	Delta        *float64 `json:"delta,omitempty"`
	DeltaPercent *float64 `json:"deltaPercent,omitempty"`
	Verdict      Verdict  `json:"verdict"`
	Reason       string   `json:"verdictReason,omitempty"`
}

// Evaluate scores scenario against baseline under the given goal.
//
// Missing values and unset goals yield an unknown verdict with a reason. For
// directional goals a zero baseline also yields unknown, because the percent
// delta those goals are judged by has no anchor; target-range goals are
// scored by distance to the band and do not need a baseline anchor.
func Evaluate(baseline, scenario *float64, goal kpi.Goal) Evaluation {
	ev := Evaluation{Verdict: Unknown}

	if baseline == nil {
		ev.Reason = ReasonNoBaseline
		return ev
	}
	if scenario == nil {
		ev.Reason = ReasonNoScenario
		return ev
	}

	delta := *scenario - *baseline
	ev.Delta = &delta
	if math.Abs(*baseline) > baselineZero {
		pct := delta / *baseline * 100
		ev.DeltaPercent = &pct
	}

	if !goal.IsSet() {
		ev.Reason = ReasonGoalNotSet
		return ev
	}

	switch goal.Type {
	case kpi.GoalHigherIsBetter, kpi.GoalLowerIsBetter:
		if math.Abs(*baseline) <= baselineZero {
			ev.Reason = ReasonBaselineZero
			return ev
		}
		if math.Abs(delta) < Epsilon {
			ev.Verdict = Same
			return ev
		}
		favorable := delta > 0
		if goal.Type == kpi.GoalLowerIsBetter {
			favorable = delta < 0
		}
		if favorable {
			ev.Verdict = Better
		} else {
			ev.Verdict = Worse
		}
		return ev

	case kpi.GoalTargetRange:
		if math.Abs(delta) < Epsilon {
			ev.Verdict = Same
			return ev
		}
		// Moving into or closer to the target band wins, even when the
		// baseline was already inside it.
		db := goal.RangeDistance(*baseline)
		ds := goal.RangeDistance(*scenario)
		switch {
		case ds < db-Epsilon:
			ev.Verdict = Better
		case ds > db+Epsilon:
			ev.Verdict = Worse
		default:
			ev.Verdict = Same
		}
		return ev

	default:
		ev.Reason = ReasonGoalNotSet
		return ev
	}
}

// ImpactScore ranks how much a comparison moved: zero for same (and for
// pairs with no computable movement), otherwise the percent delta magnitude
// when available, the absolute delta otherwise, and for range goals with no
// other signal the change in distance to the target band.
func ImpactScore(ev Evaluation, goal kpi.Goal, baseline, scenario *float64) float64 {
	if ev.Verdict == Same {
		return 0
	}
	if ev.DeltaPercent != nil {
		return math.Abs(*ev.DeltaPercent)
	}
	if ev.Delta != nil {
		return math.Abs(*ev.Delta)
	}
	if goal.Type == kpi.GoalTargetRange && baseline != nil && scenario != nil {
		return math.Abs(goal.RangeDistance(*baseline) - goal.RangeDistance(*scenario))
	}
	return 0
}
