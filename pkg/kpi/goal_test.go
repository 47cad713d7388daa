package kpi

import (
	"errors"
	"math"
	"testing"
)

func TestValidateRangeGoal(t *testing.T) {
	tests := []struct {
		name    string
		goal    Goal
		wantErr bool
	}{
		{"valid range", TargetRange(90, 120), false},
		{"inverted bounds", TargetRange(80, 50), true},
		{"equal bounds", TargetRange(100, 100), true},
		{"missing max", Goal{Type: GoalTargetRange, Min: fp(90)}, true},
		{"missing min", Goal{Type: GoalTargetRange, Max: fp(120)}, true},
		{"nan bound", TargetRange(math.NaN(), 120), true},
		{"infinite bound", TargetRange(90, math.Inf(1)), true},
		{"directional untouched", HigherIsBetter(), false},
		{"unknown untouched", UnknownGoal(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRangeGoal(tt.goal)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRangeGoal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRangeGoal) {
				t.Errorf("error does not match ErrInvalidRangeGoal: %v", err)
			}
		})
	}
}

func TestGoalIsSet(t *testing.T) {
	tests := []struct {
		name string
		goal Goal
		want bool
	}{
		{"higher", HigherIsBetter(), true},
		{"lower", LowerIsBetter(), true},
		{"valid range", TargetRange(90, 120), true},
		{"inverted range", TargetRange(120, 90), false},
		{"unknown", UnknownGoal(), false},
		{"zero value", Goal{}, false},
	}
	for _, tt := range tests {
		if got := tt.goal.IsSet(); got != tt.want {
			t.Errorf("%s: IsSet() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRangeDistance(t *testing.T) {
	g := TargetRange(90, 120)

	tests := []struct {
		v    float64
		want float64
	}{
		{100, 0},
		{90, 0},
		{120, 0},
		{80, 10},
		{130, 10},
		{40, 50},
	}
	for _, tt := range tests {
		if got := g.RangeDistance(tt.v); got != tt.want {
			t.Errorf("RangeDistance(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}

	if d := HigherIsBetter().RangeDistance(50); d != 0 {
		t.Errorf("directional goal should have zero range distance, got %v", d)
	}
}

func fp(v float64) *float64 { return &v }
