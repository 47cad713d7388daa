package compare

import (
	"math"
	"sort"

	"github.com/mineworks/grindflow/pkg/kpi"
)

// Row is one metric's scored comparison, derived on every request and never
// mutated in place.
type Row struct {
	Metric        kpi.Metric `json:"metric"`
	BaselineValue *float64   `json:"baselineValue,omitempty"`
	ScenarioValue *float64   `json:"scenarioValue,omitempty"`
	Delta         *float64   `json:"delta,omitempty"`
	DeltaPercent  *float64   `json:"deltaPercent,omitempty"`
	Verdict       Verdict    `json:"verdict"`
	VerdictReason string     `json:"verdictReason,omitempty"`
	Impact        float64    `json:"impact"`

	// order is the metric's position in the merged declaration order, the
	// stable tie-break for every sort mode.
	order int
}

// SortMode selects the row ordering.
type SortMode int

const (
	// SortDeclaration keeps the registry's declaration order.
	SortDeclaration SortMode = iota
	// SortPercentDelta orders by |percent delta| descending; rows without a
	// percent delta sink to the bottom.
	SortPercentDelta
)

// VerdictFilter restricts which rows are returned.
type VerdictFilter int

const (
	FilterAll VerdictFilter = iota
	FilterOnlyBetter
	FilterOnlyWorse
)

// Options configures one comparison request.
type Options struct {
	Sort        SortMode
	Filter      VerdictFilter
	OnlyChanged bool // drop rows whose delta is negligible
}

// Compare merges the KPI keys of both run payloads via the registry, applies
// the scope's goal overrides, and scores every metric. The result is
// deterministic: observed keys merge in lexicographic order and ties sort by
// declaration order.
func Compare(reg *kpi.Registry, overrides map[string]kpi.Goal, baseline, scenario map[string]float64, opts Options) []Row {
	observed := make([]string, 0, len(baseline)+len(scenario))
	for key := range baseline {
		observed = append(observed, key)
	}
	for key := range scenario {
		if _, dup := baseline[key]; !dup {
			observed = append(observed, key)
		}
	}
	sort.Strings(observed)

	metrics := reg.MergeObservedKeys(observed)
	rows := make([]Row, 0, len(metrics))
	for i, metric := range metrics {
		goal := metric.DefaultGoal
		if override, ok := overrides[metric.Key]; ok {
			goal = override
		}

		bv := lookupValue(reg, metric, baseline)
		sv := lookupValue(reg, metric, scenario)

		// Metrics absent from both payloads would render as empty rows;
		// skip them instead.
		if bv == nil && sv == nil {
			continue
		}

		ev := Evaluate(bv, sv, goal)
		rows = append(rows, Row{
			Metric:        metric,
			BaselineValue: bv,
			ScenarioValue: sv,
			Delta:         ev.Delta,
			DeltaPercent:  ev.DeltaPercent,
			Verdict:       ev.Verdict,
			VerdictReason: ev.Reason,
			Impact:        ImpactScore(ev, goal, bv, sv),
			order:         i,
		})
	}

	rows = filterRows(rows, opts)
	sortRows(rows, opts.Sort)
	return rows
}

// lookupValue finds the metric's value in a raw payload, trying the
// canonical key first and then each alias.
func lookupValue(reg *kpi.Registry, metric kpi.Metric, payload map[string]float64) *float64 {
	for _, key := range reg.ValueKeys(metric) {
		if v, ok := payload[key]; ok {
			value := v
			return &value
		}
	}
	return nil
}

func filterRows(rows []Row, opts Options) []Row {
	filtered := rows[:0]
	for _, row := range rows {
		switch opts.Filter {
		case FilterOnlyBetter:
			if row.Verdict != Better {
				continue
			}
		case FilterOnlyWorse:
			if row.Verdict != Worse {
				continue
			}
		}
		if opts.OnlyChanged {
			if row.Delta == nil || math.Abs(*row.Delta) < Epsilon {
				continue
			}
		}
		filtered = append(filtered, row)
	}
	return filtered
}

func sortRows(rows []Row, mode SortMode) {
	switch mode {
	case SortPercentDelta:
		sort.SliceStable(rows, func(i, j int) bool {
			pi, pj := percentMagnitude(rows[i]), percentMagnitude(rows[j])
			if pi != pj {
				return pi > pj
			}
			return rows[i].order < rows[j].order
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].order < rows[j].order
		})
	}
}

func percentMagnitude(row Row) float64 {
	if row.DeltaPercent == nil {
		return -1
	}
	return math.Abs(*row.DeltaPercent)
}

// TopMovers returns the n rows with the highest impact score and the given
// verdict, used to surface top improvements and worsenings.
func TopMovers(rows []Row, verdict Verdict, n int) []Row {
	matched := make([]Row, 0)
	for _, row := range rows {
		if row.Verdict == verdict && row.Impact > 0 {
			matched = append(matched, row)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Impact != matched[j].Impact {
			return matched[i].Impact > matched[j].Impact
		}
		return matched[i].order < matched[j].order
	})
	if n < len(matched) {
		matched = matched[:n]
	}
	return matched
}
