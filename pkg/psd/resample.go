package psd

import "sort"

// ResampleResult is the output of ResampleOntoUnion: one shared size axis
// and one interpolated value series per input curve. A nil series marks a
// degenerate input curve (fewer than 2 points) that could not be resampled.
type ResampleResult struct {
	Sizes  []float64   `json:"sizes"`
	Values [][]float64 `json:"values"`
	Unit   Unit        `json:"unit"`
}

// ResampleOntoUnion projects every curve onto the sorted union of all
// distinct sizes across the inputs, so curves sampled at different grids can
// be overlaid and diffed on one shared axis. All curves must share a unit;
// callers mixing producers convert first (ConvertUnit), mixing without
// conversion is ErrUnitMismatch. The result is deterministic for identical
// inputs: the union is sorted ascending with exact duplicates collapsed to
// their first occurrence.
func ResampleOntoUnion(curves []*Curve) (*ResampleResult, error) {
	if len(curves) == 0 {
		return &ResampleResult{Sizes: []float64{}, Values: [][]float64{}}, nil
	}

	unit := Unit("")
	total := 0
	for _, c := range curves {
		if c.Len() == 0 {
			continue
		}
		if unit == "" {
			unit = c.Unit
		} else if c.Unit != unit {
			return nil, ErrUnitMismatch
		}
		total += c.Len()
	}

	union := make([]float64, 0, total)
	for _, c := range curves {
		if c.Len() == 0 {
			continue
		}
		union = append(union, c.Sizes...)
	}
	sort.Float64s(union)

	// Collapse exact duplicates in place.
	sizes := union[:0]
	for i, s := range union {
		if i == 0 || s != union[i-1] {
			sizes = append(sizes, s)
		}
	}

	values := make([][]float64, len(curves))
	for ci, c := range curves {
		if c.Len() < 2 {
			// Degenerate curves degrade to a missing series.
			continue
		}
		series := make([]float64, len(sizes))
		for si, s := range sizes {
			v, _ := c.ValueAt(s)
			series[si] = v
		}
		values[ci] = series
	}

	return &ResampleResult{Sizes: sizes, Values: values, Unit: unit}, nil
}

// Normalize converts every curve to the target unit and returns the
// converted set, leaving the inputs untouched.
func Normalize(curves []*Curve, target Unit) ([]*Curve, error) {
	out := make([]*Curve, len(curves))
	for i, c := range curves {
		converted, err := c.ConvertUnit(target)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}
