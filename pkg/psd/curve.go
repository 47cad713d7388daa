// Package psd represents particle-size-distribution curves (cumulative
// percent passing vs. particle size) and the interpolation used to read
// percentiles and to overlay curves sampled on different size grids.
package psd

import (
	"errors"
	"fmt"
)

// Unit is the length unit of a curve's size abscissas.
type Unit string

const (
	Micrometer Unit = "um"
	Millimeter Unit = "mm"
)

// Common sentinel errors
var (
	ErrUnitMismatch    = errors.New("curves use different size units")
	ErrDegenerateCurve = errors.New("curve has fewer than 2 points")
	ErrMalformedCurve  = errors.New("malformed curve data")
)

// Curve is a cumulative-passing curve. Sizes are strictly increasing and
// CumPassing is non-decreasing in [0, 100], with matching lengths.
type Curve struct {
	Sizes      []float64 `json:"sizes"`
	CumPassing []float64 `json:"cumPassing"`
	Unit       Unit      `json:"unit"`

	p80 *float64
	p50 *float64
}

// NewCurve builds a curve after checking its invariants.
func NewCurve(sizes, cumPassing []float64, unit Unit) (*Curve, error) {
	if len(sizes) != len(cumPassing) {
		return nil, fmt.Errorf("%w: %d sizes vs %d values", ErrMalformedCurve, len(sizes), len(cumPassing))
	}
	if len(sizes) < 2 {
		return nil, ErrDegenerateCurve
	}
	if unit != Micrometer && unit != Millimeter {
		return nil, fmt.Errorf("%w: unknown unit %q", ErrMalformedCurve, unit)
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			return nil, fmt.Errorf("%w: sizes not strictly increasing at index %d", ErrMalformedCurve, i)
		}
		if cumPassing[i] < cumPassing[i-1] {
			return nil, fmt.Errorf("%w: cumulative passing decreases at index %d", ErrMalformedCurve, i)
		}
	}
	for i, v := range cumPassing {
		if v < 0 || v > 100 {
			return nil, fmt.Errorf("%w: cumulative passing %v out of [0,100] at index %d", ErrMalformedCurve, v, i)
		}
	}
	return &Curve{Sizes: sizes, CumPassing: cumPassing, Unit: unit}, nil
}

// Len returns the number of samples.
func (c *Curve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Sizes)
}

// P80 returns the 80th-percentile size, cached after first computation.
func (c *Curve) P80() (float64, bool) {
	if c.p80 != nil {
		return *c.p80, true
	}
	v, ok := c.Percentile(80)
	if ok {
		c.p80 = &v
	}
	return v, ok
}

// P50 returns the median size, cached after first computation.
func (c *Curve) P50() (float64, bool) {
	if c.p50 != nil {
		return *c.p50, true
	}
	v, ok := c.Percentile(50)
	if ok {
		c.p50 = &v
	}
	return v, ok
}

// ConvertUnit returns a copy of the curve rescaled to the target unit.
// Converting to the curve's own unit returns the curve unchanged.
func (c *Curve) ConvertUnit(target Unit) (*Curve, error) {
	if c.Unit == target {
		return c, nil
	}
	var factor float64
	switch {
	case c.Unit == Millimeter && target == Micrometer:
		factor = 1000
	case c.Unit == Micrometer && target == Millimeter:
		factor = 0.001
	default:
		return nil, fmt.Errorf("%w: cannot convert %q to %q", ErrMalformedCurve, c.Unit, target)
	}

	sizes := make([]float64, len(c.Sizes))
	for i, s := range c.Sizes {
		sizes[i] = s * factor
	}
	values := make([]float64, len(c.CumPassing))
	copy(values, c.CumPassing)
	return &Curve{Sizes: sizes, CumPassing: values, Unit: target}, nil
}
