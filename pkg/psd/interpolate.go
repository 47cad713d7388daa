package psd

// Percentile returns the size at which the cumulative-passing curve crosses
// p percent, by linear interpolation between the two bracketing samples.
// Values of p below the first or above the last sample clamp to the first or
// last size; this extrapolation is deliberate, not an error. Returns ok=false
// for curves with fewer than 2 points.
func (c *Curve) Percentile(p float64) (float64, bool) {
	if c.Len() < 2 {
		return 0, false
	}

	if p <= c.CumPassing[0] {
		return c.Sizes[0], true
	}
	last := c.Len() - 1
	if p >= c.CumPassing[last] {
		return c.Sizes[last], true
	}

	// First bracketing pair wins, so flat segments resolve deterministically.
	for i := 0; i < last; i++ {
		lo, hi := c.CumPassing[i], c.CumPassing[i+1]
		if p < lo || p > hi {
			continue
		}
		if hi == lo {
			return c.Sizes[i], true
		}
		t := (p - lo) / (hi - lo)
		return c.Sizes[i] + t*(c.Sizes[i+1]-c.Sizes[i]), true
	}
	return c.Sizes[last], true
}

// ValueAt returns the interpolated cumulative-passing value at the given
// size, using the same bracketing linear interpolation as Percentile and
// clamping at the curve extremes. Returns ok=false for curves with fewer
// than 2 points.
func (c *Curve) ValueAt(size float64) (float64, bool) {
	if c.Len() < 2 {
		return 0, false
	}

	if size <= c.Sizes[0] {
		return c.CumPassing[0], true
	}
	last := c.Len() - 1
	if size >= c.Sizes[last] {
		return c.CumPassing[last], true
	}

	for i := 0; i < last; i++ {
		lo, hi := c.Sizes[i], c.Sizes[i+1]
		if size < lo || size > hi {
			continue
		}
		// Sizes are strictly increasing, so hi > lo here.
		t := (size - lo) / (hi - lo)
		return c.CumPassing[i] + t*(c.CumPassing[i+1]-c.CumPassing[i]), true
	}
	return c.CumPassing[last], true
}
