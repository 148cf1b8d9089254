package stipple

import "math"

// SolveStep computes the center-to-center step for laying dots along a
// run of the given arc length. The preferred step is DotSize plus
// DotSpacing; the solver shrinks or stretches it so that a whole number
// of steps fits the run, as long as the correction stays within
// FlexPercent of DotSpacing.
//
// ok reports whether the returned step fits the run evenly. When the
// required correction exceeds the flex allowance, SolveStep returns the
// unadjusted preferred step and ok is false.
func SolveStep(length float64, p Params) (step float64, ok bool) {
	preferred := p.DotSize + p.DotSpacing
	dotCount := length / preferred
	// residue is the distance left over after the last whole step,
	// negated: how much too long the run is for Trunc(dotCount) steps.
	residue := (math.Trunc(dotCount) - dotCount) * preferred
	adjustment := residue / math.Trunc(math.Max(dotCount, 1))
	if adjustment == 0 {
		return preferred, true
	}
	if math.Abs(adjustment/p.DotSpacing) <= p.FlexPercent/100 {
		return preferred - adjustment, true
	}
	return preferred, false
}
