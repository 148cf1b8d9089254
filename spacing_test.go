package stipple

import (
	"math"
	"testing"
)

func TestSolveStep(t *testing.T) {
	p := Params{DotSize: 10, DotSpacing: 10, FlexPercent: 25}
	f := func(length, wantStep float64, wantOK bool) {
		t.Helper()
		step, ok := SolveStep(length, p)
		if step != wantStep || ok != wantOK {
			t.Errorf("SolveStep(%v) = %v, %v, want %v, %v", length, step, ok, wantStep, wantOK)
		}
	}
	f(100, 20, true) // five whole steps, no correction
	f(110, 22, true) // stretched by 2 to fit five steps
	f(105, 21, true)
	f(118, 20, false) // the needed stretch exceeds a quarter of the gap
	f(96, 20, false)
}

func TestSolveStepZeroSpacing(t *testing.T) {
	p := Params{DotSize: 10, DotSpacing: 0, FlexPercent: 25}

	// Whole steps fit: a zero correction is accepted without dividing
	// by the zero gap.
	if step, ok := SolveStep(100, p); step != 10 || !ok {
		t.Errorf("SolveStep(100) = %v, %v, want 10, true", step, ok)
	}
	// Any nonzero correction is infinite relative to a zero gap.
	if step, ok := SolveStep(105, p); step != 10 || ok {
		t.Errorf("SolveStep(105) = %v, %v, want 10, false", step, ok)
	}
}

func TestSolveStepShortRun(t *testing.T) {
	// A run shorter than one step divides its correction by the count
	// clamped to 1.
	p := Params{DotSize: 10, DotSpacing: 10, FlexPercent: 25}
	if step, ok := SolveStep(5, p); step != 20 || ok {
		t.Errorf("SolveStep(5) = %v, %v, want 20, false", step, ok)
	}

	flexed := p
	flexed.FlexPercent = 60
	if step, ok := SolveStep(5, flexed); step != 25 || !ok {
		t.Errorf("SolveStep(5) = %v, %v, want 25, true", step, ok)
	}
}

func TestSolveStepFitsWholeSteps(t *testing.T) {
	// Whenever the solver accepts a correction, a whole number of steps
	// fits the run.
	p := Params{DotSize: 10, DotSpacing: 10, FlexPercent: 25}
	for length := 30.0; length <= 300; length += 7 {
		step, ok := SolveStep(length, p)
		if !ok || step == p.DotSize+p.DotSpacing {
			continue
		}
		n := length / step
		if math.Abs(n-math.Round(n)) > 1e-6 {
			t.Errorf("length %v: %v steps of %v misses a whole count by %v",
				length, n, step, n-math.Round(n))
		}
	}
}
