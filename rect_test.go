package stipple

import "testing"

func TestRectUnion(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 0), Pt(0, 20))
	diff(t, Rect{0, 0, 10, 20}, r)
	diff(t, Rect{0, 0, 15, 20}, r.Union(Rect{12, 5, 15, 10}))
	diff(t, Rect{-3, 0, 10, 21}, r.UnionPoint(Pt(-3, 21)))
}

func TestRectOverlaps(t *testing.T) {
	f := func(r, o Rect, want bool) {
		t.Helper()
		if got := r.Overlaps(o); got != want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", r, o, got, want)
		}
		if got := o.Overlaps(r); got != want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", o, r, got, want)
		}
	}
	f(Rect{0, 0, 10, 10}, Rect{5, 5, 15, 15}, true)
	f(Rect{0, 0, 10, 10}, Rect{11, 0, 20, 10}, false)
	f(Rect{0, 0, 10, 10}, Rect{0, 11, 10, 20}, false)
	// Touching edges count as overlap.
	f(Rect{0, 0, 10, 10}, Rect{10, 0, 20, 10}, true)
	f(Rect{0, 0, 10, 10}, Rect{3, 3, 6, 6}, true)
}

func TestRectInflate(t *testing.T) {
	diff(t, Rect{-5, -2, 15, 12}, Rect{0, 0, 10, 10}.Inflate(5, 2))
}
