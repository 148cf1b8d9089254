package stipple

// FilterOverlaps drops centers that crowd a center already kept,
// returning survivors with forced centers first. The forced centers are
// kept unconditionally, in generation order; the unforced ones follow,
// each kept only if it lies at least dotSize away from every center
// kept before it.
func FilterOverlaps(centers []Center, dotSize float64) []Center {
	ordered := make([]Center, 0, len(centers))
	for _, c := range centers {
		if c.Forced {
			ordered = append(ordered, c)
		}
	}
	for _, c := range centers {
		if !c.Forced {
			ordered = append(ordered, c)
		}
	}

	kept := make([]Center, 0, len(ordered))
	for _, c := range ordered {
		if !c.Forced {
			clear := true
			for _, k := range kept {
				if c.Pos.Distance(k.Pos) < dotSize {
					clear = false
					break
				}
			}
			if !clear {
				continue
			}
		}
		kept = append(kept, c)
	}
	return kept
}
