package stipple

import "errors"

// ErrPointNotOnPath reports that a point could not be located anywhere
// on a path, which happens when the path has no segments to search.
var ErrPointNotOnPath = errors.New("stipple: point not on path")
