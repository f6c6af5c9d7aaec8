package recipe

// segment is a straight line from (x0, y0) to (x1, y1).
type segment struct {
	x0, x1 float64
	y0, y1 float64
}

// at evaluates the line at x. The weighted form returns y0 and y1 exactly
// at the endpoints. The caller guarantees x0 != x1.
func (s segment) at(x float64) float64 {
	f := (x - s.x0) / (s.x1 - s.x0)
	return s.y0*(1-f) + s.y1*f
}

// windowMean averages the line's value at x with its value at x1. It is
// the mean over the window [x, x1] of a quantity that changes linearly.
func (s segment) windowMean(x float64) float64 {
	return (s.at(x) + s.y1) / 2
}
