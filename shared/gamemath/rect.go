package gamemath

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Midpoint returns the point halfway between the centers of r and o.
func (r Rect) Midpoint(o Rect) (float64, float64) {
	return (r.CenterX() + o.CenterX()) / 2, (r.CenterY() + o.CenterY()) / 2
}

// Overlaps reports whether r and o intersect. Boxes that only share an edge
// do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Bottom() &&
		r.Bottom() > o.Y
}

// OverlapsX reports whether the horizontal extents of r and o intersect.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X
}
