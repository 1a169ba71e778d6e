package entity

// Rect is an axis-aligned box in screen pixels, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Bottom is the y coordinate of the lower edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}
