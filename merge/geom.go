package merge

// Point is a position in host (screen) coordinates
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle, X/Y is the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// RectAround builds a square-ish rect of size w x h centred on c
func RectAround(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the centre point of r
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
