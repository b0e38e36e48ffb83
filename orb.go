package quadtree

import "github.com/paulmach/orb"

// PositionFromOrb converts an orb point, X first.
func PositionFromOrb(p orb.Point) Position {
	return Position{X: p.X(), Y: p.Y()}
}

// Orb returns p as an orb point.
func (p Position) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// RectFromBound converts an orb bound. A bound collapsed to a line or point
// is rejected with ErrInvalidRect, since a tree needs an area to subdivide.
func RectFromBound(b orb.Bound) (Rect, error) {
	return NewRect(b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y())
}

// Bound returns r as an orb bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.Left, r.Bottom},
		Max: orb.Point{r.Right, r.Top},
	}
}
