package quadtree

import (
	"fmt"
	"math"
	"strconv"
)

// Quadrant indices into an interior node's children. Traversal walks them in
// this order.
const (
	topLeft = iota
	topRight
	bottomLeft
	bottomRight
	numQuadrants
)

// Rect is an axis-aligned rectangle. A well-formed Rect has Left < Right and
// Bottom < Top; use NewRect to get one that is checked.
type Rect struct {
	Left, Bottom, Right, Top float64
}

// NewRect returns the rectangle with the given bounds, or ErrInvalidRect if
// they are not finite or don't describe a rectangle with positive area.
func NewRect(left, bottom, right, top float64) (Rect, error) {
	r := Rect{Left: left, Bottom: bottom, Right: right, Top: top}
	if err := r.validate(); err != nil {
		return Rect{}, err
	}
	return r, nil
}

func (r Rect) validate() error {
	for _, v := range [...]float64{r.Left, r.Bottom, r.Right, r.Top} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidRect, r)
		}
	}
	if !(r.Left < r.Right) || !(r.Bottom < r.Top) {
		return fmt.Errorf("%w: %v", ErrInvalidRect, r)
	}
	return nil
}

// Overlaps reports whether the closed rectangles r and o share any area or
// boundary.
func (r Rect) Overlaps(o Rect) bool {
	if r.Bottom > o.Top || r.Top < o.Bottom {
		return false
	}
	if r.Right < o.Left || r.Left > o.Right {
		return false
	}
	return true
}

// OverlapsLoosened is Overlaps against o grown by margin on every side.
func (r Rect) OverlapsLoosened(o Rect, margin float64) bool {
	return r.Overlaps(o.Loosen(margin))
}

// Loosen returns r grown by margin on every side. A negative margin shrinks
// it; the result is not validated.
func (r Rect) Loosen(margin float64) Rect {
	return Rect{
		Left:   r.Left - margin,
		Bottom: r.Bottom - margin,
		Right:  r.Right + margin,
		Top:    r.Top + margin,
	}
}

// ContainsPoint reports whether p lies in r, boundary included.
func (r Rect) ContainsPoint(p Position) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Bottom && p.Y <= r.Top
}

// Contains reports whether o is a subset of r.
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left && o.Right <= r.Right &&
		o.Bottom >= r.Bottom && o.Top <= r.Top
}

// Center returns the midpoint of r on both axes.
func (r Rect) Center() Position {
	return Position{X: (r.Left + r.Right) / 2, Y: (r.Bottom + r.Top) / 2}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Top - r.Bottom }

func (r Rect) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return "[" + f(r.Left) + "," + f(r.Bottom) + "," + f(r.Right) + "," + f(r.Top) + "]"
}

// split divides r at its center into quadrants, indexed by the quadrant
// constants. ok is false when a midpoint doesn't fall strictly inside r,
// which happens once the bounds are adjacent floats.
func (r Rect) split() (mid Position, quads [numQuadrants]Rect, ok bool) {
	mid = r.Center()
	if !(r.Left < mid.X && mid.X < r.Right) || !(r.Bottom < mid.Y && mid.Y < r.Top) {
		return mid, quads, false
	}
	quads[topLeft] = Rect{r.Left, mid.Y, mid.X, r.Top}
	quads[topRight] = Rect{mid.X, mid.Y, r.Right, r.Top}
	quads[bottomLeft] = Rect{r.Left, r.Bottom, mid.X, mid.Y}
	quads[bottomRight] = Rect{mid.X, r.Bottom, r.Right, mid.Y}
	return mid, quads, true
}

// quadrantOf routes p against the split point mid. Coordinates equal to a
// midpoint go to the right or top side.
func quadrantOf(mid, p Position) int {
	left := p.X < mid.X
	bottom := p.Y < mid.Y
	switch {
	case bottom && left:
		return bottomLeft
	case bottom:
		return bottomRight
	case left:
		return topLeft
	default:
		return topRight
	}
}
