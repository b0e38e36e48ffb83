package quadtree

import "strconv"

// Position is a point in the plane.
type Position struct {
	X, Y float64
}

func (p Position) String() string {
	return "[" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + "]"
}

// Entry is a position stored in a Tree leaf node, along with its payload.
type Entry[T any] struct {
	Pos Position
	// Arbitrary data attached to this Position.
	Data T
}
