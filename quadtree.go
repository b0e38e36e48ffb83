// Package quadtree implements a point quadtree: a spatial index over a fixed
// rectangle that stores one payload per position and subdivides a region into
// four quadrants the first time a second position lands in it.
//
// Queries are driven by Visit, which walks the tree depth-first and lets a
// caller-supplied function prune whole subtrees whose area can't matter.
//
// A Tree is not safe for concurrent use; wrap it in a SyncTree for that.
package quadtree

import (
	"fmt"

	"github.com/cznic/mathutil"
)

type nodeState uint8

const (
	empty nodeState = iota
	leaf
	interior
)

// node is a rectangle in the tree along with at most one stored entry, or
// the four children covering its quadrants.
type node[T any] struct {
	// The bounding box for this node. It should always be true that
	// area contains entry.Pos, and that it is the union of the children's
	// areas once the node is interior.
	area  Rect
	state nodeState
	// Only meaningful while state == leaf.
	entry Entry[T]
	// Split point and children, set once on promotion to interior.
	mid      Position
	children *[numQuadrants]node[T]
	// keep track of point counts under each node.
	count int
}

// Options configures a Tree.
type Options struct {
	// MaxDepth bounds how deep leaf promotion may subdivide, counting the
	// root as depth 0. Zero means no limit other than what float64 midpoints
	// can still separate.
	MaxDepth int
}

// DefaultOptions returns the default Tree options.
func DefaultOptions() Options {
	return Options{MaxDepth: 0}
}

// Tree is a point quadtree holding payloads of type T.
type Tree[T any] struct {
	root     node[T]
	maxDepth int
}

// New creates an empty tree covering area, using DefaultOptions.
//
// Returns ErrInvalidRect if area is not a finite rectangle with positive
// width and height.
func New[T any](area Rect) (*Tree[T], error) {
	return NewWithOptions[T](area, DefaultOptions())
}

// NewWithOptions creates an empty tree covering area.
func NewWithOptions[T any](area Rect, opts Options) (*Tree[T], error) {
	if err := area.validate(); err != nil {
		return nil, err
	}
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: MaxDepth %d is negative", ErrInvalidOptions, opts.MaxDepth)
	}
	maxDepth := opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = mathutil.MaxInt
	}
	return &Tree[T]{
		root:     node[T]{area: area},
		maxDepth: maxDepth,
	}, nil
}

// Area returns the bounding rectangle fixed at construction.
func (t *Tree[T]) Area() Rect {
	return t.root.area
}

// Len returns the number of stored positions.
func (t *Tree[T]) Len() int {
	return t.root.count
}

// Depth returns the depth of the deepest occupied node; 0 for a tree with
// at most one position.
func (t *Tree[T]) Depth() int {
	return t.root.depth()
}

// Contains checks if pos is within the bounds of the tree.
func (t *Tree[T]) Contains(pos Position) bool {
	return t.root.area.ContainsPoint(pos)
}

// Add stores data at pos. Returns ErrOutOfBounds if pos is outside Area,
// ErrDuplicatePosition if pos is already stored, and ErrUnseparable if
// storing pos would need subdividing past MaxDepth or past float64
// resolution. The tree is left untouched on error.
func (t *Tree[T]) Add(pos Position, data T) error {
	if !t.root.area.ContainsPoint(pos) {
		return fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, pos, t.root.area)
	}
	if err := t.checkPlacement(pos); err != nil {
		return err
	}
	t.root.add(pos, data)
	return nil
}

// MustAdd is like Add but panics on error.
func (t *Tree[T]) MustAdd(pos Position, data T) {
	if err := t.Add(pos, data); err != nil {
		panic("quadtree: " + err.Error())
	}
}

// checkPlacement finds the node that will receive pos and, if it is already
// a leaf, makes sure promoting it can separate the two positions.
func (t *Tree[T]) checkPlacement(pos Position) error {
	n, depth := &t.root, 0
	for n.state == interior {
		n = &n.children[quadrantOf(n.mid, pos)]
		depth++
	}
	if n.state != leaf {
		return nil
	}
	if n.entry.Pos == pos {
		return fmt.Errorf("%w: %v", ErrDuplicatePosition, pos)
	}
	if !separable(n.area, n.entry.Pos, pos, depth, t.maxDepth) {
		return fmt.Errorf("%w: %v and %v at depth %d", ErrUnseparable, n.entry.Pos, pos, depth)
	}
	return nil
}

// separable reports whether repeatedly splitting area, starting at depth,
// routes a and b to different quadrants before exceeding maxDepth.
func separable(area Rect, a, b Position, depth, maxDepth int) bool {
	for ; depth < maxDepth; depth++ {
		mid, quads, ok := area.split()
		if !ok {
			return false
		}
		qa, qb := quadrantOf(mid, a), quadrantOf(mid, b)
		if qa != qb {
			return true
		}
		area = quads[qa]
	}
	return false
}

func (n *node[T]) add(pos Position, data T) {
	if !n.area.ContainsPoint(pos) {
		panic("quadtree: adding " + pos.String() + " to subtree " + n.area.String())
	}
	if n.state == leaf {
		n.subdivide()
	}
	switch n.state {
	case empty:
		// simplest case, add to current node
		n.entry = Entry[T]{Pos: pos, Data: data}
		n.state = leaf
	case interior:
		n.children[quadrantOf(n.mid, pos)].add(pos, data)
	}
	n.count++
}

// subdivide promotes a leaf to interior: create children with the quadrant
// bounds, then push the current entry down into the one that contains it.
func (n *node[T]) subdivide() {
	mid, quads, ok := n.area.split()
	if !ok {
		panic("quadtree: can't subdivide " + n.area.String())
	}
	children := new([numQuadrants]node[T])
	for i := range children {
		children[i].area = quads[i]
	}
	cur := n.entry
	n.entry = Entry[T]{}
	n.mid = mid
	n.children = children
	n.state = interior
	n.children[quadrantOf(mid, cur.Pos)].add(cur.Pos, cur.Data)
}

func (n *node[T]) depth() int {
	if n.state != interior {
		return 0
	}
	d := 0
	for i := range n.children {
		if n.children[i].state != empty {
			d = mathutil.Max(d, n.children[i].depth()+1)
		}
	}
	return d
}
