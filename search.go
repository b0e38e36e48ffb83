package quadtree

// VisitFunc is called by Visit for every non-empty node. For a leaf, e points
// at the stored entry and the return value is ignored. For an interior node e
// is nil and returning false skips the node's whole subtree.
//
// e is only valid for the duration of the call.
type VisitFunc[T any] func(area Rect, e *Entry[T]) bool

// Visit walks the tree depth-first, children in top-left, top-right,
// bottom-left, bottom-right order, calling f as described by VisitFunc.
// Empty nodes are skipped silently.
func (t *Tree[T]) Visit(f VisitFunc[T]) {
	t.root.visit(f)
}

func (n *node[T]) visit(f VisitFunc[T]) {
	switch n.state {
	case leaf:
		f(n.area, &n.entry)
	case interior:
		if !f(n.area, nil) {
			return
		}
		for i := range n.children {
			n.children[i].visit(f)
		}
	}
}

// Search finds all entries falling within q. This is an inclusive search, so
// positions on the boundary of q match.
func (t *Tree[T]) Search(q Rect) []Entry[T] {
	var entries []Entry[T]
	t.Visit(func(area Rect, e *Entry[T]) bool {
		if e == nil {
			return area.Overlaps(q)
		}
		if q.ContainsPoint(e.Pos) {
			entries = append(entries, *e)
		}
		return true
	})
	return entries
}

// SearchNear is Search against q grown by margin on every side, for
// near-miss queries.
func (t *Tree[T]) SearchNear(q Rect, margin float64) []Entry[T] {
	loose := q.Loosen(margin)
	var entries []Entry[T]
	t.Visit(func(area Rect, e *Entry[T]) bool {
		if e == nil {
			return area.OverlapsLoosened(q, margin)
		}
		if loose.ContainsPoint(e.Pos) {
			entries = append(entries, *e)
		}
		return true
	})
	return entries
}

// Each runs f on every stored entry in Visit order until f returns false.
func (t *Tree[T]) Each(f func(e *Entry[T]) bool) {
	t.root.each(f)
}

func (n *node[T]) each(f func(e *Entry[T]) bool) bool {
	switch n.state {
	case leaf:
		return f(&n.entry)
	case interior:
		for i := range n.children {
			if !n.children[i].each(f) {
				return false
			}
		}
	}
	return true
}
