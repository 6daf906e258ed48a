package pseq

import (
	"unsafe"

	"github.com/arjunsahay/pseq/internal/rc"
)

// node is the payload wrapped by an rc.Cell: either a leaf holding up to
// LeafCap items directly, or a branch holding a cached weight (the size of
// its left subtree) and two children. Every branch has exactly two
// non-nil children; there is no nullable-child case to special-case.
type node[T any] struct {
	items []T // non-nil only on a leaf

	weight int // size(left); meaningful only on a branch
	height int // 1 for a leaf, 1+max(height) for a branch
	size   int // total item count under this node
	bytes  int // cached approximate byte footprint under this node

	left, right *rcNode[T] // nil on a leaf
}

// rcNode is a reference-counted handle on a node, the unit of structural
// sharing and the unit the ownership fast path asks Unique() of.
type rcNode[T any] = rc.Cell[*node[T]]

func newRCNode[T any](d rc.Discipline, n *node[T]) *rcNode[T] {
	return rc.New(d, n)
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil
}

func itemBytes[T any](v T) int {
	return int(unsafe.Sizeof(v))
}

// makeLeaf builds a leaf node from items, computing its cached aggregates.
// items is retained directly; callers must not mutate the passed slice
// afterwards (it becomes part of the immutable tree).
func makeLeaf[T any](items []T) *node[T] {
	bytes := 0
	for _, v := range items {
		bytes += itemBytes(v)
	}
	return &node[T]{
		items:  items,
		height: 1,
		size:   len(items),
		bytes:  bytes,
	}
}

// makeBranch builds a branch node over two already-wrapped children,
// computing its cached aggregates from the children's own cached values.
func makeBranch[T any](left, right *rcNode[T]) *node[T] {
	l, r := left.Get(), right.Get()
	h := l.height
	if r.height > h {
		h = r.height
	}
	return &node[T]{
		weight: l.size,
		height: h + 1,
		size:   l.size + r.size,
		bytes:  l.bytes + r.bytes,
		left:   left,
		right:  right,
	}
}

func wrapLeaf[T any](d rc.Discipline, items []T) *rcNode[T] {
	return newRCNode(d, makeLeaf(items))
}

func wrapBranch[T any](d rc.Discipline, left, right *rcNode[T]) *rcNode[T] {
	return newRCNode(d, makeBranch(left, right))
}

func sizeOf[T any](r *rcNode[T]) int {
	if r == nil {
		return 0
	}
	return r.Get().size
}

func heightOf[T any](r *rcNode[T]) int {
	if r == nil {
		return 0
	}
	return r.Get().height
}

func bytesOf[T any](r *rcNode[T]) int {
	if r == nil {
		return 0
	}
	return r.Get().bytes
}
