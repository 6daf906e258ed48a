package pseq

// NodeInfo describes one node of a Sequence's tree for diagnostic walkers
// such as pseq/dotty. It is a snapshot, not a live view: mutating s after
// taking a NodeInfo has no effect on values already reported.
type NodeInfo[T any] struct {
	IsLeaf bool
	Weight int // size(left), meaningful only when !IsLeaf
	Height int
	Size   int
	Items  []T // non-nil only when IsLeaf
}

// Walk calls visit once for every node in s's tree, pre-order (a branch
// before its children), passing a stable, small integer id for the node and
// for each of its two children (0 meaning "no such child", i.e. this node
// is a leaf). It is meant for debugging/visualization tooling, not
// production call paths.
func Walk[T any](s Sequence[T], visit func(id int, info NodeInfo[T], leftID, rightID int)) {
	ids := map[*rcNode[T]]int{}
	next := 1
	idOf := func(r *rcNode[T]) int {
		if r == nil {
			return 0
		}
		if id, ok := ids[r]; ok {
			return id
		}
		id := next
		next++
		ids[r] = id
		return id
	}
	var walk func(r *rcNode[T])
	walk = func(r *rcNode[T]) {
		id := idOf(r)
		n := r.Get()
		if n.isLeaf() {
			visit(id, NodeInfo[T]{IsLeaf: true, Height: n.height, Size: n.size, Items: append([]T(nil), n.items...)}, 0, 0)
			return
		}
		leftID, rightID := idOf(n.left), idOf(n.right)
		visit(id, NodeInfo[T]{IsLeaf: false, Weight: n.weight, Height: n.height, Size: n.size}, leftID, rightID)
		walk(n.left)
		walk(n.right)
	}
	walk(s.root)
}
