package pseq

import "github.com/arjunsahay/pseq/internal/rc"

// concatNodes concatenates two non-nil subtrees into one, without any
// rebalancing (the caller decides whether a rebalance pass is warranted).
// left and right are folded into the result as-is: a caller that is handing
// in a cell still reachable from somewhere else (another Sequence's tree, or
// a subtree it intends to keep using) must call Share() on it first, the
// same way every other node constructor here expects of its callers.
func concatNodes[T any](d rc.Discipline, left, right *rcNode[T]) *rcNode[T] {
	if isEmptyLeaf(left) {
		return right
	}
	if isEmptyLeaf(right) {
		return left
	}
	return wrapBranch(d, left, right)
}

// splitAt returns the two subtrees obtained by cutting r at index i
// (0 <= i <= size(r)): items [0,i) and [i,size(r)).
func splitAt[T any](d rc.Discipline, r *rcNode[T], i int) (*rcNode[T], *rcNode[T]) {
	n := r.Get()
	if n.isLeaf() {
		left := wrapLeaf(d, append([]T(nil), n.items[:i]...))
		right := wrapLeaf(d, append([]T(nil), n.items[i:]...))
		return left, right
	}
	if i <= n.weight {
		ll, lr := splitAt(d, n.left, i)
		return ll, concatNodes(d, lr, n.right.Share())
	}
	rl, rr := splitAt(d, n.right, i-n.weight)
	return concatNodes(d, n.left.Share(), rl), rr
}
