package pseq

import "github.com/arjunsahay/pseq/internal/rc"

// get returns the item at index i within the subtree rooted at r, which
// must satisfy 0 <= i < size(r).
func get[T any](r *rcNode[T], i int) T {
	n := r.Get()
	if n.isLeaf() {
		return n.items[i]
	}
	if i < n.weight {
		return get(n.left, i)
	}
	return get(n.right, i-n.weight)
}

// setAt returns a new subtree equal to r except that index i holds v.
func setAt[T any](d rc.Discipline, r *rcNode[T], i int, v T) *rcNode[T] {
	n := r.Get()
	if n.isLeaf() {
		items := make([]T, len(n.items))
		copy(items, n.items)
		items[i] = v
		return wrapLeaf(d, items)
	}
	if i < n.weight {
		return wrapBranch(d, setAt(d, n.left, i, v), n.right.Share())
	}
	return wrapBranch(d, n.left.Share(), setAt(d, n.right, i-n.weight, v))
}

// insertAt returns a new subtree equal to r with v inserted before index i,
// 0 <= i <= size(r). leafCap bounds leaf growth; an overflowing leaf splits
// into a two-child branch.
func insertAt[T any](d rc.Discipline, r *rcNode[T], i int, v T, leafCap int) *rcNode[T] {
	n := r.Get()
	if n.isLeaf() {
		items := make([]T, 0, len(n.items)+1)
		items = append(items, n.items[:i]...)
		items = append(items, v)
		items = append(items, n.items[i:]...)
		if len(items) <= leafCap {
			return wrapLeaf(d, items)
		}
		mid := len(items) / 2
		left := wrapLeaf(d, append([]T(nil), items[:mid]...))
		right := wrapLeaf(d, append([]T(nil), items[mid:]...))
		return wrapBranch(d, left, right)
	}
	if i < n.weight {
		return wrapBranch(d, insertAt(d, n.left, i, v, leafCap), n.right.Share())
	}
	return wrapBranch(d, n.left.Share(), insertAt(d, n.right, i-n.weight, v, leafCap))
}

// deleteAt returns a new subtree equal to r with the item at index i
// removed, 0 <= i < size(r). A leaf that becomes empty is collapsed away by
// the caller at the branch above it.
func deleteAt[T any](d rc.Discipline, r *rcNode[T], i int) *rcNode[T] {
	n := r.Get()
	if n.isLeaf() {
		items := make([]T, 0, len(n.items)-1)
		items = append(items, n.items[:i]...)
		items = append(items, n.items[i+1:]...)
		return wrapLeaf(d, items)
	}
	if i < n.weight {
		newLeft := deleteAt(d, n.left, i)
		if isEmptyLeaf(newLeft) {
			return n.right.Share()
		}
		return wrapBranch(d, newLeft, n.right.Share())
	}
	newRight := deleteAt(d, n.right, i-n.weight)
	if isEmptyLeaf(newRight) {
		return n.left.Share()
	}
	return wrapBranch(d, n.left.Share(), newRight)
}

func isEmptyLeaf[T any](r *rcNode[T]) bool {
	n := r.Get()
	return n.isLeaf() && len(n.items) == 0
}
