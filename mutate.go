package pseq

import "github.com/arjunsahay/pseq/internal/rc"

// setAtMut behaves like setAt, but mutates r's payload in place wherever
// the cell on the path is uniquely owned, instead of cloning it. As soon as
// a shared cell is reached, it falls back to the pure (cloning) path for
// the remainder of the descent, since a clone there is unavoidable: the
// node below it must change, and the shared cell above it cannot be edited
// without affecting other owners.
func setAtMut[T any](d rc.Discipline, r *rcNode[T], i int, v T) *rcNode[T] {
	if !r.Unique() {
		return setAt(d, r, i, v)
	}
	n := r.Get()
	if n.isLeaf() {
		n.items[i] = v
		return r
	}
	if i < n.weight {
		n.left = setAtMut(d, n.left, i, v)
	} else {
		n.right = setAtMut(d, n.right, i-n.weight, v)
	}
	return r
}

// insertAtMut behaves like insertAt, mutating uniquely-owned cells along
// the path in place. A leaf that would overflow its cap still splits into a
// fresh two-child branch (a structural change, not an in-place edit), even
// when unique.
func insertAtMut[T any](d rc.Discipline, r *rcNode[T], i int, v T, leafCap int) *rcNode[T] {
	if !r.Unique() {
		return insertAt(d, r, i, v, leafCap)
	}
	n := r.Get()
	if n.isLeaf() {
		if len(n.items) < leafCap {
			n.items = append(n.items, v)
			copy(n.items[i+1:], n.items[i:len(n.items)-1])
			n.items[i] = v
			n.size = len(n.items)
			n.bytes += itemBytes(v)
			return r
		}
		return insertAt(d, r, i, v, leafCap)
	}
	if i < n.weight {
		n.left = insertAtMut(d, n.left, i, v, leafCap)
		n.weight = sizeOf(n.left)
	} else {
		n.right = insertAtMut(d, n.right, i-n.weight, v, leafCap)
	}
	n.size = sizeOf(n.left) + sizeOf(n.right)
	n.bytes = bytesOf(n.left) + bytesOf(n.right)
	h := heightOf(n.left)
	if rh := heightOf(n.right); rh > h {
		h = rh
	}
	n.height = h + 1
	return r
}

// deleteAtMut behaves like deleteAt, mutating uniquely-owned cells along
// the path in place. A child collapse (an empty leaf absorbed by its
// sibling) is always a structural change, even when unique.
func deleteAtMut[T any](d rc.Discipline, r *rcNode[T], i int) *rcNode[T] {
	if !r.Unique() {
		return deleteAt(d, r, i)
	}
	n := r.Get()
	if n.isLeaf() {
		n.items = append(n.items[:i], n.items[i+1:]...)
		n.size = len(n.items)
		n.bytes = 0
		for _, v := range n.items {
			n.bytes += itemBytes(v)
		}
		return r
	}
	if i < n.weight {
		newLeft := deleteAtMut(d, n.left, i)
		if isEmptyLeaf(newLeft) {
			return n.right
		}
		n.left = newLeft
		n.weight = sizeOf(n.left)
	} else {
		newRight := deleteAtMut(d, n.right, i-n.weight)
		if isEmptyLeaf(newRight) {
			return n.left
		}
		n.right = newRight
	}
	n.size = sizeOf(n.left) + sizeOf(n.right)
	n.bytes = bytesOf(n.left) + bytesOf(n.right)
	h := heightOf(n.left)
	if rh := heightOf(n.right); rh > h {
		h = rh
	}
	n.height = h + 1
	return r
}

// SetMut behaves like Set but edits s's tree in place along any uniquely
// owned path prefix, instead of cloning it. s itself is left pointing at
// the (possibly now stale) old root; callers that want the updated
// sequence must use the returned value, exactly as with Set.
func SetMut[T any](s Sequence[T], i int, v T) (Sequence[T], error) {
	if i < 0 || i >= s.n {
		return Sequence[T]{}, outOfBounds(i, s.n)
	}
	trace().Debugf("pseq: SetMut at %d, root unique=%v", i, s.root.Unique())
	root := setAtMut(s.cfg.discipline(), s.root, i, v)
	return s.withRoot(root, s.n), nil
}

// InsertMut behaves like Insert but edits s's tree in place where unique.
func InsertMut[T any](s Sequence[T], i int, v T) (Sequence[T], error) {
	if i < 0 || i > s.n {
		return Sequence[T]{}, outOfBounds(i, s.n)
	}
	trace().Debugf("pseq: InsertMut at %d, root unique=%v", i, s.root.Unique())
	root := insertAtMut(s.cfg.discipline(), s.root, i, v, s.cfg.LeafCap)
	return s.withRoot(root, s.n+1), nil
}

// DeleteMut behaves like Delete but edits s's tree in place where unique.
func DeleteMut[T any](s Sequence[T], i int) (Sequence[T], error) {
	if i < 0 || i >= s.n {
		return Sequence[T]{}, outOfBounds(i, s.n)
	}
	trace().Debugf("pseq: DeleteMut at %d, root unique=%v", i, s.root.Unique())
	root := deleteAtMut(s.cfg.discipline(), s.root, i)
	return s.withRoot(root, s.n-1), nil
}

// PopMut behaves like Pop but edits s's tree in place where unique.
func PopMut[T any](s Sequence[T]) (Sequence[T], T, error) {
	var zero T
	if s.n == 0 {
		return Sequence[T]{}, zero, outOfBounds(0, 0)
	}
	v, err := Get(s, s.n-1)
	assert(err == nil, "PopMut: Get at Len(s)-1 cannot fail on a non-empty sequence")
	s2, err := DeleteMut(s, s.n-1)
	assert(err == nil, "PopMut: DeleteMut at Len(s)-1 cannot fail on a non-empty sequence")
	return s2, v, nil
}
