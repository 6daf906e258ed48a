package pseq

import "github.com/arjunsahay/pseq/internal/rc"

// isUnbalanced reports whether a branch's two children differ enough in
// size to warrant a rebuild, following spec.md's K/C threshold:
// unbalanced when max(sL,sR) > K*min(sL,sR)+C.
func isUnbalanced[T any](left, right *rcNode[T], k, c int) bool {
	sl, sr := sizeOf(left), sizeOf(right)
	lo, hi := sl, sr
	if lo > hi {
		lo, hi = hi, lo
	}
	return hi > k*lo+c
}

// flattenLeaves appends, left to right, every leaf reachable from r onto
// dst and returns the result.
func flattenLeaves[T any](r *rcNode[T], dst []*rcNode[T]) []*rcNode[T] {
	n := r.Get()
	if n.isLeaf() {
		return append(dst, r)
	}
	dst = flattenLeaves(n.left, dst)
	dst = flattenLeaves(n.right, dst)
	return dst
}

// rebuildBalanced rebuilds a weight-balanced tree bottom-up from an ordered
// slice of leaves, pairing neighbors level by level. O(n) in the number of
// leaves. leaves are cells flattened out of some existing tree that may
// still be reachable from elsewhere (e.g. Rebalance's caller keeps using
// its original Sequence), so each is Shared exactly once up front: every
// leaf ends up a child of exactly one new branch (or becomes the lone
// result), however many pass-through levels it rides through unpaired.
func rebuildBalanced[T any](d rc.Discipline, leaves []*rcNode[T]) *rcNode[T] {
	level := make([]*rcNode[T], len(leaves))
	for i, leaf := range leaves {
		level[i] = leaf.Share()
	}
	for len(level) > 1 {
		next := make([]*rcNode[T], 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, wrapBranch(d, level[i], level[i+1]))
			} else {
				next = append(next, level[i])
			}
		}
		level = next
	}
	if len(level) == 0 {
		return wrapLeaf[T](d, nil)
	}
	return level[0]
}

// rebalance rebuilds r from scratch into a balanced tree. Used both by the
// explicit Rebalance operation and, when AutoRebalance is set, by the root
// check run after every mutation.
func rebalance[T any](d rc.Discipline, r *rcNode[T]) *rcNode[T] {
	leaves := flattenLeaves(r, nil)
	return rebuildBalanced(d, leaves)
}

// maybeRebalanceRoot runs the root-only auto-rebalance check: if the root is
// a branch whose children are unbalanced per cfg's K/C threshold, the whole
// tree is rebuilt; otherwise r is returned unchanged.
func maybeRebalanceRoot[T any](d rc.Discipline, r *rcNode[T], cfg Config) *rcNode[T] {
	n := r.Get()
	if n.isLeaf() {
		return r
	}
	if !isUnbalanced(n.left, n.right, cfg.K, cfg.LeafCap) {
		return r
	}
	trace().Debugf("pseq: root unbalanced (sizes %d/%d), rebuilding", sizeOf(n.left), sizeOf(n.right))
	return rebalance(d, r)
}
