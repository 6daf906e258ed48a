// Package bulk builds and flattens leaf/branch trees in bulk, without
// knowing the concrete node type a caller uses. It is parameterized by
// small constructor and accessor closures so that it can sit outside the
// package that owns the actual (unexported) node types and still build
// trees of them, the way a generic bottom-up leaf-packing routine would
// need to regardless of what language it's written in.
package bulk

// Build packs items into leaves of at most leafCap items each, then joins
// the leaves bottom-up, pairing neighbors level by level, into a single
// balanced tree. makeLeaf wraps a contiguous run of items; makeBranch joins
// two already-built subtrees. O(n).
func Build[T any, N any](items []T, leafCap int, makeLeaf func([]T) N, makeBranch func(N, N) N) N {
	var level []N
	if len(items) == 0 {
		level = []N{makeLeaf(nil)}
	} else {
		for i := 0; i < len(items); i += leafCap {
			end := i + leafCap
			if end > len(items) {
				end = len(items)
			}
			level = append(level, makeLeaf(items[i:end]))
		}
	}
	for len(level) > 1 {
		next := make([]N, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, makeBranch(level[i], level[i+1]))
			} else {
				next = append(next, level[i])
			}
		}
		level = next
	}
	return level[0]
}

// Flatten appends, left to right, every leaf's items reachable from root
// onto dst and returns the result. asLeaf reports whether a node n is a
// leaf (returning the dereferenced payload to pass to items/children);
// items returns a leaf payload's items; children returns a branch payload's
// two subtrees.
func Flatten[T any, N any, R any](root R, dst []T, asLeaf func(R) (N, bool), items func(N) []T, children func(N) (R, R)) []T {
	n, isLeaf := asLeaf(root)
	if isLeaf {
		return append(dst, items(n)...)
	}
	left, right := children(n)
	dst = Flatten(left, dst, asLeaf, items, children)
	dst = Flatten(right, dst, asLeaf, items, children)
	return dst
}
