package pseq

import "fmt"

// String returns a short, bounded-length summary of s (its length and a
// summary of the root node: a leaf's item count, or a branch's weight and
// height), not a full materialization.
func (s Sequence[T]) String() string {
	return fmt.Sprintf("<Sequence len=%d %s>", s.n, nodeSummary(s.root))
}

func nodeSummary[T any](r *rcNode[T]) string {
	n := r.Get()
	if n.isLeaf() {
		return fmt.Sprintf("<leaf %d>", len(n.items))
	}
	return fmt.Sprintf("<branch %d|%d|>", n.weight, n.height)
}

// GoString returns a recursive, shape-only dump of s's tree (every branch's
// weight/height, every leaf's item count), for use with the %#v verb. Like
// String, it never materializes item values; unlike String, it walks the
// whole tree rather than summarizing just the root.
func (s Sequence[T]) GoString() string {
	return fmt.Sprintf("Sequence[len=%d]%s", s.n, nodeGoString(s.root))
}

func nodeGoString[T any](r *rcNode[T]) string {
	n := r.Get()
	if n.isLeaf() {
		return fmt.Sprintf("(leaf %d)", len(n.items))
	}
	return fmt.Sprintf("(branch %d|%d %s %s)", n.weight, n.height, nodeGoString(n.left), nodeGoString(n.right))
}
