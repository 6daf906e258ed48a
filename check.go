package pseq

import "fmt"

// Check validates every structural invariant of s's tree: each branch's
// weight equals the size of its left subtree, no branch has a nil child, no
// leaf exceeds Config.LeafCap, and the cached size/height/bytes aggregates
// match what a fresh recomputation would produce. It is meant for tests and
// fuzzing, not production call paths.
func Check[T any](s Sequence[T]) error {
	size, err := checkNode(s.root, s.cfg.LeafCap)
	if err != nil {
		return err
	}
	if size != s.n {
		return fmt.Errorf("pseq: Sequence.n=%d but tree size=%d", s.n, size)
	}
	return nil
}

func checkNode[T any](r *rcNode[T], leafCap int) (int, error) {
	n := r.Get()
	if n.isLeaf() {
		if len(n.items) > leafCap {
			return 0, fmt.Errorf("pseq: leaf holds %d items, cap is %d", len(n.items), leafCap)
		}
		if n.size != len(n.items) {
			return 0, fmt.Errorf("pseq: leaf cached size %d != actual %d", n.size, len(n.items))
		}
		if n.height != 1 {
			return 0, fmt.Errorf("pseq: leaf cached height %d != 1", n.height)
		}
		bytes := 0
		for _, v := range n.items {
			bytes += itemBytes(v)
		}
		if n.bytes != bytes {
			return 0, fmt.Errorf("pseq: leaf cached bytes %d != actual %d", n.bytes, bytes)
		}
		return n.size, nil
	}
	if n.left == nil || n.right == nil {
		return 0, fmt.Errorf("pseq: branch has a nil child")
	}
	ls, err := checkNode(n.left, leafCap)
	if err != nil {
		return 0, err
	}
	rs, err := checkNode(n.right, leafCap)
	if err != nil {
		return 0, err
	}
	if n.weight != ls {
		return 0, fmt.Errorf("pseq: branch weight %d != left size %d", n.weight, ls)
	}
	if n.size != ls+rs {
		return 0, fmt.Errorf("pseq: branch cached size %d != %d+%d", n.size, ls, rs)
	}
	if want := bytesOf(n.left) + bytesOf(n.right); n.bytes != want {
		return 0, fmt.Errorf("pseq: branch cached bytes %d != %d", n.bytes, want)
	}
	wantHeight := heightOf(n.left)
	if rh := heightOf(n.right); rh > wantHeight {
		wantHeight = rh
	}
	wantHeight++
	if n.height != wantHeight {
		return 0, fmt.Errorf("pseq: branch cached height %d != %d", n.height, wantHeight)
	}
	return n.size, nil
}
