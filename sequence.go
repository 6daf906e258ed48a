/*
Package pseq implements a persistent (immutable), generically-typed indexed
sequence backed by a weight-balanced binary leaf/branch tree.

Sequence[T] offers logarithmic random access, update, insertion, deletion,
split and concatenation, all non-destructive: every operation returns a new
Sequence value and leaves its inputs untouched. Structural sharing keeps this
cheap: only the nodes along an edit's path are ever copied.

Two ownership disciplines, selected by Config.OwnershipMode, choose the
reference-counting primitive behind interior nodes: OwnershipShared is safe
to fan a Sequence's tree out across goroutines (distinct handles, atomic
refcount); OwnershipLocal is cheaper but confines a Sequence's tree to one
goroutine. Both disciplines additionally expose a mutable fast path: the
*Mut family of operations (SetMut, InsertMut, DeleteMut, ...) detects edit
paths that are uniquely owned and mutates them in place instead of cloning,
falling back to the pure path as soon as sharing is detected.

Typical usage:

	s, _ := pseq.FromSlice([]int{1, 2, 3}, pseq.DefaultConfig())
	s2, _ := pseq.Insert(s, 1, 99)
	fmt.Println(pseq.ToSlice(s))  // [1 2 3], s is untouched
	fmt.Println(pseq.ToSlice(s2)) // [1 99 2 3]
*/
package pseq

import (
	"github.com/arjunsahay/pseq/internal/bulk"
	"github.com/arjunsahay/pseq/internal/rc"
)

// Sequence is a persistent indexed sequence of items of type T.
type Sequence[T any] struct {
	root *rcNode[T]
	n    int
	cfg  Config
}

func (cfg Config) discipline() rc.Discipline {
	if cfg.OwnershipMode == OwnershipLocal {
		return rc.Local
	}
	return rc.Shared
}

// New returns the empty sequence built with cfg (validated and defaulted).
// It panics if cfg fails validation; callers that want a recoverable error
// should call Config.validate directly before constructing a Sequence, the
// way FromSlice does.
func New[T any](cfg Config) Sequence[T] {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		trace().Errorf("pseq: invalid config: %s", err.Error())
		panic(err)
	}
	root := wrapLeaf[T](cfg.discipline(), nil)
	return Sequence[T]{root: root, n: 0, cfg: cfg}
}

// FromSlice builds a Sequence from the items in s, in order. s is copied;
// the returned Sequence shares no storage with it. Returns ErrInvalidConfig
// if cfg fails validation.
func FromSlice[T any](s []T, cfg Config) (Sequence[T], error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		trace().Errorf("pseq: invalid config: %s", err.Error())
		return Sequence[T]{}, err
	}
	d := cfg.discipline()
	root := bulk.Build(s, cfg.LeafCap,
		func(items []T) *rcNode[T] { return wrapLeaf(d, append([]T(nil), items...)) },
		func(left, right *rcNode[T]) *rcNode[T] { return wrapBranch(d, left, right) },
	)
	return Sequence[T]{root: root, n: len(s), cfg: cfg}, nil
}

// ToSlice materializes s into a new, freshly-allocated slice in order.
func ToSlice[T any](s Sequence[T]) []T {
	out := make([]T, 0, s.n)
	return bulk.Flatten(s.root, out,
		func(r *rcNode[T]) (*node[T], bool) {
			n := r.Get()
			return n, n.isLeaf()
		},
		func(n *node[T]) []T { return n.items },
		func(n *node[T]) (*rcNode[T], *rcNode[T]) { return n.left, n.right },
	)
}

// Len returns the number of items in s. O(1).
func Len[T any](s Sequence[T]) int {
	return s.n
}

// Footprint returns an approximate count of bytes occupied by s's items,
// not counting tree bookkeeping overhead. O(1): the byte count is cached at
// every branch as it is built.
func Footprint[T any](s Sequence[T]) int {
	return bytesOf(s.root)
}

// Get returns the item at index i. Returns ErrIndexOutOfBounds if
// i is negative or >= Len(s).
func Get[T any](s Sequence[T], i int) (T, error) {
	var zero T
	if i < 0 || i >= s.n {
		return zero, outOfBounds(i, s.n)
	}
	return get(s.root, i), nil
}

// Set returns a new Sequence equal to s except that index i holds v.
// Returns ErrIndexOutOfBounds if i is negative or >= Len(s).
func Set[T any](s Sequence[T], i int, v T) (Sequence[T], error) {
	if i < 0 || i >= s.n {
		return Sequence[T]{}, outOfBounds(i, s.n)
	}
	root := setAt(s.cfg.discipline(), s.root, i, v)
	return s.withRoot(root, s.n), nil
}

// Insert returns a new Sequence equal to s with v inserted before index i.
// i may equal Len(s) (append). Returns ErrIndexOutOfBounds if i is negative
// or > Len(s).
func Insert[T any](s Sequence[T], i int, v T) (Sequence[T], error) {
	if i < 0 || i > s.n {
		return Sequence[T]{}, outOfBounds(i, s.n)
	}
	root := insertAt(s.cfg.discipline(), s.root, i, v, s.cfg.LeafCap)
	return s.withRoot(root, s.n+1), nil
}

// Delete returns a new Sequence equal to s with the item at index i removed.
// Returns ErrIndexOutOfBounds if i is negative or >= Len(s).
func Delete[T any](s Sequence[T], i int) (Sequence[T], error) {
	if i < 0 || i >= s.n {
		return Sequence[T]{}, outOfBounds(i, s.n)
	}
	root := deleteAt(s.cfg.discipline(), s.root, i)
	return s.withRoot(root, s.n-1), nil
}

// Split returns the two sequences obtained by cutting s at index i:
// items [0,i) and [i,Len(s)). i may range over [0, Len(s)].
func Split[T any](s Sequence[T], i int) (Sequence[T], Sequence[T], error) {
	if i < 0 || i > s.n {
		return Sequence[T]{}, Sequence[T]{}, outOfBounds(i, s.n)
	}
	l, r := splitAt(s.cfg.discipline(), s.root, i)
	left := s.withRoot(l, i)
	right := s.withRoot(r, s.n-i)
	return left, right, nil
}

// Append returns a new Sequence with other's items appended to s. s and
// other must share the same Config.OwnershipMode (LeafCap may differ; the
// result keeps s's Config).
func Append[T any](s, other Sequence[T]) Sequence[T] {
	d := s.cfg.discipline()
	root := concatNodes(d, s.root.Share(), other.root.Share())
	result := s.withRoot(root, s.n+other.n)
	return result
}

// Prepend returns a new Sequence with other's items prepended to s.
func Prepend[T any](s, other Sequence[T]) Sequence[T] {
	return Append(other, s)
}

// Push returns a new Sequence with v appended at the end. Convenience over
// Insert(s, Len(s), v).
func Push[T any](s Sequence[T], v T) Sequence[T] {
	s2, err := Insert(s, s.n, v)
	assert(err == nil, "Push: Insert at Len(s) cannot fail")
	return s2
}

// Pop returns a new Sequence with the last item removed, along with that
// item. Returns ErrIndexOutOfBounds if s is empty.
func Pop[T any](s Sequence[T]) (Sequence[T], T, error) {
	var zero T
	if s.n == 0 {
		return Sequence[T]{}, zero, outOfBounds(0, 0)
	}
	v, err := Get(s, s.n-1)
	assert(err == nil, "Pop: Get at Len(s)-1 cannot fail on a non-empty sequence")
	s2, err := Delete(s, s.n-1)
	assert(err == nil, "Pop: Delete at Len(s)-1 cannot fail on a non-empty sequence")
	return s2, v, nil
}

// Rebalance returns a new Sequence with the same items as s, rebuilt into a
// balanced tree regardless of Config.AutoRebalance.
func Rebalance[T any](s Sequence[T]) Sequence[T] {
	root := rebalance(s.cfg.discipline(), s.root)
	return s.withRoot(root, s.n)
}

// Clone returns a second handle on s's tree, explicitly sharing ownership of
// its root cell. Use Clone to obtain a handle meant for further *Mut calls
// while keeping s itself usable afterward: a bare Go assignment (s2 := s)
// copies the Sequence struct but does not notify the root cell's refcount,
// so a *Mut call on s2 could still mutate state s still points at.
func Clone[T any](s Sequence[T]) Sequence[T] {
	return Sequence[T]{root: s.root.Share(), n: s.n, cfg: s.cfg}
}

// withRoot returns a copy of s with a new root and length, running the
// auto-rebalance check first if s.cfg.AutoRebalance is set.
func (s Sequence[T]) withRoot(root *rcNode[T], n int) Sequence[T] {
	if s.cfg.AutoRebalance {
		root = maybeRebalanceRoot(s.cfg.discipline(), root, s.cfg)
	}
	return Sequence[T]{root: root, n: n, cfg: s.cfg}
}
