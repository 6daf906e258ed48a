/*
Package pseqtesting provides test-support helpers for callers exercising
pseq.Sequence values: a reference-model fuzz driver that interleaves
Sequence operations against a plain slice and fails as soon as the two
diverge, the way btree's mutation_helpers_test.go drives a Tree against a
reference model inline in its own package.
*/
package pseqtesting

import (
	"fmt"
	"math/rand"

	"github.com/arjunsahay/pseq"
)

// Op names a single reference-model operation exercised by Drive.
type Op int

const (
	OpGet Op = iota
	OpSet
	OpInsert
	OpDelete
	OpSplitAppend
	OpSetMut
	OpInsertMut
	OpDeleteMut
)

// maxSnapshots bounds how many retained pre-mutation handles a Model checks
// on every step; old ones are dropped once the window fills.
const maxSnapshots = 8

// snapshot is a Sequence handle retained from before some later step, paired
// with the reference slice it must keep matching forever after: per
// spec.md's persistence property, nothing any later *Mut call does to a
// handle derived from it may ever change what this handle reports.
type snapshot struct {
	seq pseq.Sequence[int]
	ref []int
}

// Model is the reference slice a Driver keeps in lockstep with a
// pseq.Sequence[int], plus a rolling window of retained older handles used
// to catch a mutation reaching into a subtree still shared with one of
// them.
type Model struct {
	seq       pseq.Sequence[int]
	ref       []int
	rng       *rand.Rand
	steps     int
	snapshots []snapshot
}

// NewModel returns a Model seeded with n items (0..n-1) built with cfg.
func NewModel(n int, cfg pseq.Config, seed int64) (*Model, error) {
	ref := make([]int, n)
	for i := range ref {
		ref[i] = i
	}
	seq, err := pseq.FromSlice(ref, cfg)
	if err != nil {
		return nil, err
	}
	return &Model{seq: seq, ref: ref, rng: rand.New(rand.NewSource(seed))}, nil
}

// retain snapshots the Model's current handle before it moves on, so a
// later step's *Mut call against the new handle can be checked for
// accidentally reaching back into this one.
func (m *Model) retain() {
	m.snapshots = append(m.snapshots, snapshot{seq: pseq.Clone(m.seq), ref: append([]int(nil), m.ref...)})
	if len(m.snapshots) > maxSnapshots {
		m.snapshots = m.snapshots[len(m.snapshots)-maxSnapshots:]
	}
}

// Step applies one randomly-chosen operation to both the Sequence and the
// reference slice, and returns an error if they diverge afterward, or if
// any retained snapshot no longer matches its frozen reference.
func (m *Model) Step() error {
	m.steps++
	if m.rng.Intn(4) == 0 {
		m.retain()
	}
	n := pseq.Len(m.seq)
	switch {
	case n == 0:
		v := m.rng.Int()
		m.seq = pseq.Push(m.seq, v)
		m.ref = append(m.ref, v)
	default:
		switch Op(m.rng.Intn(int(OpDeleteMut) + 1)) {
		case OpGet:
			i := m.rng.Intn(n)
			got, err := pseq.Get(m.seq, i)
			if err != nil {
				return fmt.Errorf("step %d: Get(%d): %w", m.steps, i, err)
			}
			if got != m.ref[i] {
				return fmt.Errorf("step %d: Get(%d): got %d, want %d", m.steps, i, got, m.ref[i])
			}
		case OpSet:
			i, v := m.rng.Intn(n), m.rng.Int()
			seq2, err := pseq.Set(m.seq, i, v)
			if err != nil {
				return fmt.Errorf("step %d: Set(%d): %w", m.steps, i, err)
			}
			m.seq = seq2
			m.ref[i] = v
		case OpInsert:
			i, v := m.rng.Intn(n+1), m.rng.Int()
			seq2, err := pseq.Insert(m.seq, i, v)
			if err != nil {
				return fmt.Errorf("step %d: Insert(%d): %w", m.steps, i, err)
			}
			m.seq = seq2
			m.ref = insertRef(m.ref, i, v)
		case OpDelete:
			i := m.rng.Intn(n)
			seq2, err := pseq.Delete(m.seq, i)
			if err != nil {
				return fmt.Errorf("step %d: Delete(%d): %w", m.steps, i, err)
			}
			m.seq = seq2
			m.ref = append(m.ref[:i], m.ref[i+1:]...)
		case OpSplitAppend:
			i := m.rng.Intn(n + 1)
			left, right, err := pseq.Split(m.seq, i)
			if err != nil {
				return fmt.Errorf("step %d: Split(%d): %w", m.steps, i, err)
			}
			m.seq = pseq.Append(left, right)
		case OpSetMut:
			i, v := m.rng.Intn(n), m.rng.Int()
			seq2, err := pseq.SetMut(m.seq, i, v)
			if err != nil {
				return fmt.Errorf("step %d: SetMut(%d): %w", m.steps, i, err)
			}
			m.seq = seq2
			m.ref[i] = v
		case OpInsertMut:
			i, v := m.rng.Intn(n+1), m.rng.Int()
			seq2, err := pseq.InsertMut(m.seq, i, v)
			if err != nil {
				return fmt.Errorf("step %d: InsertMut(%d): %w", m.steps, i, err)
			}
			m.seq = seq2
			m.ref = insertRef(m.ref, i, v)
		case OpDeleteMut:
			i := m.rng.Intn(n)
			seq2, err := pseq.DeleteMut(m.seq, i)
			if err != nil {
				return fmt.Errorf("step %d: DeleteMut(%d): %w", m.steps, i, err)
			}
			m.seq = seq2
			m.ref = append(m.ref[:i], m.ref[i+1:]...)
		}
	}
	if err := m.check(m.seq, m.ref); err != nil {
		return err
	}
	return m.checkSnapshots()
}

func insertRef(ref []int, i, v int) []int {
	out := make([]int, 0, len(ref)+1)
	out = append(out, ref[:i]...)
	out = append(out, v)
	out = append(out, ref[i:]...)
	return out
}

func (m *Model) check(seq pseq.Sequence[int], ref []int) error {
	if err := pseq.Check(seq); err != nil {
		return fmt.Errorf("step %d: invariant check failed: %w", m.steps, err)
	}
	if pseq.Len(seq) != len(ref) {
		return fmt.Errorf("step %d: length mismatch: sequence %d, model %d", m.steps, pseq.Len(seq), len(ref))
	}
	got := pseq.ToSlice(seq)
	for i := range ref {
		if got[i] != ref[i] {
			return fmt.Errorf("step %d: item[%d] mismatch: sequence %d, model %d", m.steps, i, got[i], ref[i])
		}
	}
	return nil
}

// checkSnapshots verifies that every retained pre-mutation handle still
// reports exactly the items it reported when it was retained, regardless of
// any *Mut call applied to a handle derived from it since.
func (m *Model) checkSnapshots() error {
	for idx, snap := range m.snapshots {
		if err := m.check(snap.seq, snap.ref); err != nil {
			return fmt.Errorf("snapshot %d: %w", idx, err)
		}
	}
	return nil
}

// Drive runs steps Step calls, stopping at and returning the first error.
func Drive(m *Model, steps int) error {
	for i := 0; i < steps; i++ {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
