package pseq

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.LeafCap = 4
	return cfg
}

func mustSlice(t *testing.T, s []int, cfg Config) Sequence[int] {
	t.Helper()
	seq, err := FromSlice(s, cfg)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	return seq
}

func TestFromSliceToSliceRoundtrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	s := mustSlice(t, in, smallConfig())
	if Len(s) != len(in) {
		t.Fatalf("Len: got %d, want %d", Len(s), len(in))
	}
	if err := Check(s); err != nil {
		t.Fatalf("Check: %v", err)
	}
	out := ToSlice(s)
	if len(out) != len(in) {
		t.Fatalf("ToSlice len: got %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("ToSlice[%d]: got %d, want %d", i, out[i], in[i])
		}
	}
}

func TestGetAfterSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	s := mustSlice(t, []int{1, 2, 3, 4, 5}, smallConfig())
	s2, err := Set(s, 2, 99)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := Get(s2, 2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != 99 {
		t.Fatalf("Get(s2,2): got %d, want 99", got)
	}
	orig, err := Get(s, 2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if orig != 3 {
		t.Fatalf("original sequence mutated: Get(s,2): got %d, want 3", orig)
	}
}

func TestInsertThenGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	s := mustSlice(t, []int{1, 2, 3}, smallConfig())
	s2, err := Insert(s, 1, 100)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := Check(s2); err != nil {
		t.Fatalf("Check: %v", err)
	}
	want := []int{1, 100, 2, 3}
	got := ToSlice(s2)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice[%d]: got %d, want %d", i, got[i], want[i])
		}
	}
	if Len(s) != 3 {
		t.Fatalf("original sequence length changed: got %d, want 3", Len(s))
	}
}

func TestDeleteIsInverseOfInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	s := mustSlice(t, []int{1, 2, 3, 4, 5, 6, 7}, smallConfig())
	s2, err := Insert(s, 3, 999)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	s3, err := Delete(s2, 3)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := Check(s3); err != nil {
		t.Fatalf("Check: %v", err)
	}
	orig, mod := ToSlice(s), ToSlice(s3)
	if len(orig) != len(mod) {
		t.Fatalf("length mismatch: got %d, want %d", len(mod), len(orig))
	}
	for i := range orig {
		if orig[i] != mod[i] {
			t.Fatalf("item[%d]: got %d, want %d", i, mod[i], orig[i])
		}
	}
}

func TestSplitThenAppendRoundtrips(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	s := mustSlice(t, in, smallConfig())
	for i := 0; i <= len(in); i++ {
		left, right, err := Split(s, i)
		if err != nil {
			t.Fatalf("Split(%d): %v", i, err)
		}
		if err := Check(left); err != nil {
			t.Fatalf("Check(left@%d): %v", i, err)
		}
		if err := Check(right); err != nil {
			t.Fatalf("Check(right@%d): %v", i, err)
		}
		joined := Append(left, right)
		if err := Check(joined); err != nil {
			t.Fatalf("Check(joined@%d): %v", i, err)
		}
		got := ToSlice(joined)
		if len(got) != len(in) {
			t.Fatalf("split@%d: length mismatch got %d want %d", i, len(got), len(in))
		}
		for j := range in {
			if got[j] != in[j] {
				t.Fatalf("split@%d: item[%d] got %d want %d", i, j, got[j], in[j])
			}
		}
	}
}

func TestOutOfBoundsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	s := mustSlice(t, []int{1, 2, 3}, smallConfig())
	if _, err := Get(s, 3); err == nil {
		t.Fatal("expected error for Get out of bounds")
	}
	if _, err := Get(s, -1); err == nil {
		t.Fatal("expected error for Get with negative index")
	}
	if _, err := Insert(s, 4, 0); err == nil {
		t.Fatal("expected error for Insert out of bounds")
	}
	if _, _, err := Split(s, 4); err == nil {
		t.Fatal("expected error for Split out of bounds")
	}
}

func TestLeafCapInvariantHolds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	cfg := smallConfig()
	cfg.AutoRebalance = false
	s, err := FromSlice([]int{}, cfg)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	for i := 0; i < 40; i++ {
		s, err = Insert(s, Len(s), i)
		if err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	if err := Check(s); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestRebalanceAfterManyInserts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	cfg := smallConfig()
	s, err := FromSlice([]int{}, cfg)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	for i := 0; i < 100; i++ {
		s, err = Insert(s, 0, i)
		if err != nil {
			t.Fatalf("Insert(0): %v", err)
		}
	}
	if err := Check(s); err != nil {
		t.Fatalf("Check after inserts: %v", err)
	}
	balanced := Rebalance(s)
	if err := Check(balanced); err != nil {
		t.Fatalf("Check after Rebalance: %v", err)
	}
	if Len(balanced) != Len(s) {
		t.Fatalf("Rebalance changed length: got %d want %d", Len(balanced), Len(s))
	}
	for i := 0; i < Len(s); i++ {
		a, _ := Get(s, i)
		b, _ := Get(balanced, i)
		if a != b {
			t.Fatalf("Rebalance changed item[%d]: got %d want %d", i, b, a)
		}
	}
}

func TestPushPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	s := New[int](smallConfig())
	s = Push(s, 1)
	s = Push(s, 2)
	s = Push(s, 3)
	s, v, err := Pop(s)
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if v != 3 {
		t.Fatalf("Pop: got %d, want 3", v)
	}
	if Len(s) != 2 {
		t.Fatalf("Len after Pop: got %d, want 2", Len(s))
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	cfg := DefaultConfig()
	cfg.LeafCap = 1
	if _, err := FromSlice([]int{1, 2}, cfg); err == nil {
		t.Fatal("expected ErrInvalidConfig for LeafCap < 2")
	}
}

func TestLocalOwnershipModeWorks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	cfg := smallConfig()
	cfg.OwnershipMode = OwnershipLocal
	s := mustSlice(t, []int{1, 2, 3, 4}, cfg)
	s2, err := Insert(s, 2, 42)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := Check(s2); err != nil {
		t.Fatalf("Check: %v", err)
	}
}
