package pseq

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetMutInPlaceWhenUnique(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	s := mustSlice(t, []int{1, 2, 3, 4}, smallConfig())
	if !s.root.Unique() {
		t.Fatal("freshly built sequence should own a unique root")
	}
	rootBefore := s.root
	s2, err := SetMut(s, 0, 99)
	if err != nil {
		t.Fatalf("SetMut: %v", err)
	}
	if s2.root != rootBefore {
		t.Fatal("SetMut on a unique root should mutate in place, not replace the root cell")
	}
	got, _ := Get(s2, 0)
	if got != 99 {
		t.Fatalf("Get(s2,0): got %d, want 99", got)
	}
}

func TestSetMutClonesWhenShared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	s := mustSlice(t, []int{1, 2, 3, 4}, smallConfig())
	shared := Clone(s)
	if s.root.Unique() {
		t.Fatal("root should no longer be unique after Clone")
	}
	s2, err := SetMut(s, 0, 99)
	if err != nil {
		t.Fatalf("SetMut: %v", err)
	}
	got, _ := Get(s2, 0)
	if got != 99 {
		t.Fatalf("Get(s2,0): got %d, want 99", got)
	}
	origFirst, _ := Get(shared, 0)
	if origFirst != 1 {
		t.Fatalf("SetMut on a shared root must not affect other handles: got %d, want 1", origFirst)
	}
}

func TestInsertMutDeleteMutRoundtrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	s := mustSlice(t, []int{1, 2, 3, 4, 5}, smallConfig())
	s2, err := InsertMut(s, 2, 999)
	if err != nil {
		t.Fatalf("InsertMut: %v", err)
	}
	if err := Check(s2); err != nil {
		t.Fatalf("Check: %v", err)
	}
	s3, err := DeleteMut(s2, 2)
	if err != nil {
		t.Fatalf("DeleteMut: %v", err)
	}
	if err := Check(s3); err != nil {
		t.Fatalf("Check: %v", err)
	}
	got := ToSlice(s3)
	want := []int{1, 2, 3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item[%d]: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCloneThenMutDoesNotAffectOriginal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	s := mustSlice(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, smallConfig())
	clone := Clone(s)
	clone, err := InsertMut(clone, 0, -1)
	if err != nil {
		t.Fatalf("InsertMut: %v", err)
	}
	if Len(s) != 8 {
		t.Fatalf("original length changed after mutating a clone: got %d, want 8", Len(s))
	}
	first, _ := Get(s, 0)
	if first != 1 {
		t.Fatalf("original item[0] changed after mutating a clone: got %d, want 1", first)
	}
	cloneFirst, _ := Get(clone, 0)
	if cloneFirst != -1 {
		t.Fatalf("clone item[0]: got %d, want -1", cloneFirst)
	}
}

// TestSetMutDoesNotCorruptSubtreeSharedByPureOp exercises the aliasing a
// pure op leaves behind: Set only rebuilds the branches on its edit path
// and reuses every untouched sibling, so s and s2 end up with a leaf cell
// reachable from both. A later SetMut on s2 must see that cell as shared
// (not Unique) and clone it, never mutate it in place underneath s.
func TestSetMutDoesNotCorruptSubtreeSharedByPureOp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	s := mustSlice(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, smallConfig())
	s2, err := Set(s, 0, 99)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	s3, err := SetMut(s2, 5, -1)
	if err != nil {
		t.Fatalf("SetMut: %v", err)
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := ToSlice(s)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("s (pre-mutation handle) corrupted by SetMut on s2: item[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	got2 := ToSlice(s2)
	wantS2 := []int{99, 2, 3, 4, 5, 6, 7, 8}
	for i := range wantS2 {
		if got2[i] != wantS2[i] {
			t.Fatalf("s2 (pre-SetMut handle) corrupted by SetMut on s3: item[%d] = %d, want %d", i, got2[i], wantS2[i])
		}
	}
	got3 := ToSlice(s3)
	wantS3 := []int{99, 2, 3, 4, 5, -1, 7, 8}
	for i := range wantS3 {
		if got3[i] != wantS3[i] {
			t.Fatalf("s3: item[%d] = %d, want %d", i, got3[i], wantS3[i])
		}
	}
}

func TestPopMut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	s := mustSlice(t, []int{1, 2, 3}, smallConfig())
	s2, v, err := PopMut(s)
	if err != nil {
		t.Fatalf("PopMut: %v", err)
	}
	if v != 3 {
		t.Fatalf("PopMut value: got %d, want 3", v)
	}
	if Len(s2) != 2 {
		t.Fatalf("Len after PopMut: got %d, want 2", Len(s2))
	}
}
