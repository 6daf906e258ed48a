package pseqtesting

import (
	"testing"

	"github.com/arjunsahay/pseq"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestModelStaysInSyncWithSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	cfg := pseq.DefaultConfig()
	cfg.LeafCap = 4
	m, err := NewModel(20, cfg, 42)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if err := Drive(m, 300); err != nil {
		t.Fatalf("Drive: %v", err)
	}
}

// TestModelCatchesMutAliasing drives enough steps, with a small LeafCap to
// keep handles sharing leaves across many steps, that Step's retained
// snapshots are near-certain to overlap with a subsequent SetMut/
// InsertMut/DeleteMut call. It exists to prove the reference model would
// catch a regression of the pure-op-then-Mut aliasing bug, not just to
// check that it currently passes.
func TestModelCatchesMutAliasing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	cfg := pseq.DefaultConfig()
	cfg.LeafCap = 4
	m, err := NewModel(64, cfg, 1337)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if err := Drive(m, 2000); err != nil {
		t.Fatalf("Drive: %v", err)
	}
}

func TestModelStartsEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pseq")
	defer teardown()
	//
	m, err := NewModel(0, pseq.DefaultConfig(), 7)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if err := Drive(m, 100); err != nil {
		t.Fatalf("Drive: %v", err)
	}
}
