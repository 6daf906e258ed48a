package pseq

import "fmt"

// OwnershipMode selects the reference-counting discipline used for interior
// nodes of a Sequence's tree.
type OwnershipMode int

const (
	// OwnershipShared uses an atomically-updated refcount; sequences built
	// with this mode may be cloned and mutated from multiple goroutines as
	// long as each goroutine holds a distinct handle.
	OwnershipShared OwnershipMode = iota
	// OwnershipLocal uses a plain, non-atomic refcount; cheaper, but a
	// Sequence built with this mode must stay on a single goroutine.
	OwnershipLocal
)

// DefaultLeafCap is the default maximum number of items held in a leaf node.
const DefaultLeafCap = 10

// DefaultK is the default rebalance threshold factor (spec.md's K).
const DefaultK = 3

// Config configures the shape and ownership discipline of a Sequence.
type Config struct {
	// LeafCap is the maximum number of items a leaf node may hold before it
	// is split. Must be >= 2.
	LeafCap int
	// AutoRebalance, when true, runs the root-only rebalance check after
	// every mutating operation.
	AutoRebalance bool
	// OwnershipMode selects the refcount discipline for interior nodes.
	OwnershipMode OwnershipMode
	// K is the rebalance threshold factor; unused if zero (DefaultK applies).
	K int
}

// DefaultConfig returns a Config with the package defaults: LeafCap 10,
// auto-rebalance enabled, shared (atomic) ownership.
func DefaultConfig() Config {
	return Config{
		LeafCap:       DefaultLeafCap,
		AutoRebalance: true,
		OwnershipMode: OwnershipShared,
		K:             DefaultK,
	}
}

func (cfg Config) normalized() Config {
	if cfg.LeafCap == 0 {
		cfg.LeafCap = DefaultLeafCap
	}
	if cfg.K == 0 {
		cfg.K = DefaultK
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.LeafCap < 2 {
		return fmt.Errorf("%w: leaf cap must be >= 2", ErrInvalidConfig)
	}
	if cfg.K < 1 {
		return fmt.Errorf("%w: K must be >= 1", ErrInvalidConfig)
	}
	if cfg.OwnershipMode != OwnershipShared && cfg.OwnershipMode != OwnershipLocal {
		return fmt.Errorf("%w: unknown ownership mode", ErrInvalidConfig)
	}
	return nil
}
