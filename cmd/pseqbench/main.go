// Command pseqbench runs a handful of micro-benchmarks against
// pseq.Sequence[int] and prints their timings. It is a thin stand-in for
// the full performance harness that exercises this package from outside
// the module; it exists so the module has a runnable entrypoint, not to
// replace a proper benchmark suite.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/arjunsahay/pseq"
)

func main() {
	n := flag.Int("n", 100_000, "number of items to build the sequence from")
	leafCap := flag.Int("leaf-cap", pseq.DefaultLeafCap, "leaf capacity")
	local := flag.Bool("local", false, "use local (non-atomic) ownership mode")
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	cfg := pseq.DefaultConfig()
	cfg.LeafCap = *leafCap
	if *local {
		cfg.OwnershipMode = pseq.OwnershipLocal
	}

	items := make([]int, *n)
	for i := range items {
		items[i] = i
	}

	ts := time.Now()
	s, err := pseq.FromSlice(items, cfg)
	if err != nil {
		log.Fatalf("FromSlice: %v", err)
	}
	log.Printf("FromSlice(%d items): %v", *n, time.Since(ts))

	ts = time.Now()
	for i := 0; i < 1000; i++ {
		_, err := pseq.Get(s, i%pseq.Len(s))
		if err != nil {
			log.Fatalf("Get: %v", err)
		}
	}
	log.Printf("1000x Get: %v", time.Since(ts))

	ts = time.Now()
	cur := s
	for i := 0; i < 1000; i++ {
		cur, err = pseq.Insert(cur, pseq.Len(cur)/2, i)
		if err != nil {
			log.Fatalf("Insert: %v", err)
		}
	}
	log.Printf("1000x Insert (pure path): %v", time.Since(ts))

	// A fresh FromSlice, not s itself: cur's root must be uniquely owned for
	// InsertMut to take its fast path, and reusing s's root here would alias
	// it with the sequence built above, corrupting s's data in place.
	cur, err = pseq.FromSlice(items, cfg)
	if err != nil {
		log.Fatalf("FromSlice: %v", err)
	}
	ts = time.Now()
	for i := 0; i < 1000; i++ {
		cur, err = pseq.InsertMut(cur, pseq.Len(cur)/2, i)
		if err != nil {
			log.Fatalf("InsertMut: %v", err)
		}
	}
	log.Printf("1000x InsertMut (fast path, unique root): %v", time.Since(ts))

	ts = time.Now()
	balanced := pseq.Rebalance(cur)
	log.Printf("Rebalance(%d items): %v", pseq.Len(balanced), time.Since(ts))
}
