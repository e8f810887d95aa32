// File: threads/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool counters and snapshots.

package threads

import "sync/atomic"

type poolStats struct {
	spawned    atomic.Int64
	rounds     atomic.Int64
	fastRuns   atomic.Int64
	dispatched atomic.Int64
}

// Stats is a point-in-time snapshot of pool counters. Values are read
// without locks and may be slightly stale during a concurrent run.
type Stats struct {
	Workers    int   // currently live workers
	Spawned    int64 // workers spawned over the pool's lifetime
	Rounds     int64 // Run invocations, fast path included
	FastRuns   int64 // single-worker synchronous runs
	Dispatched int64 // total worker task invocations
}

// Stats returns the current counter snapshot.
func (p *Pool) Stats() Stats {
	return Stats{
		Workers:    p.threadsInPool,
		Spawned:    p.stats.spawned.Load(),
		Rounds:     p.stats.rounds.Load(),
		FastRuns:   p.stats.fastRuns.Load(),
		Dispatched: p.stats.dispatched.Load(),
	}
}
