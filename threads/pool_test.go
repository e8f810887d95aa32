package threads

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// goid extracts the current goroutine's id from the stack header.
func goid(t *testing.T) int {
	t.Helper()
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := strings.Fields(string(buf[:n]))
	if len(fields) < 2 {
		t.Fatalf("unexpected stack header %q", buf[:n])
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		t.Fatalf("unexpected goroutine id %q", fields[1])
	}
	return id
}

// runWithTimeout guards against a deadlocked handshake taking the whole
// test binary down with it.
func runWithTimeout(t *testing.T, name string, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatalf("%s did not complete", name)
	}
}

func TestPool_PerWorkerCounters(t *testing.T) {
	pool := NewPool()
	defer pool.Close()

	// Each worker owns one cell, so plain increments are safe and the
	// barrier makes the final read safe too.
	counters := make([]int, 4)
	runWithTimeout(t, "Run", func() {
		pool.RunFunc(func(workerIndex, workerCount int) {
			counters[workerIndex]++
		}, 4)
	})

	for i, c := range counters {
		if c != 1 {
			t.Fatalf("counters = %v, want [1 1 1 1] (index %d)", counters, i)
		}
	}
}

func TestPool_ExactlyOncePerIndex(t *testing.T) {
	pool := NewPool()
	defer pool.Close()

	for n := 1; n <= 8; n++ {
		invocations := make([]int32, n)
		var badCount int32

		runWithTimeout(t, "Run", func() {
			pool.RunFunc(func(workerIndex, workerCount int) {
				if workerCount != n {
					atomic.AddInt32(&badCount, 1)
				}
				atomic.AddInt32(&invocations[workerIndex], 1)
			}, n)
		})

		if badCount != 0 {
			t.Fatalf("n=%d: %d invocations saw a wrong workerCount", n, badCount)
		}
		for idx, c := range invocations {
			if c != 1 {
				t.Fatalf("n=%d: worker index %d invoked %d times", n, idx, c)
			}
		}
	}
}

func TestPool_SingleWorkerRunsOnCaller(t *testing.T) {
	pool := NewPool()
	defer pool.Close()

	caller := goid(t)
	ran := 0
	var bodyGoid int
	pool.RunFunc(func(workerIndex, workerCount int) {
		ran++
		bodyGoid = goid(t)
		if workerIndex != 0 || workerCount != 1 {
			t.Errorf("got index=%d count=%d, want 0 and 1", workerIndex, workerCount)
		}
	}, 1)

	if ran != 1 {
		t.Fatalf("body ran %d times, want 1", ran)
	}
	if bodyGoid != caller {
		t.Fatalf("body ran on goroutine %d, caller is %d", bodyGoid, caller)
	}
	if pool.NumWorkers() != 0 {
		t.Fatalf("fast path spawned %d workers", pool.NumWorkers())
	}
}

func TestPool_MonotonicGrowth(t *testing.T) {
	pool := NewPool()
	defer pool.Close()

	noop := TaskFunc(func(int, int) {})

	runWithTimeout(t, "Run n=2", func() { pool.Run(noop, 2) })
	if got := pool.Stats().Spawned; got != 2 {
		t.Fatalf("after n=2: spawned %d, want 2", got)
	}

	runWithTimeout(t, "Run n=4", func() { pool.Run(noop, 4) })
	if got := pool.Stats().Spawned; got != 4 {
		t.Fatalf("after n=4: spawned %d, want 4", got)
	}

	// A smaller request must reuse the existing workers.
	runWithTimeout(t, "Run n=3", func() { pool.Run(noop, 3) })
	if got := pool.Stats().Spawned; got != 4 {
		t.Fatalf("after n=3: spawned %d, want 4 (no respawn)", got)
	}
	if pool.NumWorkers() != 4 {
		t.Fatalf("pool shrank to %d workers", pool.NumWorkers())
	}
}

func TestPool_SequentialRunsAreBarriers(t *testing.T) {
	pool := NewPool()
	defer pool.Close()

	const n = 4
	const rounds = 100

	// Plain, unsynchronized cells: only the barrier makes this safe.
	// The race detector will catch any round overlap.
	vals := make([]int, n)
	runWithTimeout(t, "rounds", func() {
		for r := 0; r < rounds; r++ {
			pool.RunFunc(func(workerIndex, workerCount int) {
				vals[workerIndex]++
			}, n)
		}
	})

	for i, v := range vals {
		if v != rounds {
			t.Fatalf("worker %d observed %d rounds, want %d", i, v, rounds)
		}
	}
}

func TestPool_CloseWithoutRun(t *testing.T) {
	pool := NewPool()
	runWithTimeout(t, "Close", pool.Close)
	if pool.NumWorkers() != 0 {
		t.Fatalf("closed pool reports %d workers", pool.NumWorkers())
	}
}

func TestPool_CloseAndReuse(t *testing.T) {
	pool := NewPool()

	var first int32
	runWithTimeout(t, "Run", func() {
		pool.RunFunc(func(int, int) { atomic.AddInt32(&first, 1) }, 3)
	})
	runWithTimeout(t, "Close", pool.Close)
	runWithTimeout(t, "Close again", pool.Close)
	if pool.NumWorkers() != 0 {
		t.Fatalf("pool still has %d workers after Close", pool.NumWorkers())
	}

	// The pool grows again from zero after teardown.
	var second int32
	runWithTimeout(t, "Run after Close", func() {
		pool.RunFunc(func(int, int) { atomic.AddInt32(&second, 1) }, 2)
	})
	runWithTimeout(t, "final Close", pool.Close)

	if first != 3 || second != 2 {
		t.Fatalf("invocations = %d and %d, want 3 and 2", first, second)
	}
}

func TestPool_RunPreconditions(t *testing.T) {
	pool := NewPool()
	defer pool.Close()

	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s did not panic", name)
			}
		}()
		fn()
	}

	noop := TaskFunc(func(int, int) {})
	mustPanic("numWorkers=0", func() { pool.Run(noop, 0) })
	mustPanic("numWorkers>cap", func() { pool.Run(noop, MaxWorkers+1) })
	mustPanic("nil task", func() { pool.Run(nil, 2) })
}

func BenchmarkPoolRun(b *testing.B) {
	pool := NewPool()
	defer pool.Close()

	noop := TaskFunc(func(int, int) {})
	pool.Run(noop, 4) // warm the pool

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Run(noop, 4)
	}
}
