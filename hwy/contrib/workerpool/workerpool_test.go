// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}

	def := New(0)
	defer def.Close()
	if def.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", def.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

// cover runs a loop and checks that every index in [0, n) is visited once.
func cover(t *testing.T, n int, loop func(fn func(start, end int))) {
	t.Helper()
	hits := make([]int32, n)
	loop(func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times", i, h)
		}
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 5, 100, 1001} {
		cover(t, n, func(fn func(start, end int)) { pool.ParallelFor(n, fn) })
	}
}

func TestParallelForAligned(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	for _, n := range []int{1, 7, 8, 9, 64, 100, 1003} {
		var mu sync.Mutex
		var starts []int
		cover(t, n, func(fn func(start, end int)) {
			pool.ParallelForAligned(n, 8, func(start, end int) {
				mu.Lock()
				starts = append(starts, start)
				mu.Unlock()
				fn(start, end)
			})
		})
		for _, s := range starts {
			if s%8 != 0 {
				t.Errorf("n=%d: range starts at %d, not a multiple of 8", n, s)
			}
		}
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 10, 99, 100, 1001} {
		cover(t, n, func(fn func(start, end int)) { pool.ParallelForBatched(n, 10, fn) })
	}
	cover(t, 17, func(fn func(start, end int)) { pool.ParallelForBatched(17, 0, fn) })
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelForBatched(-1, 4, func(start, end int) { called = true })
	if called {
		t.Error("fn called for an empty range")
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	cover(t, 100, func(fn func(start, end int)) { pool.ParallelFor(100, fn) })
	cover(t, 100, func(fn func(start, end int)) { pool.ParallelForBatched(100, 7, fn) })
}

func TestConcurrentLoops(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			var sum atomic.Int64
			pool.ParallelFor(1000, func(start, end int) {
				for i := start; i < end; i++ {
					sum.Add(int64(i))
				}
			})
			if got := sum.Load(); got != 999*1000/2 {
				t.Errorf("sum = %d, want %d", got, 999*1000/2)
			}
		})
	}
	wg.Wait()
}

func TestCloseDuringLoops(t *testing.T) {
	pool := New(4)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 200 {
				var sum atomic.Int64
				pool.ParallelForBatched(1000, 16, func(start, end int) {
					for i := start; i < end; i++ {
						sum.Add(int64(i))
					}
				})
				if got := sum.Load(); got != 999*1000/2 {
					t.Errorf("sum = %d, want %d", got, 999*1000/2)
					return
				}
			}
		})
	}
	runtime.Gosched()
	pool.Close()
	wg.Wait()
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelFor(1000, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelForBatched(1000, 10, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}
