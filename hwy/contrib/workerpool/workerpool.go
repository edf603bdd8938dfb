// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs data-parallel loops on a fixed set of goroutines
// that live as long as the Pool.
//
// Kernels in this module are synchronous and allocation-free; the pool is
// how callers spread one large call, such as a big transpose, across
// cores without spawning goroutines per call.
//
// Usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	pool.ParallelFor(rows, func(start, end int) {
//	    process(rows[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent workers. It is safe for concurrent use; loops
// submitted from different goroutines share the workers.
type Pool struct {
	numWorkers int
	tasks      chan task

	// Loops hold mu for reading while they queue tasks; Close holds it for
	// writing, so tasks is never sent on after it is closed.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers workers, or GOMAXPROCS workers if
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after queued tasks finish. It waits for loops
// that are queuing tasks; loops started after Close run on the calling
// goroutine. Close is idempotent and safe to call concurrently with loops.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
}

// acquire takes the read side of mu for queuing tasks. It returns false,
// holding nothing, once the pool is closed.
func (p *Pool) acquire() bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	return true
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, 1, fn)
}

// ParallelForAligned is ParallelFor with every range boundary except n
// rounded to a multiple of align. Use it when ranges must cover whole
// vectors or whole tiles.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	align = max(align, 1)
	units := (n + align - 1) / align
	workers := min(p.numWorkers, units)
	if workers <= 1 || !p.acquire() {
		fn(0, n)
		return
	}

	chunk := (units + workers - 1) / workers * align
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.tasks <- task{run: func() { fn(start, end) }, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelForBatched hands out [0, n) in batches of batchSize from a shared
// counter, so faster workers take more batches. Use it when the cost per
// item varies.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	batches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, batches)
	if workers <= 1 || !p.acquire() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					start := int(next.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
