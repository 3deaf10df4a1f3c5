// Copyright 2025 The go-cuv Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for row-parallel grid
// computation. One Pool serves many kernel calls, so a time series of wind
// fields does not start new goroutines per field.
//
// Usage:
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//
//	for _, step := range steps {
//	    res, err := cuv.Compute(pool, lon, lat, step.U, step.V)
//	    ...
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs batches of work on a fixed set of goroutines started by New.
type Pool struct {
	size   int
	tasks  chan task
	once   sync.Once
	closed atomic.Bool
}

// task is one worker's share of a ParallelRange call.
type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of n workers; n <= 0 means GOMAXPROCS. The workers live
// until Close.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{size: n, tasks: make(chan task, 2*n)}
	for range n {
		go p.serve()
	}
	return p
}

func (p *Pool) serve() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int {
	return p.size
}

// Close stops the workers once queued work has finished. It is safe to call
// more than once; a closed pool runs ParallelRange on the caller.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelRange calls fn on consecutive sub-ranges [start, end) that
// together cover [lo, hi) exactly once, and returns when all calls have
// finished. Workers claim batchSize indices at a time from a shared atomic
// counter, so a worker that is descheduled does not hold back the rest.
//
// The grid kernels schedule interior latitude rows [1, M-1) with it.
func (p *Pool) ParallelRange(lo, hi, batchSize int, fn func(start, end int)) {
	if hi <= lo {
		return
	}
	batchSize = max(batchSize, 1)

	batches := (hi - lo + batchSize - 1) / batchSize
	workers := min(p.size, batches)
	if workers <= 1 || p.closed.Load() {
		fn(lo, hi)
		return
	}

	var next atomic.Int64
	claim := func() {
		for {
			start := lo + int(next.Add(1)-1)*batchSize
			if start >= hi {
				return
			}
			fn(start, min(start+batchSize, hi))
		}
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{run: claim, done: &wg}
	}
	wg.Wait()
}
