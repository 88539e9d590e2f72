// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package panelpool is the data-parallel fork/join primitive behind
// the six panel/wake-node loops of §5: a fixed-size worker pool with
// dynamic work stealing over a contiguous index range, one barrier per
// call, no cross-iteration shared mutable state beyond disjoint writes
// into pre-sized arrays.
//
// The teacher (gofem) gets its data parallelism from MPI, partitioning
// finite elements across OS processes (fem/domain.go's Cid2elem,
// c.Part == global.Rank). This module is single-process, so the same
// fork/join shape is rebuilt on top of goroutines and a shared atomic
// cursor instead of MPI ranks — see DESIGN.md.
package panelpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Workers is the number of goroutines each For call fans out to. It
// defaults to GOMAXPROCS and may be lowered for deterministic tests.
var Workers = runtime.GOMAXPROCS(0)

// For calls fn(i) once for every i in [0, n), distributing the calls
// dynamically across Workers goroutines, and blocks until all calls
// have returned. fn must not mutate state shared across indices other
// than through disjoint writes into a pre-sized slice indexed by i.
func For(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := Workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next int64 = -1
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := atomic.AddInt64(&next, 1)
				if i >= int64(n) {
					return
				}
				fn(int(i))
			}
		}()
	}
	wg.Wait()
}
