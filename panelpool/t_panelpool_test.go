// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panelpool

import (
	"sync/atomic"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_for01(tst *testing.T) {

	chk.PrintTitle("Test for01: For visits every index exactly once")

	const n = 1000
	seen := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, v := range seen {
		if v != 1 {
			tst.Fatalf("index %d visited %d times, expected 1", i, v)
		}
	}
}

func Test_for02(tst *testing.T) {

	chk.PrintTitle("Test for02: For degenerates to serial execution for n<=0 and 1 worker")

	calls := 0
	For(0, func(i int) { calls++ })
	if calls != 0 {
		tst.Errorf("expected 0 calls for n=0, got %d", calls)
	}

	saved := Workers
	defer func() { Workers = saved }()
	Workers = 1

	order := []int{}
	For(5, func(i int) { order = append(order, i) })
	chk.Ints(tst, "serial order", order, []int{0, 1, 2, 3, 4})
}
