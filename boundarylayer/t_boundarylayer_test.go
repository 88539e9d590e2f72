// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundarylayer

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_null01(tst *testing.T) {

	chk.PrintTitle("Test null01: Null boundary layer is inert")

	var bl BoundaryLayer = Null{}
	if bl.NonTrivial() {
		tst.Errorf("Null must report NonTrivial()==false")
	}
	chk.Scalar(tst, "blowing velocity", 1e-17, bl.BlowingVelocity(0), 0)
	fr := bl.Friction(3)
	chk.Vector(tst, "friction", 1e-17, fr[:], []float64{0, 0, 0})

	// Recalculate must not panic regardless of input.
	bl.Recalculate([][3]float64{{1, 2, 3}, {4, 5, 6}})
}
