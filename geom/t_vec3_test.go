// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vec01(tst *testing.T) {

	chk.PrintTitle("Test vec01: basic Vec3 arithmetic")

	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	sum, diff, scaled := a.Add(b), a.Sub(b), a.Scale(2)

	chk.Scalar(tst, "a.b", 1e-17, a.Dot(b), 32)
	chk.Vector(tst, "a+b", 1e-17, sum[:], []float64{5, 7, 9})
	chk.Vector(tst, "a-b", 1e-17, diff[:], []float64{-3, -3, -3})
	chk.Vector(tst, "2a", 1e-17, scaled[:], []float64{2, 4, 6})
}

func Test_vec02(tst *testing.T) {

	chk.PrintTitle("Test vec02: cross product is orthogonal to both operands")

	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	c := a.Cross(b)
	chk.Vector(tst, "x × y", 1e-17, c[:], []float64{0, 0, 1})
	chk.Scalar(tst, "c.a", 1e-17, c.Dot(a), 0)
	chk.Scalar(tst, "c.b", 1e-17, c.Dot(b), 0)
}

func Test_vec03(tst *testing.T) {

	chk.PrintTitle("Test vec03: Unit normalizes length to 1, zero vector is left alone")

	a := Vec3{3, 4, 0}
	u := a.Unit()
	chk.Scalar(tst, "|u|", 1e-14, u.Norm(), 1)
	if math.Abs(u[0]-0.6) > 1e-14 || math.Abs(u[1]-0.8) > 1e-14 {
		tst.Errorf("unexpected unit vector: %v", u)
	}

	z := Vec3{}
	uz := z.Unit()
	chk.Vector(tst, "unit(0)", 1e-17, uz[:], []float64{0, 0, 0})
}
