// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/vortexje/vortexje/body"
	"github.com/vortexje/vortexje/boundarylayer"
	"github.com/vortexje/vortexje/geom"
	"github.com/vortexje/vortexje/mesh"
	"github.com/vortexje/vortexje/params"
)

func Test_solve01(tst *testing.T) {

	chk.PrintTitle("Test solve01: no freestream, no body motion, no flow at all")

	sphere := mesh.NewSphere("s", 1.0, 8, 16)
	b := body.New("b", geom.Vec3{})
	b.AddNonLiftingSurface(sphere)

	s := New(params.Default(), 1.0, geom.Vec3{})
	s.AddBody(b)

	ok := s.Solve(0, false)
	if !ok {
		tst.Fatal("Solve should trivially converge with no forcing")
	}

	for i, mu := range s.DoubletCoefficients {
		if mu != 0 {
			tst.Errorf("doublet coefficient %d should be zero, got %g", i, mu)
		}
	}

	f := s.Force(b)
	chk.Vector(tst, "force with no flow", 1e-12, f[:], []float64{0, 0, 0})
}

func Test_solve02(tst *testing.T) {

	chk.PrintTitle("Test solve02: Kutta closure holds to machine precision after Solve")

	wing, wake := mesh.NewWing("w", 2.0, 1.0, 0.08, 6, 4)
	b := body.New("b", geom.Vec3{-1, 0, 0})
	b.AddLiftingSurface(wing, wake, boundarylayer.Null{})

	s := New(params.Default(), 1.0, geom.Vec3{})
	s.AddBody(b)

	s.InitializeWakes(0.1)

	ok := s.Solve(0.1, true)
	if !ok {
		tst.Fatal("Solve failed to converge")
	}

	le := s.liftingList[0]
	nSpan := wing.NumSpanwisePanels()
	tailIndex := wake.NumPanels() - nSpan
	mu := wake.DoubletCoefficients()
	for k := 0; k < nSpan; k++ {
		upper := le.offset + wing.TrailingEdgeUpperPanel(k)
		lower := le.offset + wing.TrailingEdgeLowerPanel(k)
		want := s.DoubletCoefficients[upper] - s.DoubletCoefficients[lower]
		chk.Scalar(tst, "kutta closure", 1e-12, mu[tailIndex+k], want)
	}
}

func Test_force01(tst *testing.T) {

	chk.PrintTitle("Test force01: Force/Moment are idempotent reads of already-computed state")

	sphere := mesh.NewSphere("s", 1.0, 8, 16)
	b := body.New("b", geom.Vec3{2, 0, 0})
	b.AddNonLiftingSurface(sphere)

	s := New(params.Default(), 1.2, geom.Vec3{})
	s.AddBody(b)
	s.Solve(0, false)

	f1 := s.Force(b)
	f2 := s.Force(b)
	chk.Vector(tst, "force repeat", 1e-17, f1[:], f2[:])

	m1 := s.Moment(b, geom.Vec3{})
	m2 := s.Moment(b, geom.Vec3{})
	chk.Vector(tst, "moment repeat", 1e-17, m1[:], m2[:])
}
