// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// vortexje-sphere drives a single steady solve of a sphere in uniform
// flow (§11 scenario 1): one non-lifting body, no wake, no boundary
// layer — the simplest end-to-end exercise of the solver.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/vortexje/vortexje/body"
	"github.com/vortexje/vortexje/geom"
	"github.com/vortexje/vortexje/logio"
	"github.com/vortexje/vortexje/mesh"
	"github.com/vortexje/vortexje/params"
	"github.com/vortexje/vortexje/solver"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nvortexje-sphere -- sphere in uniform flow\n\n")

	radius := 1.0
	freestream := geom.Vec3{-1, 0, 0}
	fluidDensity := 1.225

	p := params.Default()
	s := solver.New(p, fluidDensity, freestream)

	sphere := mesh.NewSphere("sphere", radius, 16, 32)
	b := body.New("sphere-body", geom.Vec3{})
	b.AddNonLiftingSurface(sphere)
	s.AddBody(b)

	ok := s.Solve(1.0, false)
	if !ok {
		chk.Panic("solve did not converge")
	}

	force := s.Force(b)
	io.Pf("force on sphere = %v\n", force)

	w := logio.New("out/vortexje-sphere")
	if err := s.WriteStep(w, 0); err != nil {
		chk.Panic("%v", err)
	}
}
