// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// vortexje-wing time-marches a rectangular lifting surface translating
// through still air while pitching sinusoidally about its quarter-chord
// (§11 scenarios 2/3/4): a free-convecting wake, the Kutta condition,
// and unsteady pressure/force history over several steps, including the
// unsteady oscillating-airfoil case.
package main

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/vortexje/vortexje/body"
	"github.com/vortexje/vortexje/geom"
	"github.com/vortexje/vortexje/logio"
	"github.com/vortexje/vortexje/mesh"
	"github.com/vortexje/vortexje/params"
	"github.com/vortexje/vortexje/solver"
)

// pitchOscillation implements fun.Func for the sinusoidal pitch angle
// α(t) = amp·sin(omega·t) of the unsteady oscillating-airfoil scenario
// (spec.md §8 scenario 4), the way inp.Stage.Control.DtFunc uses the
// same interface for a time-varying scalar read off a .sim stage.
type pitchOscillation struct {
	Amp   float64 // pitch amplitude, radians
	Omega float64 // angular frequency, rad/s
}

func (p pitchOscillation) F(t float64, x []float64) float64 { return p.Amp * math.Sin(p.Omega*t) }

func (p pitchOscillation) G(t float64, x []float64) float64 {
	return p.Amp * p.Omega * math.Cos(p.Omega*t)
}

func (p pitchOscillation) H(t float64, x []float64) float64 {
	return -p.Amp * p.Omega * p.Omega * math.Sin(p.Omega*t)
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nvortexje-wing -- translating, pitching rectangular wing\n\n")

	span, chord, thickness := 4.0, 1.0, 0.08
	translation := geom.Vec3{10, 0, 0}
	pivot := geom.Vec3{chord / 4, 0, 0} // quarter-chord pitch axis
	fluidDensity := 1.225
	dt := 0.01
	nSteps := 40

	var pitch fun.Func = pitchOscillation{Amp: 0.05, Omega: 6.0}

	p := params.Default()
	s := solver.New(p, fluidDensity, geom.Vec3{})

	wing, wake := mesh.NewWing("wing", span, chord, thickness, 8, 16)

	b := &body.Body{ID: "wing-body", Velocity: translation}

	var t float64
	b.PanelKinematicVelocity = func(surface geom.Surface, i int) geom.Vec3 {
		r := surface.PanelCollocationPoint(i, false).Sub(pivot)
		omega := geom.Vec3{0, pitch.G(t, nil), 0}
		return translation.Add(omega.Cross(r))
	}
	b.NodeKinematicVelocity = func(surface geom.Surface, nodeIndex int) geom.Vec3 {
		r := surface.NodePosition(nodeIndex).Sub(pivot)
		omega := geom.Vec3{0, pitch.G(t, nil), 0}
		return translation.Add(omega.Cross(r))
	}

	b.AddLiftingSurface(wing, wake, nil)
	s.AddBody(b)

	s.InitializeWakes(dt)

	w := logio.New("out/vortexje-wing")
	for step := 0; step < nSteps; step++ {
		t = float64(step) * dt
		if !s.Solve(dt, true) {
			chk.Panic("solve did not converge at step %d", step)
		}
		s.UpdateWakes(dt)

		force := s.Force(b)
		io.Pf("step %3d: t=%.3f alpha=%.4f force = %v\n", step, t, pitch.F(t, nil), force)

		if err := s.WriteStep(w, step); err != nil {
			chk.Panic("%v", err)
		}
	}
}
