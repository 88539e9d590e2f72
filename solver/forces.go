// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/vortexje/vortexje/body"
	"github.com/vortexje/vortexje/boundarylayer"
	"github.com/vortexje/vortexje/geom"
)

// dynamicPressure returns q = ½ρV_ref² for b, where V_ref is b's
// apparent velocity relative to the freestream (§4.11, matching the
// reference velocity pressure.go uses for Cp itself).
func (s *Solver) dynamicPressure(b *body.Body) float64 {
	v := b.Velocity.Sub(s.Freestream)
	return 0.5 * s.FluidDensity * v.Dot(v)
}

// Force returns the net aerodynamic force on b: the pressure
// integral plus any boundary-layer friction contribution, over every
// surface b owns (§4.11). Calling Force twice with no intervening
// solve or mutation returns identical results, since it only reads
// already-computed per-panel state.
func (s *Solver) Force(b *body.Body) geom.Vec3 {
	q := s.dynamicPressure(b)

	var total geom.Vec3
	for _, surf := range b.NonLiftingSurfaces {
		total = total.Add(s.surfacePressureForce(surf, q))
	}
	for i := range b.LiftingSurfaces {
		ls := &b.LiftingSurfaces[i]
		total = total.Add(s.surfacePressureForce(ls.Surface, q))
		total = total.Add(s.surfaceFrictionForce(ls.Surface, ls.BoundaryLayer))
	}
	return total
}

// Moment returns the net aerodynamic moment on b about point x0
// (§4.11): Σ (x_i - x0) × F_i, summed panel by panel so that it is not
// simply r_centroid × Force(b).
func (s *Solver) Moment(b *body.Body, x0 geom.Vec3) geom.Vec3 {
	q := s.dynamicPressure(b)

	var total geom.Vec3
	for _, surf := range b.NonLiftingSurfaces {
		total = total.Add(s.surfacePressureMoment(surf, q, x0))
	}
	for i := range b.LiftingSurfaces {
		ls := &b.LiftingSurfaces[i]
		total = total.Add(s.surfacePressureMoment(ls.Surface, q, x0))
		total = total.Add(s.surfaceFrictionMoment(ls.Surface, ls.BoundaryLayer, x0))
	}
	return total
}

func (s *Solver) surfacePressureForce(surf geom.Surface, q float64) geom.Vec3 {
	off := s.surfaceOffset[surf.ID()]
	var f geom.Vec3
	for i := 0; i < surf.NumPanels(); i++ {
		cp := s.PressureCoefficients[off+i]
		n := surf.PanelNormal(i)
		a := surf.PanelSurfaceArea(i)
		f = f.Add(n.Scale(-q * cp * a))
	}
	return f
}

func (s *Solver) surfaceFrictionForce(surf geom.Surface, bl boundarylayer.BoundaryLayer) geom.Vec3 {
	var f geom.Vec3
	for i := 0; i < surf.NumPanels(); i++ {
		fr := bl.Friction(i)
		f = f.Add(geom.Vec3(fr))
	}
	return f
}

func (s *Solver) surfacePressureMoment(surf geom.Surface, q float64, x0 geom.Vec3) geom.Vec3 {
	off := s.surfaceOffset[surf.ID()]
	var m geom.Vec3
	for i := 0; i < surf.NumPanels(); i++ {
		cp := s.PressureCoefficients[off+i]
		n := surf.PanelNormal(i)
		a := surf.PanelSurfaceArea(i)
		panelForce := n.Scale(-q * cp * a)
		r := surf.PanelCollocationPoint(i, false).Sub(x0)
		m = m.Add(r.Cross(panelForce))
	}
	return m
}

func (s *Solver) surfaceFrictionMoment(surf geom.Surface, bl boundarylayer.BoundaryLayer, x0 geom.Vec3) geom.Vec3 {
	var m geom.Vec3
	for i := 0; i < surf.NumPanels(); i++ {
		fr := geom.Vec3(bl.Friction(i))
		r := surf.PanelCollocationPoint(i, false).Sub(x0)
		m = m.Add(r.Cross(fr))
	}
	return m
}
