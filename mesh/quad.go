// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh provides concrete geom.Surface/LiftingSurface/Wake
// implementations over structured quadrilateral panel grids: a closed
// grid (sphere-like bodies, wrapping in one or both directions) and an
// open, appendable strip (the trailing wake). The panel math here is
// the constant-strength point-singularity model of classical panel
// methods (Katz & Plotkin, "Low-Speed Aerodynamics"): each panel's
// source/doublet influence collapses to a point singularity at its
// centroid, regularized at the panel itself, while the doublet-as-
// vortex-ring velocity (needed for wake roll-up and the Kutta-column
// terms) is evaluated exactly via Biot-Savart over the panel's edges.
package mesh

import (
	"math"

	"github.com/vortexje/vortexje/geom"
)

// quadGeometry returns the centroid, unit normal and area of a planar
// (or near-planar) quadrilateral given by its four corners in winding
// order, splitting it into two triangles sharing the first corner.
func quadGeometry(c [4]geom.Vec3) (centroid, normal geom.Vec3, area float64) {
	centroid = c[0].Add(c[1]).Add(c[2]).Add(c[3]).Scale(0.25)
	n1 := c[1].Sub(c[0]).Cross(c[2].Sub(c[0]))
	n2 := c[2].Sub(c[0]).Cross(c[3].Sub(c[0]))
	area = 0.5 * (n1.Norm() + n2.Norm())
	normal = n1.Add(n2).Unit()
	return
}

// selfDoubletInfluence is the diagonal entry of the doublet influence
// matrix: the solid angle a flat panel subtends at its own centroid is
// 2π, giving a coefficient of -1/2 (the standard Morino self-influence
// constant).
const selfDoubletInfluence = -0.5

// selfSourceInfluence regularizes the point-source self term at a
// length scale set by the panel's own size, avoiding the 1/r
// singularity of the point-singularity model evaluated at r=0.
func selfSourceInfluence(area float64) float64 {
	return -math.Sqrt(area) / 2
}

// nearSelf reports whether x is close enough to a panel of the given
// area that the regularized self-influence constants should be used
// in place of the point-singularity formulas.
func nearSelf(d, area float64) bool {
	return d < 1e-6*math.Sqrt(area)
}

// quadSourceDoubletAt returns the potential-influence coefficients a
// unit source and unit doublet on the panel with corners c induce at
// x.
func quadSourceDoubletAt(x geom.Vec3, c [4]geom.Vec3) (sourceInfl, doubletInfl float64) {
	centroid, normal, area := quadGeometry(c)
	r := x.Sub(centroid)
	d := r.Norm()
	if nearSelf(d, area) {
		return selfSourceInfluence(area), selfDoubletInfluence
	}
	sourceInfl = -area / (4 * math.Pi * d)
	doubletInfl = area / (4 * math.Pi) * r.Dot(normal) / (d * d * d)
	return
}

// quadSourceUnitVelocity returns the velocity a unit point source
// collapsed onto the panel with corners c induces at x.
func quadSourceUnitVelocity(x geom.Vec3, c [4]geom.Vec3) geom.Vec3 {
	centroid, _, area := quadGeometry(c)
	r := x.Sub(centroid)
	d := r.Norm()
	if nearSelf(d, area) {
		return geom.Vec3{}
	}
	return r.Scale(area / (4 * math.Pi * d * d * d))
}

// vortexSegmentVelocity returns the velocity a straight vortex
// filament from p1 to p2, of unit circulation, induces at x (the
// classical finite-length Biot-Savart result).
func vortexSegmentVelocity(x, p1, p2 geom.Vec3) geom.Vec3 {
	r1 := x.Sub(p1)
	r2 := x.Sub(p2)
	r0 := p2.Sub(p1)

	cross := r1.Cross(r2)
	crossSq := cross.Dot(cross)
	n1, n2 := r1.Norm(), r2.Norm()
	if crossSq < 1e-12 || n1 < 1e-9 || n2 < 1e-9 {
		return geom.Vec3{}
	}

	k := r0.Dot(r1.Scale(1/n1).Sub(r2.Scale(1/n2))) / (4 * math.Pi * crossSq)
	return cross.Scale(k)
}

// quadVortexRingUnitVelocity returns the velocity a unit-strength
// vortex ring running around the panel's four edges induces at x —
// the doublet panel expressed as its equivalent edge singularity.
func quadVortexRingUnitVelocity(x geom.Vec3, c [4]geom.Vec3) geom.Vec3 {
	var v geom.Vec3
	for k := 0; k < 4; k++ {
		v = v.Add(vortexSegmentVelocity(x, c[k], c[(k+1)%4]))
	}
	return v
}

// tangentialUnit projects d onto the plane with the given unit normal
// and normalizes the result.
func tangentialUnit(d, normal geom.Vec3) geom.Vec3 {
	t := d.Sub(normal.Scale(d.Dot(normal)))
	return t.Unit()
}
