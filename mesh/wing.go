// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/vortexje/vortexje/geom"

// NewWing builds a symmetric, biconvex-section rectangular lifting
// surface (span x chord, parabolic thickness distribution peaking at
// mid-chord and vanishing at leading and trailing edge) and its
// seeded trailing wake — the lifting-surface scenarios of §11. The
// planform is always rectangular; elliptic planforms are not built.
// nChord is the number of panels from leading to trailing edge along
// each of the upper and lower surfaces; nSpan the number of spanwise
// panels.
func NewWing(id string, span, chord, thickness float64, nChord, nSpan int) (*LiftingGrid, *Wake) {
	nu := 2 * nChord
	nv := nSpan
	nodeCols := nv + 1
	nodes := make([]geom.Vec3, nu*nodeCols)

	halfSpan := span / 2
	for row := 0; row < nu; row++ {
		xFrac, sign := wingStationFrac(row, nChord)
		thick := 4 * thickness * xFrac * (1 - xFrac)
		x := chord * xFrac
		z := sign * thick / 2
		for col := 0; col < nodeCols; col++ {
			y := -halfSpan + span*float64(col)/float64(nv)
			nodes[row*nodeCols+col] = geom.Vec3{x, y, z}
		}
	}

	wing := NewLiftingGrid(id, nu, nv, nodes)
	wake := NewWake(id+"_wake", wing)
	return wing, wake
}

// wingStationFrac returns the chordwise fraction (0 at the leading
// edge, 1 at the trailing edge) and the surface sign (+1 upper, -1
// lower) of node row row out of a total of 2*nChord rows wrapping
// trailing-edge -> upper -> leading-edge -> lower -> trailing-edge.
func wingStationFrac(row, nChord int) (xFrac, sign float64) {
	if row <= nChord {
		return 1 - float64(row)/float64(nChord), 1
	}
	rr := row - nChord
	return float64(rr) / float64(nChord), -1
}
