// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/vortexje/vortexje/geom"
)

// PanelMesh implements geom.Surface over an arbitrary quadrilateral
// panel set: the owning type supplies node storage and panel-to-node
// connectivity (cornerIdx) plus grid adjacency (neighborsFn, used only
// by ScalarFieldGradient); everything else — influence coefficients,
// collocation points, the tangential-gradient finite difference — is
// generic over those two callbacks. Grid and Wake both embed one.
type PanelMesh struct {
	id        string
	numPanels int
	nodes     []geom.Vec3

	cornerIdx   func(panel int) [4]int
	neighborsFn func(panel int) (uPrev, uNext, vPrev, vNext int)
}

func (m *PanelMesh) ID() string    { return m.id }
func (m *PanelMesh) NumPanels() int { return m.numPanels }
func (m *PanelMesh) NumNodes() int  { return len(m.nodes) }

func (m *PanelMesh) NodePosition(i int) geom.Vec3 { return m.nodes[i] }

func (m *PanelMesh) PanelNodes(i int) []int {
	idx := m.cornerIdx(i)
	return []int{idx[0], idx[1], idx[2], idx[3]}
}

func (m *PanelMesh) corners(i int) [4]geom.Vec3 {
	idx := m.cornerIdx(i)
	return [4]geom.Vec3{m.nodes[idx[0]], m.nodes[idx[1]], m.nodes[idx[2]], m.nodes[idx[3]]}
}

func (m *PanelMesh) geometry(i int) (centroid, normal geom.Vec3, area float64) {
	return quadGeometry(m.corners(i))
}

func (m *PanelMesh) PanelNormal(i int) geom.Vec3 {
	_, n, _ := m.geometry(i)
	return n
}

func (m *PanelMesh) PanelSurfaceArea(i int) float64 {
	_, _, a := m.geometry(i)
	return a
}

// PanelCollocationPoint returns panel i's centroid; above offsets it a
// small fraction of the panel's own length scale outward along the
// normal, used to evaluate fields just off the surface (the Marcov
// surface-velocity formula).
func (m *PanelMesh) PanelCollocationPoint(i int, above bool) geom.Vec3 {
	c, n, a := m.geometry(i)
	if !above {
		return c
	}
	eps := 1e-3 * math.Sqrt(a)
	return c.Add(n.Scale(eps))
}

func (m *PanelMesh) SourceAndDoubletInfluence(observerSurface geom.Surface, i, j int) (sourceInfl, doubletInfl float64) {
	if observerSurface.ID() == m.id && i == j {
		_, _, a := m.geometry(j)
		return selfSourceInfluence(a), selfDoubletInfluence
	}
	x := observerSurface.PanelCollocationPoint(i, false)
	return m.SourceAndDoubletInfluenceAt(x, j)
}

func (m *PanelMesh) SourceAndDoubletInfluenceAt(x geom.Vec3, j int) (sourceInfl, doubletInfl float64) {
	return quadSourceDoubletAt(x, m.corners(j))
}

func (m *PanelMesh) SourceUnitVelocity(x geom.Vec3, j int) geom.Vec3 {
	return quadSourceUnitVelocity(x, m.corners(j))
}

func (m *PanelMesh) VortexRingUnitVelocity(x geom.Vec3, j int) geom.Vec3 {
	return quadVortexRingUnitVelocity(x, m.corners(j))
}

func (m *PanelMesh) VortexRingUnitVelocityAt(observerSurface geom.Surface, i, j int) geom.Vec3 {
	x := observerSurface.PanelCollocationPoint(i, false)
	return m.VortexRingUnitVelocity(x, j)
}

// ScalarFieldGradient estimates the tangential gradient of coeffs at
// panel via a central (or one-sided, at an open boundary) difference
// along each of the mesh's two grid directions, each projected into
// the panel's tangent plane.
func (m *PanelMesh) ScalarFieldGradient(coeffs []float64, offset, panel int) geom.Vec3 {
	_, normal, _ := m.geometry(panel)
	uPrev, uNext, vPrev, vNext := m.neighborsFn(panel)
	gU := m.directionalGradient(coeffs, offset, panel, uPrev, uNext, normal)
	gV := m.directionalGradient(coeffs, offset, panel, vPrev, vNext, normal)
	return gU.Add(gV)
}

func (m *PanelMesh) directionalGradient(coeffs []float64, offset, panel, prev, next int, normal geom.Vec3) geom.Vec3 {
	selfC, _, _ := m.geometry(panel)
	selfVal := coeffs[offset+panel]

	switch {
	case prev >= 0 && next >= 0:
		prevC, _, _ := m.geometry(prev)
		nextC, _, _ := m.geometry(next)
		d := nextC.Sub(prevC)
		dist := d.Norm()
		if dist == 0 {
			return geom.Vec3{}
		}
		return tangentialUnit(d, normal).Scale((coeffs[offset+next] - coeffs[offset+prev]) / dist)
	case next >= 0:
		nextC, _, _ := m.geometry(next)
		d := nextC.Sub(selfC)
		dist := d.Norm()
		if dist == 0 {
			return geom.Vec3{}
		}
		return tangentialUnit(d, normal).Scale((coeffs[offset+next] - selfVal) / dist)
	case prev >= 0:
		prevC, _, _ := m.geometry(prev)
		d := selfC.Sub(prevC)
		dist := d.Norm()
		if dist == 0 {
			return geom.Vec3{}
		}
		return tangentialUnit(d, normal).Scale((selfVal - coeffs[offset+prev]) / dist)
	default:
		return geom.Vec3{}
	}
}
