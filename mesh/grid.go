// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/vortexje/vortexje/geom"

// Grid is a structured NU x NV quadrilateral panel surface, wrapping
// in the U and/or V directions independently. A sphere wraps only in
// V (longitude); a lifting surface wraps only in U (the closed
// leading-edge/trailing-edge airfoil contour), with the wrap seam
// itself the trailing edge — see LiftingGrid.
type Grid struct {
	PanelMesh

	NU, NV       int
	WrapU, WrapV bool
}

// NewGrid returns a Grid over nodes, a row-major (nodeRows x nodeCols)
// slice sized for the requested panel counts and wrap flags.
func NewGrid(id string, nu, nv int, wrapU, wrapV bool, nodes []geom.Vec3) *Grid {
	g := &Grid{NU: nu, NV: nv, WrapU: wrapU, WrapV: wrapV}
	g.PanelMesh = PanelMesh{
		id:          id,
		numPanels:   nu * nv,
		nodes:       nodes,
		cornerIdx:   g.cornerIdx,
		neighborsFn: g.neighbors,
	}
	return g
}

func (g *Grid) nodeColCount() int {
	if g.WrapV {
		return g.NV
	}
	return g.NV + 1
}

func (g *Grid) nodeIndex(row, col int) int {
	if g.WrapU {
		row = ((row % g.NU) + g.NU) % g.NU
	}
	if g.WrapV {
		col = ((col % g.NV) + g.NV) % g.NV
	}
	return row*g.nodeColCount() + col
}

func (g *Grid) cornerIdx(panel int) [4]int {
	pr, pc := panel/g.NV, panel%g.NV
	return [4]int{
		g.nodeIndex(pr, pc),
		g.nodeIndex(pr, pc+1),
		g.nodeIndex(pr+1, pc+1),
		g.nodeIndex(pr+1, pc),
	}
}

func (g *Grid) validU(pr int) bool { return g.WrapU || (pr >= 0 && pr < g.NU) }
func (g *Grid) validV(pc int) bool { return g.WrapV || (pc >= 0 && pc < g.NV) }

func (g *Grid) wrapRow(pr int) int {
	if g.WrapU {
		return ((pr % g.NU) + g.NU) % g.NU
	}
	return pr
}

func (g *Grid) wrapCol(pc int) int {
	if g.WrapV {
		return ((pc % g.NV) + g.NV) % g.NV
	}
	return pc
}

func (g *Grid) panelAt(pr, pc int) int { return g.wrapRow(pr)*g.NV + g.wrapCol(pc) }

func (g *Grid) neighbors(panel int) (uPrev, uNext, vPrev, vNext int) {
	pr, pc := panel/g.NV, panel%g.NV
	uPrev, uNext, vPrev, vNext = -1, -1, -1, -1
	if g.validU(pr - 1) {
		uPrev = g.panelAt(pr-1, pc)
	}
	if g.validU(pr + 1) {
		uNext = g.panelAt(pr+1, pc)
	}
	if g.validV(pc - 1) {
		vPrev = g.panelAt(pr, pc-1)
	}
	if g.validV(pc + 1) {
		vNext = g.panelAt(pr, pc+1)
	}
	return
}

// LiftingGrid is a Grid that wraps in U around a closed airfoil
// contour: panel row 0 is the upper trailing-edge strip, row NU-1 the
// lower trailing-edge strip, and node row 0 is the trailing-edge node
// row shared by the U-wrap seam.
type LiftingGrid struct {
	*Grid
}

// NewLiftingGrid returns a LiftingGrid wrapping a freshly built Grid
// with WrapU=true, WrapV=false.
func NewLiftingGrid(id string, nu, nv int, nodes []geom.Vec3) *LiftingGrid {
	return &LiftingGrid{Grid: NewGrid(id, nu, nv, true, false, nodes)}
}

func (l *LiftingGrid) NumSpanwisePanels() int { return l.NV }
func (l *LiftingGrid) NumSpanwiseNodes() int  { return l.nodeColCount() }

func (l *LiftingGrid) TrailingEdgeUpperPanel(k int) int { return l.panelAt(0, k) }
func (l *LiftingGrid) TrailingEdgeLowerPanel(k int) int { return l.panelAt(l.NU-1, k) }
func (l *LiftingGrid) TrailingEdgeNode(k int) int       { return l.nodeIndex(0, k) }

// TrailingEdgeBisector returns the unit bisector of the trailing-edge
// wedge at spanwise station k, pointing downstream: the negated sum of
// the unit vectors from the trailing-edge node to its upper and lower
// neighbors along the airfoil contour.
func (l *LiftingGrid) TrailingEdgeBisector(k int) geom.Vec3 {
	te := l.nodes[l.nodeIndex(0, k)]
	upper := l.nodes[l.nodeIndex(1, k)]
	lower := l.nodes[l.nodeIndex(l.NU-1, k)]
	v1 := upper.Sub(te).Unit()
	v2 := lower.Sub(te).Unit()
	return v1.Add(v2).Scale(-1).Unit()
}
