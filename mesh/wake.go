// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/vortexje/vortexje/geom"

// Wake is an open, appendable panel strip trailing a LiftingGrid: node
// rows are appended at the end as the simulation steps, so the
// highest-indexed row is always the newest, nearest the trailing edge
// (matching solver's assumption that its most recent AddLayer call
// produced the last NumSpanwiseNodes() nodes and NumSpanwisePanels()
// panels).
type Wake struct {
	PanelMesh

	source      *LiftingGrid
	nSpanPanels int
	nSpanNodes  int
	mu          []float64
}

// NewWake returns a Wake shed from source, seeded with the one
// trailing-edge-positioned node row required before the first AddLayer
// call (geom.Wake.AddLayer's precondition).
func NewWake(id string, source *LiftingGrid) *Wake {
	w := &Wake{source: source, nSpanPanels: source.NumSpanwisePanels(), nSpanNodes: source.NumSpanwiseNodes()}
	w.PanelMesh = PanelMesh{
		id:          id,
		cornerIdx:   w.cornerIdx,
		neighborsFn: w.neighbors,
	}
	w.appendTrailingEdgeRow()
	return w
}

func (w *Wake) rows() int {
	if w.nSpanNodes == 0 {
		return 0
	}
	return len(w.nodes) / w.nSpanNodes
}

func (w *Wake) panelRows() int {
	if r := w.rows(); r > 0 {
		return r - 1
	}
	return 0
}

func (w *Wake) appendTrailingEdgeRow() {
	for k := 0; k < w.nSpanNodes; k++ {
		w.nodes = append(w.nodes, w.source.NodePosition(w.source.TrailingEdgeNode(k)))
	}
	w.numPanels = w.panelRows() * w.nSpanPanels
}

func (w *Wake) cornerIdx(panel int) [4]int {
	pr, pc := panel/w.nSpanPanels, panel%w.nSpanPanels
	row0, row1 := pr*w.nSpanNodes, (pr+1)*w.nSpanNodes
	return [4]int{row0 + pc, row0 + pc + 1, row1 + pc + 1, row1 + pc}
}

func (w *Wake) neighbors(panel int) (uPrev, uNext, vPrev, vNext int) {
	pr, pc := panel/w.nSpanPanels, panel%w.nSpanPanels
	uPrev, uNext, vPrev, vNext = -1, -1, -1, -1
	if pr-1 >= 0 {
		uPrev = (pr-1)*w.nSpanPanels + pc
	}
	if pr+1 < w.panelRows() {
		uNext = (pr+1)*w.nSpanPanels + pc
	}
	if pc-1 >= 0 {
		vPrev = pr*w.nSpanPanels + pc - 1
	}
	if pc+1 < w.nSpanPanels {
		vNext = pr*w.nSpanPanels + pc + 1
	}
	return
}

func (w *Wake) DoubletCoefficients() []float64 { return w.mu }

// AddLayer appends a fresh, zero-strength spanwise strip positioned at
// the lifting surface's current trailing edge.
func (w *Wake) AddLayer() {
	w.appendTrailingEdgeRow()
	for i := 0; i < w.nSpanPanels; i++ {
		w.mu = append(w.mu, 0)
	}
}

func (w *Wake) SetNodePosition(i int, x geom.Vec3) { w.nodes[i] = x }

// UpdateProperties and ComputeGeometry are no-ops: PanelMesh derives
// every panel's geometry from current node positions on demand rather
// than caching it, so there is nothing to refresh.
func (w *Wake) UpdateProperties(dt float64) {}
func (w *Wake) ComputeGeometry()            {}
