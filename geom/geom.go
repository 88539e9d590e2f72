// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom defines the geometry capability required from meshes:
// Surface, LiftingSurface and Wake. These are read-only (or, for Wake,
// node-mutable) facades over a panel mesh; their elementary influence
// integrals and panel properties are treated as external collaborators
// to the solver (§1, §6) — this package never performs a linear solve.
package geom

import "math"

// Vec3 is a plain 3-component vector. The package deliberately avoids
// a heavier geometry type: every operation the solver needs is either
// component-wise arithmetic or a dot/cross product, both cheap to
// spell out inline at call sites (mirrors gofem's plain []float64
// coordinate slices in fem/element.go's BuildCoordsMatrix).
type Vec3 [3]float64

// Dot returns the dot product a·b.
func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the cross product a×b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

// Scale returns s*a.
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a[0] * s, a[1] * s, a[2] * s} }

// Norm returns the Euclidean length of a.
func (a Vec3) Norm() float64 { return math.Sqrt(a.Dot(a)) }

// Unit returns a normalized to unit length; the zero vector maps to
// itself rather than dividing by zero.
func (a Vec3) Unit() Vec3 {
	n := a.Norm()
	if n == 0 {
		return a
	}
	return a.Scale(1 / n)
}

// Surface is the geometry capability a non-lifting body surface must
// provide (§6). Panels are addressed by a zero-based index in
// [0, NumPanels()).
type Surface interface {
	// ID returns a stable identity for this surface, unique within a
	// solver instance. Used as the key of Solver's offset table.
	ID() string

	NumPanels() int
	NumNodes() int

	// NodePosition returns the position of node i, i in [0, NumNodes()).
	NodePosition(i int) Vec3

	// PanelNormal returns the outward unit normal of panel i.
	PanelNormal(i int) Vec3

	// PanelSurfaceArea returns the area of panel i.
	PanelSurfaceArea(i int) float64

	// PanelCollocationPoint returns the collocation point of panel i;
	// above selects the variant offset slightly outward along the
	// normal, used to evaluate fields just off the surface.
	PanelCollocationPoint(i int, above bool) Vec3

	// PanelNodes returns the node indices bounding panel i, in winding
	// order, used only by logio's output dump (§4.12) to build the
	// polygon connectivity; never consulted by the solver itself.
	PanelNodes(i int) []int

	// SourceAndDoubletInfluence returns the source and doublet
	// potential-influence coefficients that panel j induces at the
	// collocation point of panel i of observerSurface (§4.3).
	SourceAndDoubletInfluence(observerSurface Surface, i, j int) (sourceInfl, doubletInfl float64)

	// SourceAndDoubletInfluenceAt returns the same pair of influence
	// coefficients evaluated at an arbitrary point x rather than at
	// another panel's collocation point (§4.11).
	SourceAndDoubletInfluenceAt(x Vec3, j int) (sourceInfl, doubletInfl float64)

	// SourceUnitVelocity returns the velocity induced at x by a unit
	// source on panel j.
	SourceUnitVelocity(x Vec3, j int) Vec3

	// VortexRingUnitVelocity returns the velocity induced at x by a
	// unit-strength vortex ring on panel j (i.e. the doublet panel
	// expressed as its equivalent edge vortex ring).
	VortexRingUnitVelocity(x Vec3, j int) Vec3

	// VortexRingUnitVelocityAt returns the velocity that a unit vortex
	// ring on panel j of this surface induces at the collocation point
	// of panel i of observerSurface — the form §4.2 uses to fold wake
	// influence into the source term.
	VortexRingUnitVelocityAt(observerSurface Surface, i, j int) Vec3

	// ScalarFieldGradient returns the tangential gradient, at panel,
	// of the per-panel scalar field coeffs (offset by offset into the
	// global vector), the sole geometric operator the solver uses to
	// turn a doublet distribution into a surface velocity (§4.6).
	ScalarFieldGradient(coeffs []float64, offset, panel int) Vec3
}

// LiftingSurface is a Surface with spanwise topology (§3).
type LiftingSurface interface {
	Surface

	NumSpanwisePanels() int
	NumSpanwiseNodes() int

	// TrailingEdgeUpperPanel and TrailingEdgeLowerPanel return the
	// panel index of the upper/lower panel adjacent to spanwise
	// station k in [0, NumSpanwisePanels()).
	TrailingEdgeUpperPanel(k int) int
	TrailingEdgeLowerPanel(k int) int

	// TrailingEdgeNode returns the node index at spanwise station k in
	// [0, NumSpanwiseNodes()).
	TrailingEdgeNode(k int) int

	// TrailingEdgeBisector returns the unit bisector of the trailing
	// edge at station k, used for wake emission (§4.10).
	TrailingEdgeBisector(k int) Vec3
}

// Wake is a Surface extended with an appendable panel strip and a
// dense doublet-coefficient vector parallel to the panel index (§3).
type Wake interface {
	Surface

	// DoubletCoefficients returns the dense per-panel doublet strength
	// vector, writable in place by the solver's Kutta closure (§4.5).
	DoubletCoefficients() []float64

	// AddLayer appends a fresh spanwise strip of panels positioned at
	// the current trailing edge, with zero doublet strength; its node
	// count equals the owning lifting surface's NumSpanwiseNodes().
	// Before the first AddLayer/InitializeWakes call, a wake must
	// already carry one such strip (placed by the mesh-construction
	// code that built it), so that InitializeWakes only needs to add
	// one more to reach the two-layer invariant of §3/§4.10.
	AddLayer()

	// SetNodePosition writes node i's position, used by the solver's
	// convection/static-repositioning logic (§4.10). Node indices
	// follow the same layer-major order as AddLayer appends them;
	// NodePosition (from Surface) reads the same buffer.
	SetNodePosition(i int, x Vec3)

	// UpdateProperties lets the wake recompute any internal geometric
	// cache (panel normals/areas/collocation points) after its nodes
	// have moved; ComputeGeometry is its static-mode counterpart used
	// after an outright node reset.
	UpdateProperties(dt float64)
	ComputeGeometry()
}
