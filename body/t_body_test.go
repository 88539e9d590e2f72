// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/vortexje/vortexje/boundarylayer"
	"github.com/vortexje/vortexje/geom"
)

// stubSurface is the minimal geom.Surface needed to exercise Body's
// bookkeeping; its influence/velocity methods are never called here.
type stubSurface struct{ id string }

func (s stubSurface) ID() string                               { return s.id }
func (s stubSurface) NumPanels() int                            { return 1 }
func (s stubSurface) NumNodes() int                             { return 1 }
func (s stubSurface) NodePosition(i int) geom.Vec3              { return geom.Vec3{} }
func (s stubSurface) PanelNormal(i int) geom.Vec3               { return geom.Vec3{0, 0, 1} }
func (s stubSurface) PanelSurfaceArea(i int) float64            { return 1 }
func (s stubSurface) PanelCollocationPoint(i int, above bool) geom.Vec3 { return geom.Vec3{} }
func (s stubSurface) SourceAndDoubletInfluence(o geom.Surface, i, j int) (float64, float64) {
	return 0, 0
}
func (s stubSurface) SourceAndDoubletInfluenceAt(x geom.Vec3, j int) (float64, float64) { return 0, 0 }
func (s stubSurface) SourceUnitVelocity(x geom.Vec3, j int) geom.Vec3                   { return geom.Vec3{} }
func (s stubSurface) VortexRingUnitVelocity(x geom.Vec3, j int) geom.Vec3               { return geom.Vec3{} }
func (s stubSurface) VortexRingUnitVelocityAt(o geom.Surface, i, j int) geom.Vec3       { return geom.Vec3{} }
func (s stubSurface) PanelNodes(i int) []int                                           { return []int{0, 0, 0, 0} }
func (s stubSurface) ScalarFieldGradient(coeffs []float64, offset, panel int) geom.Vec3 {
	return geom.Vec3{}
}

type stubLifting struct{ stubSurface }

func (s stubLifting) NumSpanwisePanels() int            { return 1 }
func (s stubLifting) NumSpanwiseNodes() int             { return 1 }
func (s stubLifting) TrailingEdgeUpperPanel(k int) int  { return 0 }
func (s stubLifting) TrailingEdgeLowerPanel(k int) int  { return 0 }
func (s stubLifting) TrailingEdgeNode(k int) int        { return 0 }
func (s stubLifting) TrailingEdgeBisector(k int) geom.Vec3 { return geom.Vec3{1, 0, 0} }

type stubWake struct{ stubSurface }

func (s stubWake) DoubletCoefficients() []float64      { return nil }
func (s stubWake) AddLayer()                           {}
func (s stubWake) SetNodePosition(i int, x geom.Vec3)  {}
func (s stubWake) UpdateProperties(dt float64)         {}
func (s stubWake) ComputeGeometry()                    {}

func Test_body01(tst *testing.T) {

	chk.PrintTitle("Test body01: New gives constant-translation kinematics")

	v := geom.Vec3{1, 2, 3}
	b := New("b1", v)

	vp := b.PanelKinematicVelocity(stubSurface{"s"}, 0)
	vn := b.NodeKinematicVelocity(stubSurface{"s"}, 0)
	chk.Vector(tst, "panel kinematic velocity", 1e-17, vp[:], v[:])
	chk.Vector(tst, "node kinematic velocity", 1e-17, vn[:], v[:])
}

func Test_body02(tst *testing.T) {

	chk.PrintTitle("Test body02: Surfaces lists non-lifting then lifting, nil boundary layer becomes Null")

	b := New("b1", geom.Vec3{})
	b.AddNonLiftingSurface(stubSurface{"hull"})
	b.AddLiftingSurface(stubLifting{stubSurface{"wing"}}, stubWake{stubSurface{"wake"}}, nil)

	surfs := b.Surfaces()
	if len(surfs) != 2 {
		tst.Fatalf("expected 2 surfaces, got %d", len(surfs))
	}
	if surfs[0].ID() != "hull" || surfs[1].ID() != "wing" {
		tst.Errorf("expected order [hull, wing], got [%s, %s]", surfs[0].ID(), surfs[1].ID())
	}

	bl := b.LiftingSurfaces[0].BoundaryLayer
	if _, ok := bl.(boundarylayer.Null); !ok {
		tst.Errorf("expected a nil boundary layer to become boundarylayer.Null, got %T", bl)
	}
}
