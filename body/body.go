// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package body implements the Body aggregate: a kinematic frame with
// its non-lifting surfaces and (lifting surface, wake, boundary layer)
// bundles (§3.4). Bodies exclusively own their surfaces, wakes and
// boundary layers for their lifetime; the solver only ever holds
// non-owning references into a Body (§5, §9 "Ownership").
package body

import (
	"github.com/vortexje/vortexje/boundarylayer"
	"github.com/vortexje/vortexje/geom"
)

// LiftingSurfaceBundle groups a lifting surface with its wake and
// (possibly null) boundary layer, the unit the solver iterates over
// when wiring the Kutta condition and the boundary-layer coupling.
type LiftingSurfaceBundle struct {
	Surface       geom.LiftingSurface
	Wake          geom.Wake
	BoundaryLayer boundarylayer.BoundaryLayer
}

// Body is a kinematic frame owning a list of non-lifting surfaces and
// a list of lifting-surface bundles.
type Body struct {
	ID string

	// Velocity is the body's linear (translational) velocity, used as
	// v_body in §4.2, §4.8, §4.10.
	Velocity geom.Vec3

	// PanelKinematicVelocity and NodeKinematicVelocity return the
	// instantaneous velocity of a panel's collocation point / a node,
	// accounting for rotation as well as translation; callers (the
	// solver) never need to know the rotational state itself.
	PanelKinematicVelocity func(surface geom.Surface, i int) geom.Vec3
	NodeKinematicVelocity  func(surface geom.Surface, nodeIndex int) geom.Vec3

	NonLiftingSurfaces []geom.Surface
	LiftingSurfaces    []LiftingSurfaceBundle
}

// New returns a Body with the given id and a velocity function that is
// simply constant translation (no rotation) — the common case for the
// sphere and static-wing scenarios of §11. Rotating bodies (the
// vertical-axis-turbine scenario) construct Body directly and set
// PanelKinematicVelocity/NodeKinematicVelocity themselves.
func New(id string, velocity geom.Vec3) *Body {
	b := &Body{ID: id, Velocity: velocity}
	b.PanelKinematicVelocity = func(surface geom.Surface, i int) geom.Vec3 { return velocity }
	b.NodeKinematicVelocity = func(surface geom.Surface, nodeIndex int) geom.Vec3 { return velocity }
	return b
}

// AddNonLiftingSurface appends a non-lifting surface to the body.
func (b *Body) AddNonLiftingSurface(s geom.Surface) {
	b.NonLiftingSurfaces = append(b.NonLiftingSurfaces, s)
}

// AddLiftingSurface appends a lifting-surface bundle to the body. bl
// may be nil, in which case boundarylayer.Null{} is substituted.
func (b *Body) AddLiftingSurface(s geom.LiftingSurface, w geom.Wake, bl boundarylayer.BoundaryLayer) {
	if bl == nil {
		bl = boundarylayer.Null{}
	}
	b.LiftingSurfaces = append(b.LiftingSurfaces, LiftingSurfaceBundle{Surface: s, Wake: w, BoundaryLayer: bl})
}

// Surfaces returns every non-wake surface owned by the body, in the
// order the solver must register them: non-lifting surfaces first,
// then lifting surfaces (§3 "Invariants").
func (b *Body) Surfaces() []geom.Surface {
	out := make([]geom.Surface, 0, len(b.NonLiftingSurfaces)+len(b.LiftingSurfaces))
	out = append(out, b.NonLiftingSurfaces...)
	for _, ls := range b.LiftingSurfaces {
		out = append(out, ls.Surface)
	}
	return out
}
