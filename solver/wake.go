// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/vortexje/vortexje/body"
	"github.com/vortexje/vortexje/geom"
	"github.com/vortexje/vortexje/panelpool"
)

// teEmissionVelocity returns the vector w of §4.10's trailing-edge
// displacement: the trailing-edge bisector scaled by the apparent
// velocity's magnitude (bisector mode), or the negative apparent
// velocity (default).
func teEmissionVelocity(apparent geom.Vec3, bisector geom.Vec3, followBisector bool) geom.Vec3 {
	if followBisector {
		return bisector.Scale(apparent.Norm())
	}
	return apparent.Scale(-1)
}

// displaceTrailingEdgeStrip moves the newest strip of wake nodes by
// the trailing-edge displacement function of §4.10 step 2, using the
// owning body's node kinematics rather than a cached velocity field.
func (s *Solver) displaceTrailingEdgeStrip(owner *body.Body, ls geom.LiftingSurface, wake geom.Wake, dt float64) {
	nNodes := ls.NumSpanwiseNodes()
	newestStart := wake.NumNodes() - nNodes
	if newestStart < 0 {
		return
	}
	factor := s.Params.WakeEmissionDistanceFactor
	for k := 0; k < nNodes; k++ {
		teNode := ls.TrailingEdgeNode(k)
		apparent := owner.NodeKinematicVelocity(ls, teNode).Sub(s.Freestream)
		bisector := ls.TrailingEdgeBisector(k)
		w := teEmissionVelocity(apparent, bisector, s.Params.WakeEmissionFollowBisector)
		idx := newestStart + k
		wake.SetNodePosition(idx, wake.NodePosition(idx).Add(w.Scale(factor*dt)))
	}
}

// convectWakeBundle implements §4.10's convecting-mode update for one
// lifting-surface bundle.
func (s *Solver) convectWakeBundle(owner *body.Body, ls geom.LiftingSurface, wake geom.Wake, dt float64) {
	nNodes := wake.NumNodes()
	nTE := ls.NumSpanwiseNodes()

	// step 1: sample the full velocity field at every current node,
	// before any node in this step has moved.
	cached := make([]geom.Vec3, nNodes)
	panelpool.For(nNodes, func(i int) {
		cached[i] = s.Velocity(wake.NodePosition(i))
	})

	// step 2: trailing-edge displacement of the newest strip, using
	// the displacement function rather than the cached velocities.
	s.displaceTrailingEdgeStrip(owner, ls, wake, dt)

	// step 3: convect every other node by its cached velocity.
	newestStart := nNodes - nTE
	panelpool.For(nNodes, func(i int) {
		if newestStart >= 0 && i >= newestStart {
			return
		}
		wake.SetNodePosition(i, wake.NodePosition(i).Add(cached[i].Scale(dt)))
	})

	// step 4: refresh geometry and append a fresh empty layer.
	wake.UpdateProperties(dt)
	wake.AddLayer()
}

// repositionStaticWakeBundle implements §4.10's static-mode update for
// one lifting-surface bundle: the newest strip coincides with the
// trailing edge, the preceding strip sits static_wake_length upstream.
func (s *Solver) repositionStaticWakeBundle(owner *body.Body, ls geom.LiftingSurface, wake geom.Wake) {
	nTE := ls.NumSpanwiseNodes()
	nNodes := wake.NumNodes()
	newestStart := nNodes - nTE
	precedingStart := newestStart - nTE
	if newestStart < 0 || precedingStart < 0 {
		return
	}

	apparentDir := owner.Velocity.Sub(s.Freestream).Scale(-1).Unit()
	upstream := apparentDir.Scale(s.Params.StaticWakeLength)

	for k := 0; k < nTE; k++ {
		teNode := ls.TrailingEdgeNode(k)
		x := ls.NodePosition(teNode)
		wake.SetNodePosition(newestStart+k, x)
		wake.SetNodePosition(precedingStart+k, x.Add(upstream))
	}
	wake.ComputeGeometry()
}

// UpdateWakes advances every lifting surface's wake by one step (§4.10).
// It must be called after Solve(dt, true) and the caller's own
// per-step kinematic bookkeeping.
func (s *Solver) UpdateWakes(dt float64) {
	for _, le := range s.liftingList {
		ls := le.bundle.Surface
		wake := le.bundle.Wake
		if s.Params.ConvectWake {
			s.convectWakeBundle(le.owner, ls, wake, dt)
		} else {
			s.repositionStaticWakeBundle(le.owner, ls, wake)
		}
	}
}

// InitializeWakes establishes the two-layer invariant required before
// the first Solve call (§4.10): each wake must already carry one
// trailing-edge-positioned strip (a mesh-construction precondition);
// this performs the equivalent of one static positioning or one
// displacement step on it, then appends the second, currently-empty
// layer.
func (s *Solver) InitializeWakes(dt float64) {
	for _, le := range s.liftingList {
		ls := le.bundle.Surface
		wake := le.bundle.Wake
		if s.Params.ConvectWake {
			s.displaceTrailingEdgeStrip(le.owner, ls, wake, dt)
		} else {
			nTE := ls.NumSpanwiseNodes()
			apparentDir := le.owner.Velocity.Sub(s.Freestream).Scale(-1).Unit()
			upstream := apparentDir.Scale(s.Params.StaticWakeLength)
			for k := 0; k < nTE; k++ {
				wake.SetNodePosition(k, wake.NodePosition(k).Add(upstream))
			}
			wake.ComputeGeometry()
		}
		wake.AddLayer()
	}
}
