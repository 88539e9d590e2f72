// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gosl/la"
	"github.com/vortexje/vortexje/body"
	"github.com/vortexje/vortexje/geom"
	"github.com/vortexje/vortexje/panelpool"
)

// computeSourceCoefficients fills s.SourceCoefficients for every
// registered panel (§4.2). includeWakeInfluence distinguishes the
// inviscid-solve RHS (true) from the post-solve recomputation used for
// pressure (false).
func (s *Solver) computeSourceCoefficients(includeWakeInfluence bool) {
	for _, surf := range s.surfaces {
		surf := surf
		off := s.surfaceOffset[surf.ID()]
		owner := s.surfaceOwner[surf.ID()]
		panelpool.For(surf.NumPanels(), func(i int) {
			s.SourceCoefficients[off+i] = s.sourceCoefficient(owner, surf, i, includeWakeInfluence)
		})
	}
}

// sourceCoefficient implements §4.2 for a single panel.
func (s *Solver) sourceCoefficient(owner *body.Body, surf geom.Surface, i int, includeWakeInfluence bool) float64 {
	u := s.apparentPanelVelocity(owner, surf, i)

	if s.Params.ConvectWake && includeWakeInfluence {
		for _, le := range s.liftingList {
			wake := le.bundle.Wake
			nPanels := wake.NumPanels()
			spanwise := le.bundle.Surface.NumSpanwisePanels()
			// all but the latest strip: the last spanwise panels
			// belong to the newest, not-yet-frozen strip.
			frozen := nPanels - spanwise
			if frozen <= 0 {
				continue
			}
			mu := wake.DoubletCoefficients()
			for k := 0; k < frozen; k++ {
				v := wake.VortexRingUnitVelocityAt(surf, i, k)
				u = u.Sub(v.Scale(mu[k]))
			}
		}
	}

	n := surf.PanelNormal(i)
	vBlow := ownerBoundaryLayerBlowingVelocity(owner, surf, i)
	return u.Dot(n) - vBlow
}

// ownerBoundaryLayerBlowingVelocity looks up the boundary layer for
// surf (if it is a lifting surface with one registered) and returns
// its blowing velocity at panel i, or zero for a non-lifting surface.
func ownerBoundaryLayerBlowingVelocity(owner *body.Body, surf geom.Surface, i int) float64 {
	for _, ls := range owner.LiftingSurfaces {
		if ls.Surface.ID() == surf.ID() {
			return ls.BoundaryLayer.BlowingVelocity(i)
		}
	}
	return 0
}

// assemble builds the N x N left-hand side A and auxiliary matrix Σ of
// §4.3 such that A·μ = Σ·σ.
func (s *Solver) assemble() (A, Sigma [][]float64) {
	A = la.MatAlloc(s.N, s.N)
	Sigma = la.MatAlloc(s.N, s.N)

	for _, observerSurf := range s.surfaces {
		observerSurf := observerSurf
		iOff := s.surfaceOffset[observerSurf.ID()]
		panelpool.For(observerSurf.NumPanels(), func(i int) {
			row := iOff + i
			for _, sourceSurf := range s.surfaces {
				jOff := s.surfaceOffset[sourceSurf.ID()]
				for j := 0; j < sourceSurf.NumPanels(); j++ {
					sigma, mu := sourceSurf.SourceAndDoubletInfluence(observerSurf, i, j)
					Sigma[row][jOff+j] = sigma
					A[row][jOff+j] = mu
				}
			}
			// Kutta wiring: fold the newest wake strip's (still
			// unknown) doublet into the columns of its upper/lower
			// trailing-edge panels (§4.3).
			for _, le := range s.liftingList {
				ls := le.bundle.Surface
				wake := le.bundle.Wake
				nSpan := ls.NumSpanwisePanels()
				tailStart := wake.NumPanels() - nSpan
				if tailStart < 0 {
					continue
				}
				for k := 0; k < nSpan; k++ {
					muInfl := vortexRingColumnInfluence(wake, observerSurf, i, tailStart+k)
					upperCol := le.offset + ls.TrailingEdgeUpperPanel(k)
					lowerCol := le.offset + ls.TrailingEdgeLowerPanel(k)
					A[row][upperCol] += muInfl
					A[row][lowerCol] -= muInfl
				}
			}
		})
	}
	return A, Sigma
}

// vortexRingColumnInfluence returns the doublet-potential influence
// that wake panel wakePanel induces at the collocation point of panel
// i of observerSurf — the "μ_infl_from_wake_panel(k)" term of §4.3,
// obtained from the wake's own doublet influence function applied
// with unit strength.
func vortexRingColumnInfluence(wake geom.Wake, observerSurf geom.Surface, i, wakePanel int) float64 {
	_, muInfl := wake.SourceAndDoubletInfluence(observerSurf, i, wakePanel)
	return muInfl
}
