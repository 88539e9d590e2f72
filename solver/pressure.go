// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/vortexje/vortexje/panelpool"

// computePressureCoefficients implements §4.8, §4.9: the unsteady
// Bernoulli pressure coefficient at every panel, given dt (the step
// size; 0 disables the unsteady term regardless of
// Params.UnsteadyBernoulli, per §4.8).
func (s *Solver) computePressureCoefficients(dt float64) {
	for _, surf := range s.surfaces {
		surf := surf
		off := s.surfaceOffset[surf.ID()]
		owner := s.surfaceOwner[surf.ID()]
		vRefSq := owner.Velocity.Sub(s.Freestream).Dot(owner.Velocity.Sub(s.Freestream))

		panelpool.For(surf.NumPanels(), func(i int) {
			idx := off + i
			phi := s.surfacePotential(owner, surf, i, off)
			s.SurfaceVelocityPotentials[idx] = phi

			var dphidt float64
			if s.Params.UnsteadyBernoulli && dt > 0 {
				dphidt = (phi - s.PreviousSurfaceVelocityPotentials[idx]) / dt
			}

			vSurf := s.SurfaceVelocities[idx]
			vSurfSq := vSurf[0]*vSurf[0] + vSurf[1]*vSurf[1] + vSurf[2]*vSurf[2]

			if vRefSq == 0 {
				s.PressureCoefficients[idx] = 0
				return
			}
			s.PressureCoefficients[idx] = 1 - (vSurfSq+2*dphidt)/vRefSq
		})
	}
}
