// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/vortexje/vortexje/geom"

// disturbanceVelocity returns the flow disturbance induced at x by the
// current singularity distribution: every non-wake panel's source and
// doublet, plus every wake panel's doublet (§4.11, minus the
// freestream term so it can be reused by §4.6's Marcov formula).
func (s *Solver) disturbanceVelocity(x geom.Vec3) geom.Vec3 {
	var v geom.Vec3
	for _, surf := range s.surfaces {
		off := s.surfaceOffset[surf.ID()]
		for j := 0; j < surf.NumPanels(); j++ {
			sigma := s.SourceCoefficients[off+j]
			mu := s.DoubletCoefficients[off+j]
			if sigma != 0 {
				v = v.Add(surf.SourceUnitVelocity(x, j).Scale(sigma))
			}
			if mu != 0 {
				v = v.Add(surf.VortexRingUnitVelocity(x, j).Scale(mu))
			}
		}
	}
	for _, le := range s.liftingList {
		wake := le.bundle.Wake
		mu := wake.DoubletCoefficients()
		for j := 0; j < wake.NumPanels(); j++ {
			if mu[j] != 0 {
				v = v.Add(wake.VortexRingUnitVelocity(x, j).Scale(mu[j]))
			}
		}
	}
	return v
}

// disturbancePotential is disturbanceVelocity's potential counterpart,
// used by §4.9's Marcov surface-potential formula.
func (s *Solver) disturbancePotential(x geom.Vec3) float64 {
	var phi float64
	for _, surf := range s.surfaces {
		off := s.surfaceOffset[surf.ID()]
		for j := 0; j < surf.NumPanels(); j++ {
			sigma := s.SourceCoefficients[off+j]
			mu := s.DoubletCoefficients[off+j]
			sourceInfl, doubletInfl := surf.SourceAndDoubletInfluenceAt(x, j)
			phi += sigma*sourceInfl + mu*doubletInfl
		}
	}
	for _, le := range s.liftingList {
		wake := le.bundle.Wake
		mu := wake.DoubletCoefficients()
		for j := 0; j < wake.NumPanels(); j++ {
			if mu[j] == 0 {
				continue
			}
			_, doubletInfl := wake.SourceAndDoubletInfluenceAt(x, j)
			phi += mu[j] * doubletInfl
		}
	}
	return phi
}

// Velocity evaluates the flow velocity at an arbitrary point x (§4.11).
func (s *Solver) Velocity(x geom.Vec3) geom.Vec3 {
	return s.Freestream.Add(s.disturbanceVelocity(x))
}

// VelocityPotential evaluates the flow velocity potential at an
// arbitrary point x (§4.11).
func (s *Solver) VelocityPotential(x geom.Vec3) float64 {
	return s.Freestream.Dot(x) + s.disturbancePotential(x)
}
