// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/vortexje/vortexje/body"
	"github.com/vortexje/vortexje/geom"
	"github.com/vortexje/vortexje/panelpool"
)

// computeSurfaceVelocities fills s.SurfaceVelocities for every
// registered panel (§4.6).
func (s *Solver) computeSurfaceVelocities() {
	for _, surf := range s.surfaces {
		surf := surf
		off := s.surfaceOffset[surf.ID()]
		owner := s.surfaceOwner[surf.ID()]
		panelpool.For(surf.NumPanels(), func(i int) {
			s.SurfaceVelocities[off+i] = s.surfaceVelocity(owner, surf, i, off)
		})
	}
}

// surfaceVelocity implements §4.6 for panel i of surf.
func (s *Solver) surfaceVelocity(owner *body.Body, surf geom.Surface, i, offset int) [3]float64 {
	var vDist geom.Vec3
	if s.Params.MarcovSurfaceVelocity {
		x := surf.PanelCollocationPoint(i, true)
		grad := surf.ScalarFieldGradient(s.DoubletCoefficients, offset, i)
		vDist = s.disturbanceVelocity(x).Sub(grad.Scale(0.5))
	} else {
		grad := surf.ScalarFieldGradient(s.DoubletCoefficients, offset, i)
		vDist = grad.Scale(-1)
	}

	apparent := s.apparentPanelVelocity(owner, surf, i)
	vDist = vDist.Sub(apparent)

	n := surf.PanelNormal(i)
	vDist = vDist.Sub(n.Scale(vDist.Dot(n)))

	return [3]float64{vDist[0], vDist[1], vDist[2]}
}

// surfacePotential implements §4.9 for panel i of surf.
func (s *Solver) surfacePotential(owner *body.Body, surf geom.Surface, i int, offset int) float64 {
	if s.Params.MarcovSurfaceVelocity {
		x := surf.PanelCollocationPoint(i, false)
		return s.disturbancePotential(x) + s.Freestream.Dot(x)
	}
	x := surf.PanelCollocationPoint(i, false)
	apparent := s.apparentPanelVelocity(owner, surf, i)
	return -s.DoubletCoefficients[offset+i] - apparent.Dot(x)
}
