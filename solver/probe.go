// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gosl/gm"
	"github.com/vortexje/vortexje/geom"
)

// panelBins divisions: coarse enough that most bins hold a handful of
// panels, the same fixed division count out/out.go uses for its
// NodBins/IpsBins (Ndiv = 20).
const panelBinsNdiv = 20

// buildPanelBins indexes every registered panel's collocation point
// into a spatial bin structure, so PressureNear can answer a point
// probe without a linear scan over every panel — the same gm.Bins
// nearest-point search out/out.go builds once over a mesh's nodes and
// integration points.
func (s *Solver) buildPanelBins() error {
	if s.N == 0 {
		return nil
	}
	var xi, xf [3]float64
	first := true
	s.panelAt = make([]geom.Vec3, s.N)
	for _, surf := range s.surfaces {
		off := s.surfaceOffset[surf.ID()]
		for i := 0; i < surf.NumPanels(); i++ {
			c := surf.PanelCollocationPoint(i, false)
			s.panelAt[off+i] = c
			for d := 0; d < 3; d++ {
				if first || c[d] < xi[d] {
					xi[d] = c[d]
				}
				if first || c[d] > xf[d] {
					xf[d] = c[d]
				}
			}
			first = false
		}
	}
	if err := s.panelBins.Init(xi[:], xf[:], panelBinsNdiv); err != nil {
		return err
	}
	for id, c := range s.panelAt {
		if err := s.panelBins.Append(c[:], id); err != nil {
			return err
		}
	}
	s.panelBinsBuilt = true
	return nil
}

// PressureNear returns the pressure coefficient of whichever registered
// panel's collocation point is closest to x, for a cheap point probe
// (e.g. sampling Cp along a wind-tunnel-style traverse) without the
// caller walking every surface and panel itself. The spatial index is
// built once, lazily, on first use, and assumes panel geometry is
// stable across probes within one step (rebuild with RefreshProbeIndex
// after a mesh deformation invalidates it).
func (s *Solver) PressureNear(x geom.Vec3) (cp float64, ok bool) {
	if !s.panelBinsBuilt {
		if err := s.buildPanelBins(); err != nil {
			s.warnf("probe: failed to build panel spatial index: %v", err)
			return 0, false
		}
	}
	id := s.panelBins.Find(x[:])
	if id < 0 {
		return 0, false
	}
	return s.PressureCoefficients[id], true
}

// RefreshProbeIndex invalidates the cached panel spatial index, forcing
// the next PressureNear call to rebuild it from current panel
// positions (needed after a convecting or deforming mesh moves panels).
func (s *Solver) RefreshProbeIndex() {
	s.panelBinsBuilt = false
}
