// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/vortexje/vortexje/geom"
	"github.com/vortexje/vortexje/logio"
)

// WriteStep dumps every registered surface and wake at step through w
// (§4.12): non-lifting surfaces, lifting surfaces and wakes, grouped
// by owning body in the order bodies were added.
func (s *Solver) WriteStep(w *logio.Writer, step int) error {
	for _, b := range s.bodies {
		for i, surf := range b.NonLiftingSurfaces {
			if err := s.writeOne(w, b.ID, "non_lifting_surface", i, step, surf); err != nil {
				return err
			}
		}
		for i := range b.LiftingSurfaces {
			ls := &b.LiftingSurfaces[i]
			if err := s.writeOne(w, b.ID, "lifting_surface", i, step, ls.Surface); err != nil {
				return err
			}
			if err := s.writeWake(w, b.ID, i, step, ls.Wake); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Solver) writeOne(w *logio.Writer, bodyID, kind string, index, step int, surf geom.Surface) error {
	off, ok := s.offsetOf(surf)
	if !ok {
		return nil
	}
	n := surf.NumPanels()
	data := logio.SurfaceData{
		PressureCoefficients: s.PressureCoefficients[off : off+n],
		DoubletCoefficients:  s.DoubletCoefficients[off : off+n],
		SourceCoefficients:   s.SourceCoefficients[off : off+n],
		SurfaceVelocities:    s.SurfaceVelocities[off : off+n],
	}
	return w.WriteSurface(bodyID, kind, index, step, surf, data)
}

func (s *Solver) writeWake(w *logio.Writer, bodyID string, index, step int, wake geom.Wake) error {
	data := logio.SurfaceData{DoubletCoefficients: wake.DoubletCoefficients()}
	return w.WriteSurface(bodyID, "wake", index, step, wake, data)
}
