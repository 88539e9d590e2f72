// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

// closeKutta writes the newest wake-strip doublet coefficients from
// the trailing-edge doublet jump (§4.5): for every lifting surface and
// every spanwise station k,
//
//	μ_wake[tailIndex+k] = μ[upperPanel(k)] - μ[lowerPanel(k)]
//
// This is the exact equality spec.md §8 requires to hold to machine
// precision at every step.
func (s *Solver) closeKutta() {
	for _, le := range s.liftingList {
		ls := le.bundle.Surface
		wake := le.bundle.Wake
		nSpan := ls.NumSpanwisePanels()
		tailIndex := wake.NumPanels() - nSpan
		if tailIndex < 0 {
			continue
		}
		mu := wake.DoubletCoefficients()
		for k := 0; k < nSpan; k++ {
			upper := le.offset + ls.TrailingEdgeUpperPanel(k)
			lower := le.offset + ls.TrailingEdgeLowerPanel(k)
			mu[tailIndex+k] = s.DoubletCoefficients[upper] - s.DoubletCoefficients[lower]
		}
	}
}
