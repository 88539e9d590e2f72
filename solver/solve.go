// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

// Solve advances the solution by one step of size dt (§4.7, §4.8): it
// assembles and solves the influence system, iterating against the
// boundary layer until the doublet vector converges or the iteration
// budget is exhausted, then derives surface velocities, potentials and
// pressures.
//
// propagate marks this call as part of a time-marching sequence: when
// true, the surface-potential history used by the unsteady Bernoulli
// term is advanced (so a following UpdateWakes(dt) call sees a
// consistent dφ/dt next step); when false (a one-shot diagnostic solve,
// as in the sphere-in-uniform-flow scenario of §11) the potential
// history is left untouched, so repeated calls are idempotent.
//
// Solve returns false, with upstream state left exactly as the failed
// attempt produced it (§5 "no state rollback"), if the linear solve
// fails to converge within Params.LinearSolverMaxIterations.
func (s *Solver) Solve(dt float64, propagate bool) bool {
	mu := append([]float64(nil), s.DoubletCoefficients...)

	iter := 0
	for {
		s.computeSourceCoefficients(true)
		A, Sigma := s.assemble()
		b := matVec(Sigma, s.SourceCoefficients)

		muNew, ok := s.linearSolve(A, b, mu)
		if !ok {
			s.warnf("solve: linear system did not converge at boundary-layer iteration %d", iter)
			return false
		}

		converged := iter > 0 && vecDelta(muNew, mu) < s.Params.BoundaryLayerIterationTolerance

		mu = muNew
		copy(s.DoubletCoefficients, mu)
		s.closeKutta()
		s.computeSurfaceVelocities()

		if converged {
			break
		}
		if iter >= s.Params.MaxBoundaryLayerIterations {
			s.warnf("boundary-layer coupling did not converge after %d iterations; using current doublet distribution", iter)
			break
		}

		anyNonTrivial := false
		for _, ls := range s.allLiftingSurfaceBundles() {
			if ls.BoundaryLayer.NonTrivial() {
				anyNonTrivial = true
				ls.BoundaryLayer.Recalculate(s.surfaceVelocitySlice(ls.Surface))
			}
		}
		if !anyNonTrivial {
			break
		}
		iter++
	}

	if s.Params.ConvectWake {
		s.computeSourceCoefficients(false)
	}
	s.computePressureCoefficients(dt)

	if propagate {
		copy(s.PreviousSurfaceVelocityPotentials, s.SurfaceVelocityPotentials)
	}

	return true
}

// vecDelta returns the Euclidean norm of a-b (§4.7's boundary-layer
// convergence check, on the doublet vector rather than surface
// velocity — see the Open Question decision recorded in the design
// notes).
func vecDelta(a, b []float64) float64 {
	d := make([]float64, len(a))
	for i := range a {
		d[i] = a[i] - b[i]
	}
	return vecNorm(d)
}
