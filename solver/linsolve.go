// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/cpmech/gosl/la"

// linearSolve solves A·x = b with a stabilised biconjugate-gradient
// method (BiCGSTAB), warm-started from x0, up to maxIter iterations or
// until the residual norm falls below tol*‖b‖ (§4.4). It reports
// iteration count and estimated residual through s.Residuals/s.Logger,
// mirroring the teacher's s_implicit.go iteration-diagnostic prints.
func (s *Solver) linearSolve(A [][]float64, b, x0 []float64) (x []float64, ok bool) {
	n := len(b)
	x = append([]float64(nil), x0...)
	if len(x) != n {
		x = make([]float64, n)
	}

	bNorm := vecNorm(b)
	if bNorm == 0 {
		bNorm = 1
	}

	r := matVecResidual(A, x, b) // r = b - A x
	rHat := append([]float64(nil), r...)

	rho, alpha, omega := 1.0, 1.0, 1.0
	v := make([]float64, n)
	p := make([]float64, n)

	first := true
	maxIter := s.Params.LinearSolverMaxIterations
	tol := s.Params.LinearSolverTolerance

	iter := 0
	resid := vecNorm(r) / bNorm
	s.Residuals.Append(true, resid)

	for iter = 0; iter < maxIter; iter++ {
		resid = vecNorm(r) / bNorm
		if !first {
			s.Residuals.Append(false, resid)
		}
		first = false
		if resid < tol {
			break
		}

		rhoNew := vecDot(rHat, r)
		if rhoNew == 0 {
			ok = false
			s.warnf("linear solve breakdown (rho=0) after %d iterations, residual=%g", iter, resid)
			return x, ok
		}
		beta := (rhoNew / rho) * (alpha / omega)
		for i := range p {
			p[i] = r[i] + beta*(p[i]-omega*v[i])
		}
		rho = rhoNew

		v = matVec(A, p)
		avr := vecDot(rHat, v)
		if avr == 0 {
			ok = false
			s.warnf("linear solve breakdown (r_hat.v=0) after %d iterations, residual=%g", iter, resid)
			return x, ok
		}
		alpha = rho / avr

		h := make([]float64, n)
		for i := range h {
			h[i] = x[i] + alpha*p[i]
		}

		sVec := make([]float64, n)
		for i := range sVec {
			sVec[i] = r[i] - alpha*v[i]
		}
		if vecNorm(sVec)/bNorm < tol {
			x = h
			r = sVec
			iter++
			resid = vecNorm(r) / bNorm
			s.Residuals.Append(false, resid)
			ok = true
			break
		}

		t := matVec(A, sVec)
		tt := vecDot(t, t)
		if tt == 0 {
			ok = false
			s.warnf("linear solve breakdown (t.t=0) after %d iterations, residual=%g", iter, resid)
			return x, ok
		}
		omega = vecDot(t, sVec) / tt

		for i := range x {
			x[i] = h[i] + omega*sVec[i]
		}
		for i := range r {
			r[i] = sVec[i] - omega*t[i]
		}

		if omega == 0 {
			ok = false
			s.warnf("linear solve breakdown (omega=0) after %d iterations, residual=%g", iter, vecNorm(r)/bNorm)
			return x, ok
		}
	}

	finalResid := vecNorm(matVecResidual(A, x, b)) / bNorm
	if finalResid >= tol {
		s.warnf("linear solve did not converge after %d iterations, residual=%g (tolerance=%g)", iter, finalResid, tol)
		return x, false
	}
	s.Logger.Printf("vortexje: linear solve converged after %d iterations, residual=%g", iter, finalResid)
	return x, true
}

// matVec returns A·x, via gosl/la's dense matrix-vector multiply (the
// same helper fem/e_beam.go uses for its internal force recovery,
// o.fi = K·ue).
func matVec(A [][]float64, x []float64) []float64 {
	y := make([]float64, len(A))
	la.MatVecMul(y, 1, A, x)
	return y
}

func matVecResidual(A [][]float64, x, b []float64) []float64 {
	ax := matVec(A, x)
	r := make([]float64, len(b))
	for i := range r {
		r[i] = b[i] - ax[i]
	}
	return r
}

func vecDot(a, b []float64) float64 {
	return la.VecDot(a, b)
}

func vecNorm(a []float64) float64 {
	return la.VecNorm(a)
}
