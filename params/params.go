// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package params holds the process-wide numeric tunables and mode
// switches read by the solver on its hot path. A Parameters value is
// immutable once constructed: the solver threads it explicitly rather
// than reading package-level globals, so mutating it mid-solve is not
// a supported operation.
package params

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// Parameters collects the tunables and mode switches of §6.
type Parameters struct {

	// wake model
	ConvectWake                bool    `json:"convectWake"`                // true: free wake convected by the flow; false: static prescribed wake
	StaticWakeLength           float64 `json:"staticWakeLength"`           // length of the static wake, in body-length units
	WakeEmissionFollowBisector bool    `json:"wakeEmissionFollowBisector"` // true: displace newest wake nodes along the trailing-edge bisector
	WakeEmissionDistanceFactor float64 `json:"wakeEmissionDistanceFactor"` // scales the trailing-edge displacement per step; typically <= 1

	// pressure model
	UnsteadyBernoulli bool `json:"unsteadyBernoulli"` // retain ∂φ/∂t in the pressure equation

	// surface velocity model
	MarcovSurfaceVelocity bool `json:"marcovSurfaceVelocity"` // true: Marcov formula; false: gradient-only formula

	// boundary-layer coupling
	MaxBoundaryLayerIterations      int     `json:"maxBoundaryLayerIterations"`      // outer-iteration budget
	BoundaryLayerIterationTolerance float64 `json:"boundaryLayerIterationTolerance"` // Euclidean doublet-increment tolerance

	// linear solver
	LinearSolverMaxIterations int     `json:"linearSolverMaxIterations"` // BiCGSTAB iteration budget
	LinearSolverTolerance     float64 `json:"linearSolverTolerance"`     // BiCGSTAB residual tolerance
}

// Default returns the parameter set used throughout the test scenarios
// of §11: free wake, gradient surface velocity, unsteady Bernoulli on.
func Default() Parameters {
	return Parameters{
		ConvectWake:                     true,
		StaticWakeLength:                100.0,
		WakeEmissionFollowBisector:      false,
		WakeEmissionDistanceFactor:      0.5,
		UnsteadyBernoulli:               true,
		MarcovSurfaceVelocity:           false,
		MaxBoundaryLayerIterations:      1,
		BoundaryLayerIterationTolerance: 1e-6,
		LinearSolverMaxIterations:       2000,
		LinearSolverTolerance:           1e-9,
	}
}

// postProcess backfills zero-valued fields with defaults and clamps the
// fields whose valid range is narrower than their Go zero value, the
// way inp.Data.PostProcess completes a partially-specified .sim file.
func (o *Parameters) postProcess() {
	def := Default()
	if o.StaticWakeLength == 0 {
		o.StaticWakeLength = def.StaticWakeLength
	}
	if o.WakeEmissionDistanceFactor <= 0 {
		o.WakeEmissionDistanceFactor = def.WakeEmissionDistanceFactor
	}
	if o.MaxBoundaryLayerIterations <= 0 {
		o.MaxBoundaryLayerIterations = def.MaxBoundaryLayerIterations
	}
	if o.BoundaryLayerIterationTolerance <= 0 {
		o.BoundaryLayerIterationTolerance = def.BoundaryLayerIterationTolerance
	}
	if o.LinearSolverMaxIterations <= 0 {
		o.LinearSolverMaxIterations = def.LinearSolverMaxIterations
	}
	if o.LinearSolverTolerance <= 0 {
		o.LinearSolverTolerance = def.LinearSolverTolerance
	}
}

// Load reads Parameters from a JSON file, backfilling unset fields with
// Default() the way the teacher's .sim reader completes a Data struct.
func Load(path string) (p Parameters, err error) {
	f, err := os.Open(path)
	if err != nil {
		return p, chk.Err("cannot open parameters file %q:\n%v", path, err)
	}
	defer f.Close()
	p = Default()
	if err = json.NewDecoder(f).Decode(&p); err != nil {
		return p, chk.Err("cannot decode parameters file %q:\n%v", path, err)
	}
	p.postProcess()
	return p, nil
}
