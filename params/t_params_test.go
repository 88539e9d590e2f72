// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_params01(tst *testing.T) {

	chk.PrintTitle("Test params01: defaults are self-consistent")

	p := Default()
	if !p.ConvectWake {
		tst.Errorf("default ConvectWake should be true")
	}
	if p.MaxBoundaryLayerIterations < 1 {
		tst.Errorf("default MaxBoundaryLayerIterations should be >= 1")
	}
	chk.Scalar(tst, "staticWakeLength", 1e-17, p.StaticWakeLength, 100.0)
}

func Test_params02(tst *testing.T) {

	chk.PrintTitle("Test params02: Load backfills unset fields")

	f, err := os.CreateTemp("", "vortexje-params-*.json")
	if err != nil {
		tst.Fatalf("cannot create temp file: %v", err)
	}
	defer os.Remove(f.Name())

	enc := json.NewEncoder(f)
	if err := enc.Encode(map[string]interface{}{"convectWake": false}); err != nil {
		tst.Fatalf("cannot encode: %v", err)
	}
	f.Close()

	p, err := Load(f.Name())
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	if p.ConvectWake {
		tst.Errorf("ConvectWake should have been read as false from file")
	}
	chk.Scalar(tst, "staticWakeLength backfilled", 1e-17, p.StaticWakeLength, Default().StaticWakeLength)
	chk.Scalar(tst, "linearSolverTolerance backfilled", 1e-17, p.LinearSolverTolerance, Default().LinearSolverTolerance)
}

func Test_params03(tst *testing.T) {

	chk.PrintTitle("Test params03: Load reports a clear error on a missing file")

	_, err := Load("/nonexistent/path/to/params.json")
	if err == nil {
		tst.Errorf("Load should have failed for a nonexistent file")
	}
}
