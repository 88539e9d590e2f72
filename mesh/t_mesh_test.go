// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sphere01(tst *testing.T) {

	chk.PrintTitle("Test sphere01: sphere panel areas sum to ~4πR²")

	radius := 2.0
	s := NewSphere("s", radius, 24, 48)

	var total float64
	for i := 0; i < s.NumPanels(); i++ {
		total += s.PanelSurfaceArea(i)
	}
	exact := 4 * math.Pi * radius * radius
	if math.Abs(total-exact)/exact > 1e-3 {
		tst.Errorf("panel area sum = %g, expected ~%g", total, exact)
	}
}

func Test_sphere02(tst *testing.T) {

	chk.PrintTitle("Test sphere02: every panel normal points outward from the centre")

	s := NewSphere("s", 1.0, 16, 32)
	for i := 0; i < s.NumPanels(); i++ {
		c := s.PanelCollocationPoint(i, false)
		n := s.PanelNormal(i)
		if c.Dot(n) <= 0 {
			tst.Fatalf("panel %d normal does not point outward: c=%v n=%v", i, c, n)
		}
	}
}

func Test_wing01(tst *testing.T) {

	chk.PrintTitle("Test wing01: trailing-edge topology is consistent")

	wing, wake := NewWing("w", 4.0, 1.0, 0.08, 8, 12)

	if wing.NumSpanwisePanels() != 12 {
		tst.Fatalf("expected 12 spanwise panels, got %d", wing.NumSpanwisePanels())
	}
	for k := 0; k < wing.NumSpanwisePanels(); k++ {
		upper := wing.TrailingEdgeUpperPanel(k)
		lower := wing.TrailingEdgeLowerPanel(k)
		if upper == lower {
			tst.Errorf("upper and lower trailing-edge panels coincide at station %d", k)
		}
	}

	// the wake must start out seeded with exactly one node strip.
	if wake.NumNodes() != wing.NumSpanwiseNodes() {
		tst.Fatalf("freshly built wake should carry one strip of %d nodes, got %d",
			wing.NumSpanwiseNodes(), wake.NumNodes())
	}
	if wake.NumPanels() != 0 {
		tst.Errorf("freshly built wake should carry no panels yet, got %d", wake.NumPanels())
	}
}

func Test_wing02(tst *testing.T) {

	chk.PrintTitle("Test wing02: AddLayer grows the wake by one spanwise strip")

	_, wake := NewWing("w", 2.0, 1.0, 0.05, 4, 6)
	n0, p0 := wake.NumNodes(), wake.NumPanels()

	wake.AddLayer()

	if wake.NumNodes() != n0+wake.nSpanNodes {
		tst.Errorf("expected %d nodes after AddLayer, got %d", n0+wake.nSpanNodes, wake.NumNodes())
	}
	if wake.NumPanels() != p0+wake.nSpanPanels {
		tst.Errorf("expected %d panels after AddLayer, got %d", p0+wake.nSpanPanels, wake.NumPanels())
	}
	chk.Scalar(tst, "doublet coefficients length", 1e-17, float64(len(wake.DoubletCoefficients())), float64(wake.NumPanels()))
}
