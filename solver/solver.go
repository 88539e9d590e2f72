// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solver implements the unsteady source-doublet panel method
// of §4: assembly and solution of the dense influence-coefficient
// system, the Kutta condition, the boundary-layer coupling iteration,
// the wake convection state machine, and the derivation of surface
// velocities, potentials, pressures, forces and moments.
package solver

import (
	"log"

	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/utl"
	"github.com/vortexje/vortexje/body"
	"github.com/vortexje/vortexje/geom"
	"github.com/vortexje/vortexje/params"
)

// liftingEntry is the solver's private bookkeeping for one lifting
// surface: which body owns it, a pointer to its bundle (so the Kutta
// closure can reach the wake's doublet vector), and its column/row
// offset into the solver's N-sized state.
type liftingEntry struct {
	owner  *body.Body
	bundle *body.LiftingSurfaceBundle
	offset int
}

// Solver holds the process-wide state of one solve: the registered
// bodies and surfaces, the dense N-sized coefficient vectors, and the
// freestream/fluid parameters (§3 "Solver state").
type Solver struct {
	Params     params.Parameters
	FluidDensity float64
	Freestream geom.Vec3
	LogFolder  string
	Logger     *log.Logger

	bodies        []*body.Body
	surfaces      []geom.Surface       // non-wake, registration order
	surfaceOwner  map[string]*body.Body
	surfaceOffset map[string]int
	liftingList   []liftingEntry

	N int

	DoubletCoefficients               []float64
	SourceCoefficients                []float64
	SurfaceVelocityPotentials         []float64
	PreviousSurfaceVelocityPotentials []float64
	PressureCoefficients              []float64
	SurfaceVelocities                 [][3]float64

	// panelBins/panelAt/panelBinsBuilt back PressureNear's spatial
	// point-probe index (probe.go), built lazily and cached across
	// calls until RefreshProbeIndex invalidates it.
	panelBins      gm.Bins
	panelAt        []geom.Vec3
	panelBinsBuilt bool

	// Residuals records, one sublist per solve() call, the BiCGSTAB
	// residual at every iteration — mirrors fem/summary.go's
	// Resids utl.DblSlist, appended the way s_implicit.go does:
	// Resids.Append(it == 0, residual).
	Residuals utl.DblSlist
}

// New returns an empty Solver ready for AddBody calls.
func New(p params.Parameters, fluidDensity float64, freestream geom.Vec3) *Solver {
	return &Solver{
		Params:        p,
		FluidDensity:  fluidDensity,
		Freestream:    freestream,
		Logger:        log.Default(),
		surfaceOwner:  make(map[string]*body.Body),
		surfaceOffset: make(map[string]int),
	}
}

// AddBody registers a body's surfaces with the solver (§4.1). It is
// the only growth point: calling it grows every N-sized vector to the
// new N, with the new panels' entries zero; entries of panels
// registered by earlier AddBody calls keep their values and are not
// reset to zero. Idempotency is not a contract — calling AddBody twice with the
// same body duplicates its surfaces' entries.
func (s *Solver) AddBody(b *body.Body) {
	s.bodies = append(s.bodies, b)

	for _, surf := range b.NonLiftingSurfaces {
		s.registerSurface(surf, b)
	}
	for i := range b.LiftingSurfaces {
		ls := &b.LiftingSurfaces[i]
		offset := s.registerSurface(ls.Surface, b)
		s.liftingList = append(s.liftingList, liftingEntry{owner: b, bundle: ls, offset: offset})
		s.surfaceOwner[ls.Wake.ID()] = b
	}

	s.resize()
	s.panelBinsBuilt = false
}

// registerSurface appends surf to the offset table and returns the
// offset it was given.
func (s *Solver) registerSurface(surf geom.Surface, owner *body.Body) int {
	offset := s.N
	s.surfaces = append(s.surfaces, surf)
	s.surfaceOffset[surf.ID()] = offset
	s.surfaceOwner[surf.ID()] = owner
	s.N += surf.NumPanels()
	return offset
}

// resize grows every N-sized vector to the current N, preserving
// already-computed entries (so a mid-simulation AddBody does not
// discard the running solution of existing panels) and zeroing the
// rest.
func (s *Solver) resize() {
	s.DoubletCoefficients = growFloat(s.DoubletCoefficients, s.N)
	s.SourceCoefficients = growFloat(s.SourceCoefficients, s.N)
	s.SurfaceVelocityPotentials = growFloat(s.SurfaceVelocityPotentials, s.N)
	s.PreviousSurfaceVelocityPotentials = growFloat(s.PreviousSurfaceVelocityPotentials, s.N)
	s.PressureCoefficients = growFloat(s.PressureCoefficients, s.N)
	if len(s.SurfaceVelocities) < s.N {
		grown := make([][3]float64, s.N)
		copy(grown, s.SurfaceVelocities)
		s.SurfaceVelocities = grown
	}
}

func growFloat(v []float64, n int) []float64 {
	if len(v) >= n {
		return v
	}
	grown := make([]float64, n)
	copy(grown, v)
	return grown
}

// offsetOf returns the global offset of surface, and true on success.
// Surface lookup is by identity string, via the precomputed table
// built at AddBody time (spec.md §9 "Panel-to-global offset lookup" —
// no linear scan of the surface list).
func (s *Solver) offsetOf(surface geom.Surface) (int, bool) {
	off, ok := s.surfaceOffset[surface.ID()]
	return off, ok
}

// globalIndex resolves (surface, panel) to an index into the N-sized
// vectors. ok is false for a panel-not-found lookup (§7): a programmer
// error, reported by the caller and answered with the zero value.
func (s *Solver) globalIndex(surface geom.Surface, panel int) (int, bool) {
	off, ok := s.offsetOf(surface)
	if !ok {
		return 0, false
	}
	return off + panel, true
}

func (s *Solver) warnf(format string, args ...interface{}) {
	s.Logger.Printf("vortexje: "+format, args...)
}

// apparentPanelVelocity returns v_panel_kinematic - v_freestream for panel
// i of surface, the "apparent panel velocity" of §4.2.
func (s *Solver) apparentPanelVelocity(owner *body.Body, surface geom.Surface, i int) geom.Vec3 {
	return owner.PanelKinematicVelocity(surface, i).Sub(s.Freestream)
}

// allLiftingSurfaceBundles returns every registered lifting-surface
// bundle across every body, in registration order.
func (s *Solver) allLiftingSurfaceBundles() []*body.LiftingSurfaceBundle {
	bundles := make([]*body.LiftingSurfaceBundle, len(s.liftingList))
	for i, le := range s.liftingList {
		bundles[i] = le.bundle
	}
	return bundles
}

// surfaceVelocitySlice returns the slice of s.SurfaceVelocities
// belonging to surface, for handing to a boundary layer's Recalculate.
func (s *Solver) surfaceVelocitySlice(surface geom.Surface) [][3]float64 {
	off, ok := s.offsetOf(surface)
	if !ok {
		return nil
	}
	return s.SurfaceVelocities[off : off+surface.NumPanels()]
}
