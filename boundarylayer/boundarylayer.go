// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package boundarylayer defines the blowing-velocity/friction surrogate
// the solver couples against in its outer iteration (§4.7), plus the
// Null implementation used when a lifting surface carries no viscous
// coupling at all.
package boundarylayer

// BoundaryLayer supplies, per panel, the normal blowing velocity that
// represents displacement-thickness effects without resolving the
// viscous field, and the tangential friction force.
//
// NonTrivial discriminates a substantive implementation from Null: the
// teacher's upstream relies on runtime-type introspection for this
// (comparing against a concrete null type), which spec.md §9 flags as
// non-idiomatic outside its source language. Here it is an explicit
// capability predicate instead.
type BoundaryLayer interface {
	BlowingVelocity(i int) float64
	Friction(i int) [3]float64

	// Recalculate updates the boundary layer's internal state from the
	// solver's just-computed surface-velocity block for this surface,
	// one row (3 components) per panel, rows in panel-index order.
	Recalculate(surfaceVelocities [][3]float64)

	// NonTrivial reports whether this boundary layer performs actual
	// work. The solver uses it both to decide whether to keep
	// iterating (§4.7) and to decide whether the outer loop has any
	// non-trivial boundary layer to begin with.
	NonTrivial() bool
}

// Null is the zero-effort BoundaryLayer: zero blowing velocity, zero
// friction, and Recalculate is a no-op.
type Null struct{}

// BlowingVelocity always returns zero.
func (Null) BlowingVelocity(i int) float64 { return 0 }

// Friction always returns the zero vector.
func (Null) Friction(i int) [3]float64 { return [3]float64{} }

// Recalculate does nothing.
func (Null) Recalculate(surfaceVelocities [][3]float64) {}

// NonTrivial always returns false.
func (Null) NonTrivial() bool { return false }
