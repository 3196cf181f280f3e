// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/pdefd/grid"
	"github.com/cpmech/pdefd/linalg"
	"github.com/cpmech/pdefd/pde"
)

func dirichletBCs1D(v float64) grid.BCs1D[float64] {
	return grid.BCs1D[float64]{
		Left:  grid.BC[float64]{Kind: grid.Dirichlet, V: v},
		Right: grid.BC[float64]{Kind: grid.Dirichlet, V: v},
	}
}

// TestConstantPreservation1D covers invariant 1 (spec §8): U0 == c with
// Dirichlet(c) on both faces must stay within machine precision of c.
func TestConstantPreservation1D(t *testing.T) {
	g, err := grid.Linspace(0.0, 1.0, 21)
	if err != nil {
		t.Fatal(err)
	}
	u0 := make([]float64, g.N())
	for i := range u0 {
		u0[i] = 2.5
	}
	in, err := pde.NewInput1D[float64](u0, g, 0.3, 0.7, 1e-3, pde.CrankNicolson, pde.Centered, dirichletBCs1D(2.5))
	if err != nil {
		t.Fatal(err)
	}
	ops := linalg.NewDense[float64]()
	sv, err := New[float64, AdvectionDiffusion1D[float64]](ops, AdvectionDiffusion1D[float64]{In: in})
	if err != nil {
		t.Fatal(err)
	}
	if err := sv.Advance(50); err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}
	sol, err := sv.Solution()
	if err != nil {
		t.Fatal(err)
	}
	want := make([]float64, len(sol))
	for i := range want {
		want[i] = 2.5
	}
	chk.Array(t, "u", 1e-9, sol, want)
}

// TestSymmetryPreservation1D covers invariant 4: a symmetric IC and symmetric
// BCs with zero velocity keeps the solution symmetric about the grid center.
func TestSymmetryPreservation1D(t *testing.T) {
	g, err := grid.Linspace(0.0, 1.0, 21)
	if err != nil {
		t.Fatal(err)
	}
	u0 := make([]float64, g.N())
	for i, x := range g.Coords() {
		u0[i] = x * (1 - x)
	}
	bcs := grid.BCs1D[float64]{
		Left:  grid.BC[float64]{Kind: grid.Dirichlet, V: 0},
		Right: grid.BC[float64]{Kind: grid.Dirichlet, V: 0},
	}
	in, err := pde.NewInput1D[float64](u0, g, 0, 1.0, 1e-4, pde.ImplicitEuler, pde.Centered, bcs)
	if err != nil {
		t.Fatal(err)
	}
	ops := linalg.NewDense[float64]()
	sv, err := New[float64, AdvectionDiffusion1D[float64]](ops, AdvectionDiffusion1D[float64]{In: in})
	if err != nil {
		t.Fatal(err)
	}
	if err := sv.Advance(30); err != nil {
		t.Fatal(err)
	}
	sol, err := sv.Solution()
	if err != nil {
		t.Fatal(err)
	}
	n := len(sol)
	for i := 0; i < n/2; i++ {
		chk.Scalar(t, "symmetry", 1e-9, sol[i], sol[n-1-i])
	}
}

func TestAdvanceIllegalWhenFaulted(t *testing.T) {
	g, err := grid.Linspace(0.0, 1.0, 5)
	if err != nil {
		t.Fatal(err)
	}
	u0 := []float64{0, 0, 0, 0, 0}
	bcs := grid.BCs1D[float64]{
		Left:  grid.BC[float64]{Kind: grid.Dirichlet, V: 0},
		Right: grid.BC[float64]{Kind: grid.Dirichlet, V: 0},
	}
	in, err := pde.NewInput1D[float64](u0, g, 0, 1.0, 1.0, pde.ExplicitEuler, pde.Centered, bcs)
	if err != nil {
		t.Fatal(err)
	}
	ops := linalg.NewDense[float64]()
	sv, err := New[float64, AdvectionDiffusion1D[float64]](ops, AdvectionDiffusion1D[float64]{In: in})
	if err != nil {
		t.Fatal(err)
	}
	// force a fault by poking a NaN into the live history buffer directly.
	sv.s[0][2] = nan()
	if err := sv.Advance(1); err == nil {
		t.Fatal("expected a NumericFault")
	}
	if sv.State() != Faulted {
		t.Fatalf("expected Faulted, got %s", sv.State())
	}
	if err := sv.Advance(1); err == nil {
		t.Fatal("Advance should be illegal once Faulted")
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
