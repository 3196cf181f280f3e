// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"
	"testing"

	"github.com/cpmech/pdefd/grid"
	"github.com/cpmech/pdefd/linalg"
	"github.com/cpmech/pdefd/pde"
)

// TestScenarioS1HeatDirichletZero reproduces spec §8 scenario S1: 1D heat
// equation, sin(pi*x) initial condition, Dirichlet zero, CrankNicolson.
func TestScenarioS1HeatDirichletZero(t *testing.T) {
	g, err := grid.Linspace(0.0, 1.0, 65)
	if err != nil {
		t.Fatal(err)
	}
	u0 := make([]float64, g.N())
	for i, x := range g.Coords() {
		u0[i] = math.Sin(math.Pi * x)
	}
	bcs := grid.BCs1D[float64]{
		Left:  grid.BC[float64]{Kind: grid.Dirichlet, V: 0},
		Right: grid.BC[float64]{Kind: grid.Dirichlet, V: 0},
	}
	in, err := pde.NewInput1D[float64](u0, g, 0, 1.0, 1e-4, pde.CrankNicolson, pde.Centered, bcs)
	if err != nil {
		t.Fatal(err)
	}
	ops := linalg.NewDense[float64]()
	sv, err := New[float64, AdvectionDiffusion1D[float64]](ops, AdvectionDiffusion1D[float64]{In: in})
	if err != nil {
		t.Fatal(err)
	}
	if err := sv.Advance(1000); err != nil {
		t.Fatal(err)
	}
	sol, err := sv.Solution()
	if err != nil {
		t.Fatal(err)
	}
	decay := math.Exp(-math.Pi * math.Pi * 0.1)
	maxErr := 0.0
	for i, x := range g.Coords() {
		exact := math.Sin(math.Pi*x) * decay
		if e := math.Abs(sol[i] - exact); e > maxErr {
			maxErr = e
		}
	}
	if maxErr > 1e-3 {
		t.Fatalf("max error %.3e exceeds 1e-3", maxErr)
	}
}

// TestScenarioS2PeriodicAdvectionMassConservation reproduces spec §8
// scenario S2: a narrow Gaussian advected under pure periodic advection must
// conserve mass (invariant 3) and its peak must migrate with the flow. The
// first and last grid points are the same periodic point, so mass is summed
// over the first N-1 nodes only.
func TestScenarioS2PeriodicAdvectionMassConservation(t *testing.T) {
	g, err := grid.Linspace(0.0, 1.0, 128)
	if err != nil {
		t.Fatal(err)
	}
	u0 := make([]float64, g.N())
	sum0 := 0.0
	for i, x := range g.Coords() {
		d := x - 0.5
		u0[i] = math.Exp(-200 * d * d)
		if i < g.N()-1 {
			sum0 += u0[i]
		}
	}
	bcs := grid.BCs1D[float64]{
		Left:  grid.BC[float64]{Kind: grid.Periodic},
		Right: grid.BC[float64]{Kind: grid.Periodic},
	}
	in, err := pde.NewInput1D[float64](u0, g, 1.0, 0, 1e-3, pde.ExplicitEuler, pde.Upwind, bcs)
	if err != nil {
		t.Fatal(err)
	}
	ops := linalg.NewDense[float64]()
	sv, err := New[float64, AdvectionDiffusion1D[float64]](ops, AdvectionDiffusion1D[float64]{In: in})
	if err != nil {
		t.Fatal(err)
	}
	if err := sv.Advance(1000); err != nil {
		t.Fatal(err)
	}
	sol, err := sv.Solution()
	if err != nil {
		t.Fatal(err)
	}
	sum1 := 0.0
	peakIdx := 0
	for i, v := range sol {
		if i < g.N()-1 {
			sum1 += v
		}
		if v > sol[peakIdx] {
			peakIdx = i
		}
	}
	if e := math.Abs(sum1 - sum0); e > 1e-9 {
		t.Fatalf("mass drift %.3e exceeds tolerance", e)
	}
	peakX := g.At(peakIdx)
	if e := math.Abs(peakX - 0.5); e > 0.05 {
		t.Fatalf("peak migrated to x=%.4f, want close to 0.5 (mod 1)", peakX)
	}
}

// TestScenarioS4AffineFieldNeumannMatched reproduces spec §8 scenario S4: an
// affine field on [0,1]^2 with matching Neumann derivatives and zero
// diffusion must stay unchanged at interior nodes (invariant 2).
func TestScenarioS4AffineFieldNeumannMatched(t *testing.T) {
	gx, err := grid.Linspace(0.0, 1.0, 10)
	if err != nil {
		t.Fatal(err)
	}
	gy, err := grid.Linspace(0.0, 1.0, 8)
	if err != nil {
		t.Fatal(err)
	}
	g := grid.NewGrid2D(gx, gy)
	u0 := make([]float64, g.M())
	for j, y := range gy.Coords() {
		for i, x := range gx.Coords() {
			u0[g.Index(i, j)] = 2*x + 3*y
		}
	}
	bcs := grid.BCs2D[float64]{
		Left:  grid.BC[float64]{Kind: grid.Neumann, V: -2},
		Right: grid.BC[float64]{Kind: grid.Neumann, V: 2},
		Down:  grid.BC[float64]{Kind: grid.Neumann, V: -3},
		Up:    grid.BC[float64]{Kind: grid.Neumann, V: 3},
	}
	for _, st := range []pde.SolverType{pde.ExplicitEuler, pde.ImplicitEuler} {
		in, err := pde.NewInput2D[float64](u0, g, 0, 0, 0, 1e-3, st, pde.Centered, bcs)
		if err != nil {
			t.Fatal(err)
		}
		ops := linalg.NewDense[float64]()
		sv, err := New[float64, AdvectionDiffusion2D[float64]](ops, AdvectionDiffusion2D[float64]{In: in})
		if err != nil {
			t.Fatal(err)
		}
		if err := sv.Advance(9); err != nil {
			t.Fatalf("%s: %v", st, err)
		}
		sol, err := sv.Solution()
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < gx.N()-1; i++ {
			for j := 1; j < gy.N()-1; j++ {
				idx := g.Index(i, j)
				if e := math.Abs(sol[idx] - u0[idx]); e > 5e-9 {
					t.Fatalf("%s: interior node (%d,%d) drifted by %.3e", st, i, j, e)
				}
			}
		}
	}
}

// TestScenarioS3ConstantZeroVelocity reproduces spec §8 scenario S3: a 2D
// constant field under zero velocity and zero diffusion must stay constant.
func TestScenarioS3ConstantZeroVelocity(t *testing.T) {
	gx, err := grid.Linspace(0.0, 1.0, 10)
	if err != nil {
		t.Fatal(err)
	}
	gy, err := grid.Linspace(0.0, 1.0, 8)
	if err != nil {
		t.Fatal(err)
	}
	g := grid.NewGrid2D(gx, gy)
	u0 := make([]float64, g.M())
	for i := range u0 {
		u0[i] = 1.0
	}
	bcs := grid.BCs2D[float64]{
		Left:  grid.BC[float64]{Kind: grid.Dirichlet, V: 1},
		Right: grid.BC[float64]{Kind: grid.Dirichlet, V: 1},
		Down:  grid.BC[float64]{Kind: grid.Dirichlet, V: 1},
		Up:    grid.BC[float64]{Kind: grid.Dirichlet, V: 1},
	}
	for _, st := range []pde.SolverType{pde.ExplicitEuler, pde.ImplicitEuler} {
		in, err := pde.NewInput2D[float64](u0, g, 0, 0, 0, 1e-5, st, pde.Centered, bcs)
		if err != nil {
			t.Fatal(err)
		}
		ops := linalg.NewDense[float64]()
		sv, err := New[float64, AdvectionDiffusion2D[float64]](ops, AdvectionDiffusion2D[float64]{In: in})
		if err != nil {
			t.Fatal(err)
		}
		if err := sv.Advance(90); err != nil {
			t.Fatalf("%s: %v", st, err)
		}
		sol, err := sv.Solution()
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range sol {
			if e := math.Abs(v - 1.0); e > 1e-9 {
				t.Fatalf("%s: node %d deviates by %.3e from 1.0", st, i, e)
			}
		}
	}
}

// TestScenarioS6LaxWendroffCoercion reproduces spec §8 scenario S6: requesting
// CrankNicolson with LaxWendroff must coerce to ExplicitEuler and match an
// explicit LaxWendroff run bit for bit.
func TestScenarioS6LaxWendroffCoercion(t *testing.T) {
	g, err := grid.Linspace(0.0, 1.0, 17)
	if err != nil {
		t.Fatal(err)
	}
	u0 := make([]float64, g.N())
	for i, x := range g.Coords() {
		u0[i] = math.Sin(2 * math.Pi * x)
	}
	bcs := grid.BCs1D[float64]{
		Left:  grid.BC[float64]{Kind: grid.Periodic},
		Right: grid.BC[float64]{Kind: grid.Periodic},
	}
	coerced, err := pde.NewInput1D[float64](u0, g, 0.5, 0.01, 1e-4, pde.CrankNicolson, pde.LaxWendroff, bcs)
	if err != nil {
		t.Fatal(err)
	}
	if coerced.Solver != pde.ExplicitEuler {
		t.Fatalf("expected coercion to ExplicitEuler, got %s", coerced.Solver)
	}
	explicit, err := pde.NewInput1D[float64](u0, g, 0.5, 0.01, 1e-4, pde.ExplicitEuler, pde.LaxWendroff, bcs)
	if err != nil {
		t.Fatal(err)
	}

	ops := linalg.NewDense[float64]()
	svA, err := New[float64, AdvectionDiffusion1D[float64]](ops, AdvectionDiffusion1D[float64]{In: coerced})
	if err != nil {
		t.Fatal(err)
	}
	svB, err := New[float64, AdvectionDiffusion1D[float64]](ops, AdvectionDiffusion1D[float64]{In: explicit})
	if err != nil {
		t.Fatal(err)
	}
	if err := svA.Advance(20); err != nil {
		t.Fatal(err)
	}
	if err := svB.Advance(20); err != nil {
		t.Fatal(err)
	}
	solA, _ := svA.Solution()
	solB, _ := svB.Solution()
	for i := range solA {
		if solA[i] != solB[i] {
			t.Fatalf("node %d: %v != %v, expected bit-identical results", i, solA[i], solB[i])
		}
	}
}

// TestScenarioS5WaveStandingWave reproduces spec §8 scenario S5: a standing
// wave sin(pi*x) with zero initial velocity, Dirichlet-zero ends, must reach
// cos(pi*t)*sin(pi*x) at t=1 within 5e-3 in max norm.
func TestScenarioS5WaveStandingWave(t *testing.T) {
	g, err := grid.Linspace(0.0, 1.0, 65)
	if err != nil {
		t.Fatal(err)
	}
	u0 := make([]float64, g.N())
	v0 := make([]float64, g.N())
	for i, x := range g.Coords() {
		u0[i] = math.Sin(math.Pi * x)
	}
	bcs := grid.BCs1D[float64]{
		Left:  grid.BC[float64]{Kind: grid.Dirichlet, V: 0},
		Right: grid.BC[float64]{Kind: grid.Dirichlet, V: 0},
	}
	in, err := pde.NewWaveInput1D[float64](u0, v0, g, 1.0, 0, 1e-4, pde.ExplicitEuler, pde.Centered, bcs)
	if err != nil {
		t.Fatal(err)
	}
	ops := linalg.NewDense[float64]()
	eq := Wave1D[float64]{In: in}
	sv, err := New[float64, Wave1D[float64]](ops, eq)
	if err != nil {
		t.Fatal(err)
	}
	if err := sv.Advance(10000); err != nil {
		t.Fatal(err)
	}
	sol, err := sv.Solution()
	if err != nil {
		t.Fatal(err)
	}
	pos := eq.PositionOf(sol)
	decay := math.Cos(math.Pi * 1.0)
	maxErr := 0.0
	for i, x := range g.Coords() {
		exact := decay * math.Sin(math.Pi*x)
		if e := math.Abs(pos[i] - exact); e > maxErr {
			maxErr = e
		}
	}
	if maxErr > 5e-3 {
		t.Fatalf("max error %.3e exceeds 5e-3", maxErr)
	}
}
