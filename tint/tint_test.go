// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tint

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/pdefd/linalg"
	"github.com/cpmech/pdefd/pde"
)

func sampleL() linalg.Matrix[float64] {
	// a small, diagonally dominant 3x3 operator: stable under every
	// scheme in the table for this dt, so idempotence checks aren't swamped
	// by instability.
	return linalg.Matrix[float64]{
		{-2, 1, 0},
		{1, -2, 1},
		{0, 1, -2},
	}
}

// TestBuildZeroDtIsIdentity checks that every scheme's T0 is close to I for
// a tiny dt, since all of them are consistent discretizations of a finite
// difference in time. Only T0 is checked, not the higher steps.
func TestBuildZeroDtIsIdentity(t *testing.T) {
	ops := linalg.NewDense[float64]()
	l := sampleL()
	schemes := []pde.SolverType{
		pde.ExplicitEuler, pde.ImplicitEuler, pde.CrankNicolson,
		pde.RungeKuttaRalston, pde.RungeKutta3, pde.RungeKutta4, pde.RungeKuttaThreeEight,
		pde.RungeKuttaGaussLegendre4, pde.RichardsonExtrapolation2, pde.RichardsonExtrapolation3,
		pde.AdamsBashforth2, pde.AdamsMouldon2,
	}
	for _, st := range schemes {
		tensor, err := Build[float64](ops, l, 1e-9, st)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", st, err)
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				chk.Scalar(t, st.String(), 1e-6, tensor[0][i][j], want)
			}
		}
	}
}

// TestBuildRK4AndThreeEightAgree checks the documented §9 fact that
// RungeKutta4 and RungeKuttaThreeEight coincide on a linear autonomous
// operator.
func TestBuildRK4AndThreeEightAgree(t *testing.T) {
	ops := linalg.NewDense[float64]()
	l := sampleL()
	t4, err := Build[float64](ops, l, 0.05, pde.RungeKutta4)
	if err != nil {
		t.Fatal(err)
	}
	t38, err := Build[float64](ops, l, 0.05, pde.RungeKuttaThreeEight)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		chk.Array(t, "row", 1e-12, t4[0][i], t38[0][i])
	}
}

// TestBuildRalstonIsSecondOrder checks the spec §4.3 table's explicit
// series for RungeKuttaRalston: T0 = I + dt*L + 1/2*(dt*L)^2, i.e. it omits
// the cubic term RungeKutta3 carries.
func TestBuildRalstonIsSecondOrder(t *testing.T) {
	ops := linalg.NewDense[float64]()
	l := sampleL()
	dt := 0.05
	ralston, err := Build[float64](ops, l, dt, pde.RungeKuttaRalston)
	if err != nil {
		t.Fatal(err)
	}
	n := len(l)
	dtL := ops.ZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dtL[i][j] = dt * l[i][j]
		}
	}
	dtL2 := ops.ZeroMatrix(n, n)
	ops.MatMul(dtL2, dtL, dtL)
	want := ops.ZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want[i][j] = dtL[i][j] + 0.5*dtL2[i][j]
			if i == j {
				want[i][j] += 1
			}
		}
	}
	for i := 0; i < n; i++ {
		chk.Array(t, "row", 1e-12, ralston[0][i], want[i])
	}

	rk3, err := Build[float64](ops, l, dt, pde.RungeKutta3)
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := 0; i < n && same; i++ {
		for j := 0; j < n; j++ {
			if ralston[0][i][j] != rk3[0][i][j] {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("Ralston and RK3 tensors must differ: Ralston is 2nd order, RK3 is 3rd")
	}
}

func TestBuildAdamsBashforth2HasTwoSteps(t *testing.T) {
	ops := linalg.NewDense[float64]()
	tensor, err := Build[float64](ops, sampleL(), 0.01, pde.AdamsBashforth2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tensor) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(tensor))
	}
}

// TestBuildIdempotent checks invariant 5 (spec §8): rebuilding T with
// identical inputs yields a bit-identical tensor.
func TestBuildIdempotent(t *testing.T) {
	ops := linalg.NewDense[float64]()
	l := sampleL()
	schemes := []pde.SolverType{
		pde.ExplicitEuler, pde.ImplicitEuler, pde.CrankNicolson,
		pde.RungeKuttaRalston, pde.RungeKutta3, pde.RungeKutta4, pde.RungeKuttaThreeEight,
		pde.RungeKuttaGaussLegendre4, pde.RichardsonExtrapolation2, pde.RichardsonExtrapolation3,
		pde.AdamsBashforth2, pde.AdamsMouldon2,
	}
	for _, st := range schemes {
		t1, err := Build[float64](ops, l, 0.01, st)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", st, err)
		}
		t2, err := Build[float64](ops, l, 0.01, st)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", st, err)
		}
		for j := range t1 {
			for i := 0; i < 3; i++ {
				for col := 0; col < 3; col++ {
					if t1[j][i][col] != t2[j][i][col] {
						t.Fatalf("%s: step %d row %d col %d not bit-identical: %v != %v", st, j, i, col, t1[j][i][col], t2[j][i][col])
					}
				}
			}
		}
	}
}

func TestBuildUnknownSolverType(t *testing.T) {
	ops := linalg.NewDense[float64]()
	_, err := Build[float64](ops, sampleL(), 0.01, pde.SolverType(999))
	if err == nil {
		t.Fatal("expected an error for an unrecognized solver type")
	}
}
