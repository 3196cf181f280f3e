// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tint ("time integrator") builds the rank-3 tensor T of spec §4.3:
// given L and dt, it computes the k matrices T0..T(k-1) such that
// u^(n+1) = sum_j T_j * u^(n-j) + b. Build is called once per (L, dt,
// SolverType) tuple and its result is reused for every subsequent
// micro-step (spec §3: "rebuilt only if inputs change").
package tint

import (
	"math"

	"github.com/cpmech/pdefd/linalg"
	"github.com/cpmech/pdefd/pde"
	"github.com/cpmech/pdefd/pdeerr"
	"github.com/cpmech/pdefd/scalar"
)

func errUnknownSolverType(st pde.SolverType) error {
	return pdeerr.NewConfigError("tint: unsupported solver type %s", st)
}

// Tensor is T0..T(k-1), k = solverType.Steps().
type Tensor[T scalar.Real] []linalg.Matrix[T]

// Build dispatches on st and returns the corresponding Tensor, per the
// table in spec §4.3.
func Build[T scalar.Real](ops linalg.Ops[T], l linalg.Matrix[T], dt T, st pde.SolverType) (Tensor[T], error) {
	n := l.Rows()
	I := ops.Identity(n)
	dtL := scale(ops, n, l, dt)

	switch st {
	case pde.ExplicitEuler:
		return Tensor[T]{addMat(ops, n, I, dtL)}, nil

	case pde.ImplicitEuler:
		a := subMat(ops, n, I, dtL)
		t0, err := ops.Solve(a, I)
		if err != nil {
			return nil, err
		}
		return Tensor[T]{t0}, nil

	case pde.CrankNicolson:
		half := scale(ops, n, l, dt/2)
		lhs := subMat(ops, n, I, half)
		rhs := addMat(ops, n, I, half)
		t0, err := ops.Solve(lhs, rhs)
		if err != nil {
			return nil, err
		}
		return Tensor[T]{t0}, nil

	case pde.RungeKuttaRalston, pde.RungeKutta3, pde.RungeKutta4, pde.RungeKuttaThreeEight:
		// spec §9 (ii),(iii): on a linear autonomous operator these four
		// variants all reduce to a truncated matrix-exponential series, one
		// term per order: Ralston 2nd, RK3 3rd, RK4/ThreeEight 4th (the
		// latter two coincide exactly). Adopted here rather than re-derived
		// per Butcher tableau.
		order := seriesOrder(st)
		return Tensor[T]{truncatedExpSeries(ops, n, I, dtL, order)}, nil

	case pde.RungeKuttaGaussLegendre4:
		t0, err := gaussLegendre4(ops, n, I, l, dt)
		if err != nil {
			return nil, err
		}
		return Tensor[T]{t0}, nil

	case pde.RichardsonExtrapolation2:
		mHalf := addMat(ops, n, I, scale(ops, n, l, dt/2))
		mHalf2 := matMul(ops, n, mHalf, mHalf)
		mFull := addMat(ops, n, I, dtL)
		t0 := subMat(ops, n, scaleMat(ops, n, mHalf2, 2), mFull)
		return Tensor[T]{t0}, nil

	case pde.RichardsonExtrapolation3:
		mThird := addMat(ops, n, I, scale(ops, n, l, dt/3))
		mThird3 := matMul(ops, n, matMul(ops, n, mThird, mThird), mThird)
		mFull := addMat(ops, n, I, dtL)
		num := subMat(ops, n, scaleMat(ops, n, mThird3, 9), mFull)
		t0 := scaleMat(ops, n, num, 1.0/8.0)
		return Tensor[T]{t0}, nil

	case pde.AdamsBashforth2:
		t0 := addMat(ops, n, I, scale(ops, n, l, dt*1.5))
		t1 := scale(ops, n, l, -dt*0.5)
		return Tensor[T]{t0, t1}, nil

	case pde.AdamsMouldon2:
		a := subMat(ops, n, I, scale(ops, n, l, dt*5.0/12.0))
		rhs0 := addMat(ops, n, I, scale(ops, n, l, dt*8.0/12.0))
		rhs1 := scale(ops, n, l, -dt/12.0)
		rhs := concatCols(ops, n, rhs0, rhs1)
		sol, err := ops.Solve(a, rhs)
		if err != nil {
			return nil, err
		}
		t0, t1 := splitCols(sol, n)
		return Tensor[T]{t0, t1}, nil

	default:
		return nil, errUnknownSolverType(st)
	}
}

func seriesOrder(st pde.SolverType) int {
	switch st {
	case pde.RungeKuttaRalston:
		return 2
	case pde.RungeKutta3:
		return 3
	default: // RungeKutta4, RungeKuttaThreeEight
		return 4
	}
}

// truncatedExpSeries computes sum_{j=0..order} (dtL)^j / j!, with (dtL)^0 = I.
func truncatedExpSeries[T scalar.Real](ops linalg.Ops[T], n int, I, dtL linalg.Matrix[T], order int) linalg.Matrix[T] {
	acc := ops.ZeroMatrix(n, n)
	for i := range acc {
		copy(acc[i], I[i])
	}
	term := ops.ZeroMatrix(n, n)
	for i := range term {
		copy(term[i], I[i])
	}
	fact := 1.0
	for j := 1; j <= order; j++ {
		term = matMul(ops, n, term, dtL)
		fact *= float64(j)
		acc = addMat(ops, n, acc, scaleMat(ops, n, term, 1/fact))
	}
	return acc
}

// gaussLegendre4 applies the 2-stage Gauss-Legendre tableau
// A = [[1/4, 1/4-sqrt(3)/6], [1/4+sqrt(3)/6, 1/4]], b = [1/2, 1/2], to a
// linear autonomous L: the stage equations collapse to one dense solve for
// the two block-stage unknowns, which this function performs directly
// rather than iterating a generic implicit-RK stage solver (since the
// right-hand side is linear, the fixed-point iteration a nonlinear-RK
// driver would use converges in one linear solve).
func gaussLegendre4[T scalar.Real](ops linalg.Ops[T], n int, I linalg.Matrix[T], l linalg.Matrix[T], dt T) (linalg.Matrix[T], error) {
	sqrt3 := math.Sqrt(3)
	a11 := T(0.25)
	a12 := T(0.25 - sqrt3/6)
	a21 := T(0.25 + sqrt3/6)
	a22 := T(0.25)

	// Build the 2n x 2n linear system for the stage derivatives k1,k2 solving
	//   k1 = L(u + dt(a11 k1 + a12 k2))
	//   k2 = L(u + dt(a21 k1 + a22 k2))
	// i.e. (I2n - dt*Abar) K = [L; L] u, where Abar embeds A (x) L.
	big := ops.ZeroMatrix(2*n, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			big[i][j] = -dt * a11 * l[i][j]
			big[i][n+j] = -dt * a12 * l[i][j]
			big[n+i][j] = -dt * a21 * l[i][j]
			big[n+i][n+j] = -dt * a22 * l[i][j]
		}
		big[i][i] += 1
		big[n+i][n+i] += 1
	}
	rhs := ops.ZeroMatrix(2*n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rhs[i][j] = l[i][j]
			rhs[n+i][j] = l[i][j]
		}
	}
	kSol, err := ops.Solve(big, rhs)
	if err != nil {
		return nil, err
	}
	// u_{n+1} = u_n + dt*(b1 k1 + b2 k2) = u_n + dt/2*(k1+k2); k_i(u) are
	// linear maps of u (columns of kSol), so T0 = I + dt/2*(K1+K2).
	t0 := ops.ZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t0[i][j] = (dt / 2) * (kSol[i][j] + kSol[n+i][j])
		}
		t0[i][i] += 1
	}
	return t0, nil
}

func scale[T scalar.Real](ops linalg.Ops[T], n int, l linalg.Matrix[T], c T) linalg.Matrix[T] {
	out := ops.ZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = c * l[i][j]
		}
	}
	return out
}

func scaleMat[T scalar.Real](ops linalg.Ops[T], n int, a linalg.Matrix[T], c float64) linalg.Matrix[T] {
	out := ops.ZeroMatrix(n, n)
	cT := T(c)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = cT * a[i][j]
		}
	}
	return out
}

func addMat[T scalar.Real](ops linalg.Ops[T], n int, a, b linalg.Matrix[T]) linalg.Matrix[T] {
	out := ops.ZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = a[i][j] + b[i][j]
		}
	}
	return out
}

func subMat[T scalar.Real](ops linalg.Ops[T], n int, a, b linalg.Matrix[T]) linalg.Matrix[T] {
	out := ops.ZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = a[i][j] - b[i][j]
		}
	}
	return out
}

func matMul[T scalar.Real](ops linalg.Ops[T], n int, a, b linalg.Matrix[T]) linalg.Matrix[T] {
	out := ops.ZeroMatrix(n, n)
	ops.MatMul(out, a, b)
	return out
}

func concatCols[T scalar.Real](ops linalg.Ops[T], n int, a, b linalg.Matrix[T]) linalg.Matrix[T] {
	out := ops.ZeroMatrix(n, 2*n)
	for i := 0; i < n; i++ {
		copy(out[i][:n], a[i])
		copy(out[i][n:], b[i])
	}
	return out
}

func splitCols[T scalar.Real](m linalg.Matrix[T], n int) (linalg.Matrix[T], linalg.Matrix[T]) {
	a := make(linalg.Matrix[T], n)
	b := make(linalg.Matrix[T], n)
	for i := 0; i < n; i++ {
		a[i] = append([]T(nil), m[i][:n]...)
		b[i] = append([]T(nil), m[i][n:]...)
	}
	return a, b
}
