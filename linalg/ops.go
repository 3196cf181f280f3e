// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg is the engine's dense linear-algebra capability (§6 of the
// design): construct zero matrix, write a row, dense matrix-matrix
// multiply, dense matrix-vector multiply, dense linear solve, vector axpy,
// vector copy, identity fill. spatial, tint and solver are written only
// against Ops[T]; Dense[T] is the sole (CPU) backend, built on
// github.com/cpmech/gosl/la.
package linalg

import "github.com/cpmech/pdefd/scalar"

// Matrix is a dense, row-major matrix of scalars. Rows() and Cols() report
// its shape; zero value is not usable, always obtain one from Ops.
type Matrix[T scalar.Real] [][]T

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return len(m) }

// Cols returns the number of columns, or 0 for an empty matrix.
func (m Matrix[T]) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Vector is a dense column vector of scalars.
type Vector[T scalar.Real] []T

// Ops is the capability an embedder supplies at construction time. It
// parameterizes the scalar type only; a future non-CPU backend would
// implement the same interface and be swapped in at the call site that
// builds the Solver, with no change to spatial, tint or solver.
type Ops[T scalar.Real] interface {
	// ZeroMatrix allocates an rows x cols matrix filled with zero.
	ZeroMatrix(rows, cols int) Matrix[T]

	// Identity allocates an n x n identity matrix.
	Identity(n int) Matrix[T]

	// WriteRow overwrites row `row` of m with vals. len(vals) must equal m.Cols().
	WriteRow(m Matrix[T], row int, vals []T)

	// MatMul computes dst := a * b. dst must be preallocated to a.Rows() x b.Cols().
	MatMul(dst, a, b Matrix[T])

	// MatVec computes dst := a * v. dst must be preallocated to a.Rows().
	MatVec(dst Vector[T], a Matrix[T], v Vector[T])

	// Solve returns x solving a*x = rhs (rhs and the result share shape,
	// one column per right-hand side) in a newly allocated matrix; a and
	// rhs are not modified. Used during tint.Build only, never per
	// micro-step: it is the dense-solve primitive of §6, exercised once per
	// parameter set when an implicit family needs to invert (I +/- c*dt*L).
	Solve(a, rhs Matrix[T]) (Matrix[T], error)

	// Axpy computes dst := alpha*x + y, writing into dst (dst may alias y).
	Axpy(dst Vector[T], alpha T, x, y Vector[T])

	// Copy copies src into dst. len(dst) must equal len(src).
	Copy(dst, src Vector[T])
}
