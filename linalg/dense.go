// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/pdefd/scalar"
)

// matInvTol is the pivot tolerance passed to la.MatInvG when tint.Build
// inverts (I +/- c*dt*L) for an implicit family. Mirrors the tolerance
// gofem's shp and msolid packages pass to MatInvG.
const matInvTol = 1e-10

// Dense is the CPU Ops[T] implementation, backed by github.com/cpmech/gosl/la.
// gosl/la works in float64; Dense converts at the boundary and computes in
// float64 internally regardless of T, matching the precision gosl itself
// provides (there is no float32 BLAS-equivalent kernel in gosl/la to reuse).
type Dense[T scalar.Real] struct{}

// NewDense returns the dense CPU linear-algebra capability.
func NewDense[T scalar.Real]() Dense[T] { return Dense[T]{} }

func (Dense[T]) ZeroMatrix(rows, cols int) Matrix[T] {
	a := la.MatAlloc(rows, cols)
	la.MatFill(a, 0)
	return toMatrixT[T](a)
}

func (Dense[T]) Identity(n int) Matrix[T] {
	a := la.MatAlloc(n, n)
	la.MatFill(a, 0)
	for i := 0; i < n; i++ {
		a[i][i] = 1
	}
	return toMatrixT[T](a)
}

func (Dense[T]) WriteRow(m Matrix[T], row int, vals []T) {
	copy(m[row], vals)
}

// MatMul computes dst := a * b by direct triple-loop accumulation. gosl/la
// exposes transposed dense products (MatTrMul, MatTrMul3) for FEM stiffness
// assembly but no plain dense-dense product under any name observed in the
// teacher or the rest of the pack, so this one routine is written directly
// rather than invented against a nonexistent symbol (see DESIGN.md).
func (Dense[T]) MatMul(dst, a, b Matrix[T]) {
	n := a.Rows()
	k := a.Cols()
	m := b.Cols()
	for i := 0; i < n; i++ {
		row := dst[i]
		for j := 0; j < m; j++ {
			row[j] = 0
		}
		for p := 0; p < k; p++ {
			aip := a[i][p]
			if aip == 0 {
				continue
			}
			brow := b[p]
			for j := 0; j < m; j++ {
				row[j] += aip * brow[j]
			}
		}
	}
}

func (Dense[T]) MatVec(dst Vector[T], a Matrix[T], v Vector[T]) {
	af := toFloat64Mat(a)
	vf := toFloat64Vec(v)
	rf := make([]float64, a.Rows())
	la.MatVecMul(rf, 1, af, vf)
	fromFloat64Vec(dst, rf)
}

// Solve returns x solving a*x = rhs by inverting a once with la.MatInvG and
// forming a^-1 * rhs. a is the full M x M (or 2M x 2M for the wave block)
// operator, not a small FEM Jacobian, so this uses the general Gauss-Jordan
// inverter the corpus reserves for n>3 (la.MatInv elsewhere in the pack is
// only ever applied to <=3x3 Jacobians). Every call site in this module
// invokes Solve exactly once per (L, dt, scheme) tuple, inside tint.Build,
// never per micro-step.
func (Dense[T]) Solve(a, rhs Matrix[T]) (Matrix[T], error) {
	n := a.Rows()
	af := toFloat64Mat(a)
	inv := la.MatAlloc(n, n)
	err := la.MatInvG(inv, af, matInvTol)
	if err != nil {
		return nil, err
	}
	rhsf := toFloat64Mat(rhs)
	dst := la.MatAlloc(n, rhs.Cols())
	matMulFloat64(dst, inv, rhsf)
	return toMatrixT[T](dst), nil
}

// matMulFloat64 computes dst := a * b in float64, the precision la.MatInvG
// itself works in.
func matMulFloat64(dst, a, b [][]float64) {
	n, k, m := len(a), len(a[0]), len(b[0])
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			dst[i][j] = 0
		}
		for p := 0; p < k; p++ {
			aip := a[i][p]
			if aip == 0 {
				continue
			}
			for j := 0; j < m; j++ {
				dst[i][j] += aip * b[p][j]
			}
		}
	}
}

func (Dense[T]) Axpy(dst Vector[T], alpha T, x, y Vector[T]) {
	xf := toFloat64Vec(x)
	yf := toFloat64Vec(y)
	la.VecAdd(yf, float64(alpha), xf)
	fromFloat64Vec(dst, yf)
}

func (Dense[T]) Copy(dst, src Vector[T]) {
	copy(dst, src)
}

func toFloat64Mat[T scalar.Real](m Matrix[T]) [][]float64 {
	out := la.MatAlloc(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = float64(m[i][j])
		}
	}
	return out
}

func toFloat64Vec[T scalar.Real](v Vector[T]) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = float64(v[i])
	}
	return out
}

func fromFloat64Vec[T scalar.Real](dst Vector[T], src []float64) {
	for i := range src {
		dst[i] = T(src[i])
	}
}

func toMatrixT[T scalar.Real](a [][]float64) Matrix[T] {
	out := make(Matrix[T], len(a))
	for i := range a {
		out[i] = make([]T, len(a[i]))
		for j := range a[i] {
			out[i][j] = T(a[i][j])
		}
	}
	return out
}
