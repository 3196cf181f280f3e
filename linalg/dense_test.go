// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestDenseMatVec(t *testing.T) {
	ops := NewDense[float64]()
	a := Matrix[float64]{{1, 2}, {3, 4}}
	v := Vector[float64]{5, 6}
	dst := make(Vector[float64], 2)
	ops.MatVec(dst, a, v)
	chk.Array(t, "a*v", 1e-14, dst, []float64{17, 39})
}

func TestDenseMatMul(t *testing.T) {
	ops := NewDense[float64]()
	a := Matrix[float64]{{1, 2}, {3, 4}}
	b := Matrix[float64]{{5, 6}, {7, 8}}
	dst := ops.ZeroMatrix(2, 2)
	ops.MatMul(dst, a, b)
	chk.Array(t, "row0", 1e-14, dst[0], []float64{19, 22})
	chk.Array(t, "row1", 1e-14, dst[1], []float64{43, 50})
}

func TestDenseSolveIdentity(t *testing.T) {
	ops := NewDense[float64]()
	a := ops.Identity(3)
	rhs := Matrix[float64]{{1, 0}, {0, 1}, {2, 3}}
	x, err := ops.Solve(a, rhs)
	if err != nil {
		t.Fatal(err)
	}
	for i := range rhs {
		chk.Array(t, "row", 1e-12, x[i], rhs[i])
	}
}

func TestDenseSolveInverts2x2(t *testing.T) {
	ops := NewDense[float64]()
	a := Matrix[float64]{{2, 0}, {0, 4}}
	rhs := ops.Identity(2)
	x, err := ops.Solve(a, rhs)
	if err != nil {
		t.Fatal(err)
	}
	chk.Array(t, "row0", 1e-12, x[0], []float64{0.5, 0})
	chk.Array(t, "row1", 1e-12, x[1], []float64{0, 0.25})
}

func TestDenseAxpy(t *testing.T) {
	ops := NewDense[float64]()
	x := Vector[float64]{1, 2, 3}
	y := Vector[float64]{10, 10, 10}
	dst := make(Vector[float64], 3)
	ops.Axpy(dst, 2, x, y)
	chk.Array(t, "dst", 1e-14, dst, []float64{12, 14, 16})
}
