// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/pdefd/linalg"
	"github.com/cpmech/pdefd/pde"
	"github.com/cpmech/pdefd/scalar"
	"github.com/cpmech/pdefd/spatial"
)

// Wave1D adapts a pde.WaveInput1D into the generic solver's Equation[T]
// interface via the first-order reduction of spec §4.3: state z=(u,w) with
// w=du/dt, d/dt[u;w] = [[0,I],[c^2*Laplacian, -v*grad]]*[u;w]. Lu carries the
// diffusion-only c^2*Laplacian(u) term, Lw the convection-only -v*grad(w)
// term; they are built independently with spatial.BuildL1D since neither is
// a mixed advection-diffusion stencil on its own.
type Wave1D[T scalar.Real] struct {
	In *pde.WaveInput1D[T]
}

func (e Wave1D[T]) n() int { return e.In.Grid.N() }

func (e Wave1D[T]) BuildL(ops linalg.Ops[T]) linalg.Matrix[T] {
	d := spatial.New[T](ops)
	n := e.n()
	lu := d.BuildL1D(e.In.Grid, 0, e.In.Speed*e.In.Speed, e.In.Space, e.In.Dt, e.In.BCs)
	lw := d.BuildL1D(e.In.Grid, e.In.Velocity, 0, e.In.Space, e.In.Dt, e.In.BCs)
	return assembleWaveBlock(ops, n, lu, lw)
}

func (e Wave1D[T]) BuildB() []T {
	n := e.n()
	b := make([]T, 2*n)
	copy(b[:n], spatial.BuildB1D(e.In.Grid, e.In.BCs))
	return b
}

func (e Wave1D[T]) InitialHistory(k int) [][]T {
	n := e.n()
	z := make([]T, 2*n)
	copy(z[:n], e.In.U0)
	copy(z[n:], e.In.V0)
	hist := make([][]T, k)
	for j := range hist {
		cp := make([]T, 2*n)
		copy(cp, z)
		hist[j] = cp
	}
	return hist
}

func (e Wave1D[T]) DirichletMask() []bool {
	n := e.n()
	mask := make([]bool, 2*n)
	copy(mask, spatial.DirichletMask1D[T](n, e.In.BCs))
	return mask
}

func (e Wave1D[T]) Solver() pde.SolverType          { return e.In.Solver }
func (e Wave1D[T]) Space() pde.SpaceDiscretizerType { return e.In.Space }
func (e Wave1D[T]) Dt() T                           { return e.In.Dt }
func (e Wave1D[T]) Size() int                       { return 2 * e.n() }

// PositionOf extracts the displacement field u from a full (u,w) state
// vector, as returned by Solver.Solution for a Wave1D equation.
func (e Wave1D[T]) PositionOf(state []T) []T {
	n := e.n()
	out := make([]T, n)
	copy(out, state[:n])
	return out
}

// Wave2D is the 2D counterpart of Wave1D.
type Wave2D[T scalar.Real] struct {
	In *pde.WaveInput2D[T]
}

func (e Wave2D[T]) m() int { return e.In.Grid.M() }

func (e Wave2D[T]) BuildL(ops linalg.Ops[T]) linalg.Matrix[T] {
	d := spatial.New[T](ops)
	m := e.m()
	lu := d.BuildL2D(e.In.Grid, 0, 0, e.In.Speed*e.In.Speed, e.In.Space, e.In.Dt, e.In.BCs)
	lw := d.BuildL2D(e.In.Grid, e.In.VelocityX, e.In.VelocityY, 0, e.In.Space, e.In.Dt, e.In.BCs)
	return assembleWaveBlock(ops, m, lu, lw)
}

func (e Wave2D[T]) BuildB() []T {
	m := e.m()
	b := make([]T, 2*m)
	copy(b[:m], spatial.BuildB2D(e.In.Grid, e.In.BCs))
	return b
}

func (e Wave2D[T]) InitialHistory(k int) [][]T {
	m := e.m()
	z := make([]T, 2*m)
	copy(z[:m], e.In.U0)
	copy(z[m:], e.In.V0)
	hist := make([][]T, k)
	for j := range hist {
		cp := make([]T, 2*m)
		copy(cp, z)
		hist[j] = cp
	}
	return hist
}

func (e Wave2D[T]) DirichletMask() []bool {
	m := e.m()
	mask := make([]bool, 2*m)
	copy(mask, spatial.DirichletMask2D[T](e.In.Grid, e.In.BCs))
	return mask
}

func (e Wave2D[T]) Solver() pde.SolverType          { return e.In.Solver }
func (e Wave2D[T]) Space() pde.SpaceDiscretizerType { return e.In.Space }
func (e Wave2D[T]) Dt() T                           { return e.In.Dt }
func (e Wave2D[T]) Size() int                       { return 2 * e.m() }

// PositionOf extracts the displacement field u from a full (u,w) state.
func (e Wave2D[T]) PositionOf(state []T) []T {
	m := e.m()
	out := make([]T, m)
	copy(out, state[:m])
	return out
}

// assembleWaveBlock materializes [[0,I],[lu,lw]] as one dense 2n x 2n matrix.
func assembleWaveBlock[T scalar.Real](ops linalg.Ops[T], n int, lu, lw linalg.Matrix[T]) linalg.Matrix[T] {
	block := ops.ZeroMatrix(2*n, 2*n)
	for i := 0; i < n; i++ {
		block[i][n+i] = 1
		copy(block[n+i][:n], lu[i])
		copy(block[n+i][n:], lw[i])
	}
	return block
}
