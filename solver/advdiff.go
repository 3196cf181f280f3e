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

// AdvectionDiffusion1D adapts a pde.Input1D into the generic solver's
// Equation[T] interface (spec §9: "each equation supplying two pure
// builder operations").
type AdvectionDiffusion1D[T scalar.Real] struct {
	In *pde.Input1D[T]
}

func (e AdvectionDiffusion1D[T]) BuildL(ops linalg.Ops[T]) linalg.Matrix[T] {
	d := spatial.New[T](ops)
	return d.BuildL1D(e.In.Grid, e.In.Velocity, e.In.Diffusion, e.In.Space, e.In.Dt, e.In.BCs)
}

func (e AdvectionDiffusion1D[T]) BuildB() []T {
	return spatial.BuildB1D(e.In.Grid, e.In.BCs)
}

func (e AdvectionDiffusion1D[T]) InitialHistory(k int) [][]T {
	hist := make([][]T, k)
	for j := range hist {
		cp := make([]T, len(e.In.U0))
		copy(cp, e.In.U0)
		hist[j] = cp
	}
	return hist
}

func (e AdvectionDiffusion1D[T]) DirichletMask() []bool {
	return spatial.DirichletMask1D[T](e.In.Grid.N(), e.In.BCs)
}

func (e AdvectionDiffusion1D[T]) Solver() pde.SolverType          { return e.In.Solver }
func (e AdvectionDiffusion1D[T]) Space() pde.SpaceDiscretizerType { return e.In.Space }
func (e AdvectionDiffusion1D[T]) Dt() T                           { return e.In.Dt }
func (e AdvectionDiffusion1D[T]) Size() int                       { return e.In.Grid.N() }

// AdvectionDiffusion2D is the 2D counterpart.
type AdvectionDiffusion2D[T scalar.Real] struct {
	In *pde.Input2D[T]
}

func (e AdvectionDiffusion2D[T]) BuildL(ops linalg.Ops[T]) linalg.Matrix[T] {
	d := spatial.New[T](ops)
	return d.BuildL2D(e.In.Grid, e.In.VelocityX, e.In.VelocityY, e.In.Diffusion, e.In.Space, e.In.Dt, e.In.BCs)
}

func (e AdvectionDiffusion2D[T]) BuildB() []T {
	return spatial.BuildB2D(e.In.Grid, e.In.BCs)
}

func (e AdvectionDiffusion2D[T]) InitialHistory(k int) [][]T {
	hist := make([][]T, k)
	for j := range hist {
		cp := make([]T, len(e.In.U0))
		copy(cp, e.In.U0)
		hist[j] = cp
	}
	return hist
}

func (e AdvectionDiffusion2D[T]) DirichletMask() []bool {
	return spatial.DirichletMask2D[T](e.In.Grid, e.In.BCs)
}

func (e AdvectionDiffusion2D[T]) Solver() pde.SolverType          { return e.In.Solver }
func (e AdvectionDiffusion2D[T]) Space() pde.SpaceDiscretizerType { return e.In.Space }
func (e AdvectionDiffusion2D[T]) Dt() T                           { return e.In.Dt }
func (e AdvectionDiffusion2D[T]) Size() int                       { return e.In.Grid.M() }
