// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/pdefd/grid"
	"github.com/cpmech/pdefd/scalar"
)

// bellFunc is a fun.Func literal for the built-in radial bell
// exp(-1/4*||x||^2) (main.cpp's `exp(-.25 * _grid[i] * _grid[i])` fallback,
// generalized to an arbitrary number of coordinates). Expressing it as a
// fun.Func rather than a bare closure keeps it swappable with a future
// file-driven fun.File/fun.Spline IC without changing DefaultBell1D/2D's
// signature.
type bellFunc struct{}

// F evaluates the bell at position x; t is unused since the built-in IC is
// time-independent.
func (bellFunc) F(t float64, x []float64) float64 {
	r2 := 0.0
	for _, xi := range x {
		r2 += xi * xi
	}
	return math.Exp(-0.25 * r2)
}

// BellIC is the built-in initial-condition function spec §6 describes as
// the default when -ic is absent.
var BellIC fun.Func = bellFunc{}

// DefaultGrid1D builds the linspace(0, 1, 128) grid spec §6 describes as
// the 1D default when -g is absent.
func DefaultGrid1D[T scalar.Real]() (*grid.Grid1D[T], error) {
	return grid.Linspace[T](0, 1, 128)
}

// DefaultGrid2D builds the linspace(-4, 4, 128) x linspace(-4, 4, 128) grid
// spec §6 describes as the 2D default, matching the original's
// `LinSpace(-4.0, 4.0, 128u)` fallback (main.cpp's runner1D; the 2D runner
// applies the same default independently to x and y).
func DefaultGrid2D[T scalar.Real]() (*grid.Grid2D[T], error) {
	x, err := DefaultAxisGrid2D[T]()
	if err != nil {
		return nil, err
	}
	y, err := DefaultAxisGrid2D[T]()
	if err != nil {
		return nil, err
	}
	return grid.NewGrid2D(x, y), nil
}

// DefaultAxisGrid2D builds one axis (linspace(-4, 4, 128)) of the 2D default
// grid; callers loading x and y independently (one from file, the other
// falling back) use this instead of DefaultGrid1D, whose linspace(0, 1, 128)
// is the 1D default only.
func DefaultAxisGrid2D[T scalar.Real]() (*grid.Grid1D[T], error) {
	return grid.Linspace[T](-4, 4, 128)
}

// DefaultBell1D builds the built-in initial condition exp(-1/4 * x^2),
// matching main.cpp's fallback `exp(-.25 * _grid[i] * _grid[i])`.
func DefaultBell1D[T scalar.Real](g *grid.Grid1D[T]) []T {
	u0 := make([]T, g.N())
	for i, x := range g.Coords() {
		u0[i] = T(BellIC.F(0, []float64{float64(x)}))
	}
	return u0
}

// DefaultBell2D builds the 2D built-in initial condition
// exp(-1/4 * (x^2+y^2)), the natural extension of DefaultBell1D to the
// radial form spec §6 describes ("built-in bell, exp(-1/4*||x||^2)").
func DefaultBell2D[T scalar.Real](g *grid.Grid2D[T]) []T {
	u0 := make([]T, g.M())
	for i, x := range g.X.Coords() {
		for j, y := range g.Y.Coords() {
			u0[g.Index(i, j)] = T(BellIC.F(0, []float64{float64(x), float64(y)}))
		}
	}
	return u0
}
