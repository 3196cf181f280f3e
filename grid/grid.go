// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid holds the structured 1D/2D grids and boundary-condition
// records of the finite-difference engine (spec §3, §4.1). Grids are
// strictly-increasing coordinate sequences; once built they are immutable.
package grid

import (
	"github.com/cpmech/pdefd/pdeerr"
	"github.com/cpmech/pdefd/scalar"
)

// Grid1D is an ordered, strictly increasing sequence of N >= 3 coordinates.
type Grid1D[T scalar.Real] struct {
	x []T
}

// NewGrid1D validates x is strictly increasing with at least 3 points and
// returns an immutable Grid1D. A *pdeerr.ShapeError is returned otherwise.
func NewGrid1D[T scalar.Real](x []T) (*Grid1D[T], error) {
	if len(x) < 3 {
		return nil, pdeerr.NewShapeError("grid1d: need at least 3 points, got %d", len(x))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, pdeerr.NewShapeError("grid1d: coordinates must be strictly increasing (x[%d]=%v <= x[%d]=%v)", i, x[i], i-1, x[i-1])
		}
	}
	cp := make([]T, len(x))
	copy(cp, x)
	return &Grid1D[T]{x: cp}, nil
}

// N returns the number of points.
func (g *Grid1D[T]) N() int { return len(g.x) }

// At returns the i-th coordinate.
func (g *Grid1D[T]) At(i int) T { return g.x[i] }

// Coords returns the grid's coordinates. Callers must not mutate the result.
func (g *Grid1D[T]) Coords() []T { return g.x }

// Spacing returns x[i+1]-x[i]; valid for 0 <= i < N()-1.
func (g *Grid1D[T]) Spacing(i int) T { return g.x[i+1] - g.x[i] }

// Linspace builds a Grid1D of n strictly increasing, evenly spaced points
// from a to b (a < b), matching the default grids described in spec §6
// ("linspace default").
func Linspace[T scalar.Real](a, b T, n int) (*Grid1D[T], error) {
	if n < 3 {
		return nil, pdeerr.NewShapeError("linspace: need at least 3 points, got %d", n)
	}
	if !(b > a) {
		return nil, pdeerr.NewShapeError("linspace: need b > a, got a=%v b=%v", a, b)
	}
	x := make([]T, n)
	step := (b - a) / T(n-1)
	for i := range x {
		x[i] = a + T(i)*step
	}
	x[n-1] = b
	return NewGrid1D(x)
}

// Grid2D is a tensor-product grid (x, y), both strictly increasing.
type Grid2D[T scalar.Real] struct {
	X *Grid1D[T]
	Y *Grid1D[T]
}

// NewGrid2D bundles two valid Grid1D instances.
func NewGrid2D[T scalar.Real](x, y *Grid1D[T]) *Grid2D[T] {
	return &Grid2D[T]{X: x, Y: y}
}

// Nx returns the number of x points.
func (g *Grid2D[T]) Nx() int { return g.X.N() }

// Ny returns the number of y points.
func (g *Grid2D[T]) Ny() int { return g.Y.N() }

// M returns the total number of grid points Nx*Ny.
func (g *Grid2D[T]) M() int { return g.Nx() * g.Ny() }

// Index returns the flat index of (i, j) under the i + Nx*j convention
// used throughout spatial and solver.
func (g *Grid2D[T]) Index(i, j int) int { return i + g.Nx()*j }
