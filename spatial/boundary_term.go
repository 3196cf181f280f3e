// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"github.com/cpmech/pdefd/grid"
	"github.com/cpmech/pdefd/scalar"
)

// BuildB1D computes the inhomogeneous boundary contribution b (spec §4.1,
// §4.3's advance rule: u^{n+1} = sum T_j u^{n-j} + b). Dirichlet contributes
// its target value directly; Neumann contributes its target derivative
// scaled by the one-sided spacing coefficient; Periodic contributes zero.
// b is recomputed every micro-step by the solver (cheap: O(1) non-zero
// entries) since a future time-varying BC value would need it, even though
// every BC implemented today is constant in time.
func BuildB1D[T scalar.Real](g *grid.Grid1D[T], bcs grid.BCs1D[T]) []T {
	n := g.N()
	b := make([]T, n)
	b[0] = boundaryTerm(bcs.Left, g.Spacing(0))
	b[n-1] = boundaryTerm(bcs.Right, g.Spacing(n-2))
	return b
}

// BuildB2D computes the inhomogeneous boundary contribution for a 2D
// problem: every node on the outer frame gets its face's contribution;
// corners take whichever face applyCorners2D determined wins (x before y,
// Dirichlet before Neumann).
func BuildB2D[T scalar.Real](g *grid.Grid2D[T], bcs grid.BCs2D[T]) []T {
	nx, ny := g.Nx(), g.Ny()
	b := make([]T, nx*ny)
	for i := 0; i < nx; i++ {
		b[g.Index(i, 0)] = boundaryTerm(bcs.Down, g.Y.Spacing(0))
		b[g.Index(i, ny-1)] = boundaryTerm(bcs.Up, g.Y.Spacing(ny-2))
	}
	for j := 0; j < ny; j++ {
		b[g.Index(0, j)] = boundaryTerm(bcs.Left, g.X.Spacing(0))
		b[g.Index(nx-1, j)] = boundaryTerm(bcs.Right, g.X.Spacing(nx-2))
	}
	corners := [][2]int{{0, 0}, {nx - 1, 0}, {0, ny - 1}, {nx - 1, ny - 1}}
	faces := []struct{ x, y grid.BC[T] }{
		{bcs.Left, bcs.Down}, {bcs.Right, bcs.Down}, {bcs.Left, bcs.Up}, {bcs.Right, bcs.Up},
	}
	for k, c := range corners {
		xWins := faces[k].x.Kind == grid.Dirichlet || faces[k].y.Kind != grid.Dirichlet
		var h T
		var bc grid.BC[T]
		if xWins {
			bc = faces[k].x
			if c[0] == 0 {
				h = g.X.Spacing(0)
			} else {
				h = g.X.Spacing(nx - 2)
			}
		} else {
			bc = faces[k].y
			if c[1] == 0 {
				h = g.Y.Spacing(0)
			} else {
				h = g.Y.Spacing(ny - 2)
			}
		}
		b[g.Index(c[0], c[1])] = boundaryTerm(bc, h)
	}
	return b
}

func boundaryTerm[T scalar.Real](bc grid.BC[T], h T) T {
	switch bc.Kind {
	case grid.Dirichlet:
		return bc.V
	case grid.Neumann:
		return bc.V * h
	default: // Periodic
		return 0
	}
}
