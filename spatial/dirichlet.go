// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"github.com/cpmech/pdefd/grid"
	"github.com/cpmech/pdefd/scalar"
)

// DirichletMask1D reports, per grid point, whether that point is pinned by a
// Dirichlet BC. The solver zeroes the corresponding row of every T_j for a
// pinned index, so the advance rule degenerates to u^{n+1}_idx = b_idx
// exactly: spec §8 invariant 1 demands the Dirichlet value be preserved to
// machine precision for any number of steps, which the literal table in
// §4.3 (T0 = I+dt*L with L's boundary row an identity row) does not give on
// its own once dt != 0, since T0's diagonal there is 1+dt rather than 1.
func DirichletMask1D[T scalar.Real](n int, bcs grid.BCs1D[T]) []bool {
	mask := make([]bool, n)
	mask[0] = bcs.Left.Kind == grid.Dirichlet
	mask[n-1] = bcs.Right.Kind == grid.Dirichlet
	return mask
}

// DirichletMask2D is the 2D counterpart, resolving corners with the same
// x-before-y, Dirichlet-before-Neumann tie-break as applyCorners2D.
func DirichletMask2D[T scalar.Real](g *grid.Grid2D[T], bcs grid.BCs2D[T]) []bool {
	nx, ny := g.Nx(), g.Ny()
	mask := make([]bool, nx*ny)
	for i := 1; i < nx-1; i++ {
		mask[g.Index(i, 0)] = bcs.Down.Kind == grid.Dirichlet
		mask[g.Index(i, ny-1)] = bcs.Up.Kind == grid.Dirichlet
	}
	for j := 1; j < ny-1; j++ {
		mask[g.Index(0, j)] = bcs.Left.Kind == grid.Dirichlet
		mask[g.Index(nx-1, j)] = bcs.Right.Kind == grid.Dirichlet
	}
	corners := [][2]int{{0, 0}, {nx - 1, 0}, {0, ny - 1}, {nx - 1, ny - 1}}
	faces := []struct{ x, y grid.BC[T] }{
		{bcs.Left, bcs.Down}, {bcs.Right, bcs.Down}, {bcs.Left, bcs.Up}, {bcs.Right, bcs.Up},
	}
	for k, c := range corners {
		xWins := faces[k].x.Kind == grid.Dirichlet || faces[k].y.Kind != grid.Dirichlet
		var pinned bool
		if xWins {
			pinned = faces[k].x.Kind == grid.Dirichlet
		} else {
			pinned = faces[k].y.Kind == grid.Dirichlet
		}
		mask[g.Index(c[0], c[1])] = pinned
	}
	return mask
}
