// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import "github.com/cpmech/pdefd/scalar"

// KronSum materializes Lx (x) Iy + Ix (x) Ly as one dense (nx*ny) x (nx*ny)
// matrix, in the index convention i + nx*j for grid point (i, j). This is
// the 2D spatial-operator construction spec.md §4.2 describes: "L on the
// product space is Lx (x) Iy + Ix (x) Ly, materialized as one dense M x M
// matrix".
func KronSum[T scalar.Real](ops Ops[T], lx, ly Matrix[T]) Matrix[T] {
	nx, ny := lx.Rows(), ly.Rows()
	m := nx * ny
	l := ops.ZeroMatrix(m, m)
	// Ix (x) Ly: for each fixed i, the ny x ny block ly is placed at rows/cols {i + nx*j}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			row := i + nx*j
			for jj := 0; jj < ny; jj++ {
				col := i + nx*jj
				l[row][col] += ly[j][jj]
			}
		}
	}
	// Lx (x) Iy: for each fixed j, the nx x nx block lx is placed at rows/cols {i + nx*j}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			row := i + nx*j
			for ii := 0; ii < nx; ii++ {
				col := ii + nx*j
				l[row][col] += lx[i][ii]
			}
		}
	}
	return l
}
