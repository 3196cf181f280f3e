// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spatial builds the dense spatial operator L for
// dtU = -v.grad(U) + D.Laplacian(U) under the three stencils of spec §4.2
// (Centered, Upwind, LaxWendroff), with boundary rows overwritten per the
// BC encoding of spec §4.1.
package spatial

import (
	"github.com/cpmech/pdefd/grid"
	"github.com/cpmech/pdefd/linalg"
	"github.com/cpmech/pdefd/pde"
	"github.com/cpmech/pdefd/scalar"
)

// Discretizer builds L from a linalg.Ops capability; it holds no state of
// its own (spatial operator construction is a pure function of the input
// bundle).
type Discretizer[T scalar.Real] struct {
	Ops linalg.Ops[T]
}

// New returns a Discretizer using ops for all matrix construction.
func New[T scalar.Real](ops linalg.Ops[T]) Discretizer[T] {
	return Discretizer[T]{Ops: ops}
}

// BuildL1D builds the N x N operator for a 1D advection-diffusion problem.
// The diffusion argument lets the wave-equation specialization pass c^2, and
// the Lax-Wendroff case adds its v^2*dt/2 correction to it, without
// duplicating the stencil logic.
func (d Discretizer[T]) BuildL1D(g *grid.Grid1D[T], velocity, diffusion T, sdt pde.SpaceDiscretizerType, dt T, bcs grid.BCs1D[T]) linalg.Matrix[T] {
	n := g.N()
	l := d.Ops.ZeroMatrix(n, n)

	deff := diffusion
	if sdt == pde.LaxWendroff {
		deff = diffusion + velocity*velocity*dt/2
	}

	for i := 1; i < n-1; i++ {
		hm := g.Spacing(i - 1)
		hp := g.Spacing(i)
		row := make([]T, n)
		addDiffusion1D(row, i, hm, hp, deff)
		switch sdt {
		case pde.Centered, pde.LaxWendroff:
			addCenteredConvection1D(row, i, hm, hp, velocity)
		case pde.Upwind:
			addUpwindConvection1D(row, i, hm, hp, velocity)
		}
		d.Ops.WriteRow(l, i, row)
	}

	applyBoundary1D(d.Ops, l, 0, g.Spacing(0), bcs.Left, n, true)
	applyBoundary1D(d.Ops, l, n-1, g.Spacing(n-2), bcs.Right, n, false)

	if bcs.Left.Kind == grid.Periodic {
		applyPeriodic1D(d.Ops, l, g, velocity, deff, sdt)
	}

	return l
}

// BuildL2D builds the (Nx*Ny) x (Nx*Ny) operator Lx (x) Iy + Ix (x) Ly for a
// 2D advection-diffusion problem (spec §4.2: "Lx and Ly are built
// independently on x- and y-grids").
func (d Discretizer[T]) BuildL2D(g *grid.Grid2D[T], vx, vy, diffusion T, sdt pde.SpaceDiscretizerType, dt T, bcs grid.BCs2D[T]) linalg.Matrix[T] {
	bcsX := grid.BCs1D[T]{Left: bcs.Left, Right: bcs.Right}
	bcsY := grid.BCs1D[T]{Left: bcs.Down, Right: bcs.Up}
	lx := d.BuildL1D(g.X, vx, diffusion, sdt, dt, bcsX)
	ly := d.BuildL1D(g.Y, vy, diffusion, sdt, dt, bcsY)
	l := linalg.KronSum[T](d.Ops, lx, ly)
	applyCorners2D(d.Ops, l, g, bcs, lx, ly)
	return l
}

// applyCorners2D resolves the four corner rows, each of which the naive
// tensor sum double-counts (both the x-face and the y-face boundary rows
// contribute to it). spec §4.1's tie-break: the face whose index varies
// fastest (x) wins when it is Dirichlet; Dirichlet wins over Neumann at a
// mixed corner; otherwise x wins by default.
func applyCorners2D[T scalar.Real](ops linalg.Ops[T], l linalg.Matrix[T], g *grid.Grid2D[T], bcs grid.BCs2D[T], lx, ly linalg.Matrix[T]) {
	nx, ny := g.Nx(), g.Ny()
	type corner struct {
		i, j   int
		xFace  grid.BC[T]
		yFace  grid.BC[T]
	}
	corners := []corner{
		{0, 0, bcs.Left, bcs.Down},
		{nx - 1, 0, bcs.Right, bcs.Down},
		{0, ny - 1, bcs.Left, bcs.Up},
		{nx - 1, ny - 1, bcs.Right, bcs.Up},
	}
	for _, c := range corners {
		xWins := c.xFace.Kind == grid.Dirichlet || c.yFace.Kind != grid.Dirichlet
		row := make([]T, nx*ny)
		if xWins {
			for ii := 0; ii < nx; ii++ {
				row[g.Index(ii, c.j)] = lx[c.i][ii]
			}
		} else {
			for jj := 0; jj < ny; jj++ {
				row[g.Index(c.i, jj)] = ly[c.j][jj]
			}
		}
		ops.WriteRow(l, g.Index(c.i, c.j), row)
	}
}

// addDiffusion1D adds the second-order central difference for diffusion
// D*(u[i-1] - 2u[i] + u[i+1]) / h^2 to an interior row, using the
// non-uniform-spacing three-point formula so Linspace-default and
// file-provided irregular grids are both handled correctly.
func addDiffusion1D[T scalar.Real](row []T, i int, hm, hp, D T) {
	if D == 0 {
		return
	}
	cm := 2 * D / (hm * (hm + hp))
	cp := 2 * D / (hp * (hm + hp))
	c0 := -(cm + cp)
	row[i-1] += cm
	row[i] += c0
	row[i+1] += cp
}

// addCenteredConvection1D adds -v * du/dx via the second-order central
// difference (u[i+1]-u[i-1])/(hm+hp).
func addCenteredConvection1D[T scalar.Real](row []T, i int, hm, hp, v T) {
	if v == 0 {
		return
	}
	c := v / (hm + hp)
	row[i-1] += c
	row[i+1] += -c
}

// addUpwindConvection1D adds -v*du/dx via the first-order one-sided
// difference taken in the direction of -sign(v) (spec §4.2).
func addUpwindConvection1D[T scalar.Real](row []T, i int, hm, hp, v T) {
	if v == 0 {
		return
	}
	if v > 0 {
		c := v / hm
		row[i-1] += c
		row[i] += -c
	} else {
		c := v / hp
		row[i] += c
		row[i+1] += -c
	}
}

// applyBoundary1D overwrites the boundary row at index idx according to the
// BC kind (spec §4.1). h is the one-sided spacing toward the interior
// neighbour (idx+1 for the left face, idx-1 for the right face).
func applyBoundary1D[T scalar.Real](ops linalg.Ops[T], l linalg.Matrix[T], idx int, h T, bc grid.BC[T], n int, isLeft bool) {
	row := make([]T, n)
	switch bc.Kind {
	case grid.Dirichlet:
		row[idx] = 1
	case grid.Neumann:
		// one-sided first derivative: (u[neighbour]-u[idx])/h = v (outward)
		// or (u[idx]-u[neighbour])/h = v depending on face orientation; both
		// reduce to the same row shape below since h is always the distance
		// to the interior neighbour and v is the *outward* derivative.
		if isLeft {
			row[idx] = -1 / h
			row[idx+1] = 1 / h
		} else {
			row[idx] = 1 / h
			row[idx-1] = -1 / h
		}
	case grid.Periodic:
		// left alone here; applyPeriodic1D overwrites both faces at once.
	}
	ops.WriteRow(l, idx, row)
}

// applyPeriodic1D overwrites both boundary rows with the wrapped interior
// stencil, identifying index -1 with n-2 and index n with 1 (spec §4.1: "the
// row wraps indices modulo the interior length").
func applyPeriodic1D[T scalar.Real](ops linalg.Ops[T], l linalg.Matrix[T], g *grid.Grid1D[T], v, D T, sdt pde.SpaceDiscretizerType) {
	n := g.N()
	interior := n - 1 // g.At(0) and g.At(n-1) are identified; interior length is n-1

	buildWrapped := func(i, im1, ip1 int, hm, hp T) []T {
		row := make([]T, n)
		cm := T(0)
		cp := T(0)
		c0 := T(0)
		if D != 0 {
			cm = 2 * D / (hm * (hm + hp))
			cp = 2 * D / (hp * (hm + hp))
			c0 = -(cm + cp)
		}
		switch sdt {
		case pde.Centered, pde.LaxWendroff:
			if v != 0 {
				c := v / (hm + hp)
				cm += c
				cp += -c
			}
		case pde.Upwind:
			if v > 0 {
				c := v / hm
				cm += c
				c0 += -c
			} else if v < 0 {
				c := v / hp
				c0 += c
				cp += -c
			}
		}
		row[im1] += cm
		row[i] += c0
		row[ip1] += cp
		return row
	}

	h0 := g.Spacing(0)
	hend := g.Spacing(n - 2)
	// wrap spacing for the link between the two physical boundary nodes,
	// treating the domain as periodic with period hend (the last segment).
	row0 := buildWrapped(0, interior-1, 1, hend, h0)
	rowN := buildWrapped(n-1, interior-1, 1, hend, h0)
	ops.WriteRow(l, 0, row0)
	ops.WriteRow(l, n-1, rowN)
}
