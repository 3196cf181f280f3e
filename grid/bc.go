// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/pdefd/pdeerr"
	"github.com/cpmech/pdefd/scalar"
)

// BCKind is a closed sum type for the three boundary-condition kinds
// supported by the engine.
type BCKind int

const (
	Dirichlet BCKind = iota
	Neumann
	Periodic
)

func (k BCKind) String() string {
	switch k {
	case Dirichlet:
		return "Dirichlet"
	case Neumann:
		return "Neumann"
	case Periodic:
		return "Periodic"
	default:
		return "Null"
	}
}

// ParseBCKind converts CLI/config text into a BCKind.
func ParseBCKind(text string) (BCKind, bool) {
	switch text {
	case "Dirichlet":
		return Dirichlet, true
	case "Neumann":
		return Neumann, true
	case "Periodic":
		return Periodic, true
	default:
		return 0, false
	}
}

// BC is a single boundary condition: its kind and its value v. For
// Dirichlet, v is the fixed value; for Neumann, v is the outward derivative;
// for Periodic, v is unused (zero).
type BC[T scalar.Real] struct {
	Kind BCKind
	V    T
}

// BCs1D holds the two face conditions of a 1D problem.
type BCs1D[T scalar.Real] struct {
	Left, Right BC[T]
}

// Validate enforces spec §3: a Periodic BC on one face requires Periodic on
// the opposite face with an equal value; a mismatched kind or value is a
// ShapeError.
func (b BCs1D[T]) Validate() error {
	if (b.Left.Kind == Periodic) != (b.Right.Kind == Periodic) {
		return pdeerr.NewShapeError("bcs1d: periodic must be set on both left and right faces, or neither")
	}
	if b.Left.Kind == Periodic && b.Left.V != b.Right.V {
		return pdeerr.NewShapeError("bcs1d: periodic left and right faces must have equal values")
	}
	return nil
}

// BCs2D holds the four face conditions of a 2D problem.
type BCs2D[T scalar.Real] struct {
	Left, Right, Down, Up BC[T]
}

// Validate enforces spec §3 for the x-pair (left/right) and y-pair (down/up)
// independently.
func (b BCs2D[T]) Validate() error {
	if (b.Left.Kind == Periodic) != (b.Right.Kind == Periodic) {
		return pdeerr.NewShapeError("bcs2d: periodic must be set on both left and right faces, or neither")
	}
	if (b.Down.Kind == Periodic) != (b.Up.Kind == Periodic) {
		return pdeerr.NewShapeError("bcs2d: periodic must be set on both down and up faces, or neither")
	}
	if b.Left.Kind == Periodic && b.Left.V != b.Right.V {
		return pdeerr.NewShapeError("bcs2d: periodic left and right faces must have equal values")
	}
	if b.Down.Kind == Periodic && b.Down.V != b.Up.V {
		return pdeerr.NewShapeError("bcs2d: periodic down and up faces must have equal values")
	}
	return nil
}
