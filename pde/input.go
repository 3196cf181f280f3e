// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pde

import (
	"github.com/cpmech/pdefd/grid"
	"github.com/cpmech/pdefd/logx"
	"github.com/cpmech/pdefd/pdeerr"
	"github.com/cpmech/pdefd/scalar"
)

// Input1D is the immutable PDE input bundle for a 1D problem (spec §3:
// PdeInputData). Once built by NewInput1D it is borrowed, never mutated,
// by the Solver for the Solver's lifetime.
type Input1D[T scalar.Real] struct {
	U0        []T // initial condition, one value per grid point
	Grid      *grid.Grid1D[T]
	Velocity  T
	Diffusion T // D >= 0
	Dt        T // > 0
	Solver    SolverType
	Space     SpaceDiscretizerType
	BCs       grid.BCs1D[T]
}

// NewInput1D validates shapes and applies the Lax-Wendroff compatibility
// fix-up (spec §4.2, §7): requesting LaxWendroff with any integrator other
// than ExplicitEuler logs a warning and downgrades Solver to ExplicitEuler,
// rather than returning a ConfigError.
func NewInput1D[T scalar.Real](u0 []T, g *grid.Grid1D[T], velocity, diffusion, dt T, st SolverType, sdt SpaceDiscretizerType, bcs grid.BCs1D[T]) (*Input1D[T], error) {
	if len(u0) != g.N() {
		return nil, pdeerr.NewShapeError("input1d: len(U0)=%d does not match grid size %d", len(u0), g.N())
	}
	if diffusion < 0 {
		return nil, pdeerr.NewShapeError("input1d: diffusion must be >= 0, got %v", diffusion)
	}
	if !(dt > 0) {
		return nil, pdeerr.NewShapeError("input1d: dt must be > 0, got %v", dt)
	}
	if err := bcs.Validate(); err != nil {
		return nil, err
	}
	if sdt == LaxWendroff && st != ExplicitEuler {
		logx.Warn("Lax-Wendroff scheme can be applied only with ExplicitEuler -> overriding solver type")
		st = ExplicitEuler
	}
	u0cp := make([]T, len(u0))
	copy(u0cp, u0)
	return &Input1D[T]{
		U0: u0cp, Grid: g, Velocity: velocity, Diffusion: diffusion, Dt: dt,
		Solver: st, Space: sdt, BCs: bcs,
	}, nil
}

// Equation reports which PDE specialization this bundle targets. Input1D
// itself carries only advection-diffusion data; WaveInput1D below carries
// the extra wave-speed field and restricts SolverType accordingly.
func (in *Input1D[T]) Equation() EquationKind { return AdvectionDiffusion }

// Input2D is the 2D counterpart of Input1D.
type Input2D[T scalar.Real] struct {
	U0                   []T // column-major, length Nx*Ny
	Grid                 *grid.Grid2D[T]
	VelocityX, VelocityY T
	Diffusion            T
	Dt                   T
	Solver               SolverType
	Space                SpaceDiscretizerType
	BCs                  grid.BCs2D[T]
}

// NewInput2D is the 2D counterpart of NewInput1D.
func NewInput2D[T scalar.Real](u0 []T, g *grid.Grid2D[T], vx, vy, diffusion, dt T, st SolverType, sdt SpaceDiscretizerType, bcs grid.BCs2D[T]) (*Input2D[T], error) {
	if len(u0) != g.M() {
		return nil, pdeerr.NewShapeError("input2d: len(U0)=%d does not match grid size %d", len(u0), g.M())
	}
	if diffusion < 0 {
		return nil, pdeerr.NewShapeError("input2d: diffusion must be >= 0, got %v", diffusion)
	}
	if !(dt > 0) {
		return nil, pdeerr.NewShapeError("input2d: dt must be > 0, got %v", dt)
	}
	if err := bcs.Validate(); err != nil {
		return nil, err
	}
	if sdt == LaxWendroff && st != ExplicitEuler {
		logx.Warn("Lax-Wendroff scheme can be applied only with ExplicitEuler -> overriding solver type")
		st = ExplicitEuler
	}
	u0cp := make([]T, len(u0))
	copy(u0cp, u0)
	return &Input2D[T]{
		U0: u0cp, Grid: g, VelocityX: vx, VelocityY: vy, Diffusion: diffusion, Dt: dt,
		Solver: st, Space: sdt, BCs: bcs,
	}, nil
}

func (in *Input2D[T]) Equation() EquationKind { return AdvectionDiffusion }

// WaveInput1D is the 1D wave-equation input bundle: same shape as Input1D
// plus the wave speed c, and a SolverType restricted at construction time to
// ExplicitEuler/ImplicitEuler (spec §4.3).
type WaveInput1D[T scalar.Real] struct {
	U0        []T // initial displacement u(x,0)
	V0        []T // initial velocity du/dt(x,0)
	Grid      *grid.Grid1D[T]
	Speed     T // c
	Velocity  T // v, the first-derivative advection term in the first-order reduction
	Dt        T
	Solver    SolverType
	Space     SpaceDiscretizerType
	BCs       grid.BCs1D[T]
}

// NewWaveInput1D validates shapes and rejects SolverTypes unsupported for
// the wave equation with a ConfigError (no silent downgrade: spec §4.3 says
// "other choices are an input error", unlike the Lax-Wendroff fix-up).
func NewWaveInput1D[T scalar.Real](u0, v0 []T, g *grid.Grid1D[T], speed, velocity, dt T, st SolverType, sdt SpaceDiscretizerType, bcs grid.BCs1D[T]) (*WaveInput1D[T], error) {
	if len(u0) != g.N() || len(v0) != g.N() {
		return nil, pdeerr.NewShapeError("waveinput1d: len(U0)=%d len(V0)=%d must match grid size %d", len(u0), len(v0), g.N())
	}
	if !(dt > 0) {
		return nil, pdeerr.NewShapeError("waveinput1d: dt must be > 0, got %v", dt)
	}
	if err := bcs.Validate(); err != nil {
		return nil, err
	}
	if !st.SupportsEquation(WaveEquation) {
		return nil, pdeerr.NewConfigError("wave equation only supports ExplicitEuler or ImplicitEuler, got %s", st)
	}
	u0cp, v0cp := make([]T, len(u0)), make([]T, len(v0))
	copy(u0cp, u0)
	copy(v0cp, v0)
	return &WaveInput1D[T]{
		U0: u0cp, V0: v0cp, Grid: g, Speed: speed, Velocity: velocity, Dt: dt,
		Solver: st, Space: sdt, BCs: bcs,
	}, nil
}

func (in *WaveInput1D[T]) Equation() EquationKind { return WaveEquation }

// WaveInput2D is the 2D wave-equation input bundle.
type WaveInput2D[T scalar.Real] struct {
	U0, V0               []T // column-major, length Nx*Ny
	Grid                 *grid.Grid2D[T]
	Speed                T
	VelocityX, VelocityY T
	Dt                   T
	Solver               SolverType
	Space                SpaceDiscretizerType
	BCs                  grid.BCs2D[T]
}

// NewWaveInput2D is the 2D counterpart of NewWaveInput1D.
func NewWaveInput2D[T scalar.Real](u0, v0 []T, g *grid.Grid2D[T], speed, vx, vy, dt T, st SolverType, sdt SpaceDiscretizerType, bcs grid.BCs2D[T]) (*WaveInput2D[T], error) {
	if len(u0) != g.M() || len(v0) != g.M() {
		return nil, pdeerr.NewShapeError("waveinput2d: len(U0)=%d len(V0)=%d must match grid size %d", len(u0), len(v0), g.M())
	}
	if !(dt > 0) {
		return nil, pdeerr.NewShapeError("waveinput2d: dt must be > 0, got %v", dt)
	}
	if err := bcs.Validate(); err != nil {
		return nil, err
	}
	if !st.SupportsEquation(WaveEquation) {
		return nil, pdeerr.NewConfigError("wave equation only supports ExplicitEuler or ImplicitEuler, got %s", st)
	}
	u0cp, v0cp := make([]T, len(u0)), make([]T, len(v0))
	copy(u0cp, u0)
	copy(v0cp, v0)
	return &WaveInput2D[T]{
		U0: u0cp, V0: v0cp, Grid: g, Speed: speed, VelocityX: vx, VelocityY: vy, Dt: dt,
		Solver: st, Space: sdt, BCs: bcs,
	}, nil
}

func (in *WaveInput2D[T]) Equation() EquationKind { return WaveEquation }
