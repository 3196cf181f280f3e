// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/cpmech/pdefd/grid"
	"github.com/cpmech/pdefd/pde"
	"github.com/cpmech/pdefd/pdeerr"
	"github.com/cpmech/pdefd/scalar"
)

// Config is the validated, defaulted form of Flags: every enum has been
// parsed, every defaulting chain has been applied, and -dt, -n and -N have
// been checked to be > 0. -d, -v, -vx and -vy default to 0 and are not
// checked for presence. cli.Build returns a *Config or a
// *pdeerr.ConfigError; nothing past this point re-validates.
type Config struct {
	MD  scalar.MathDomain
	Eq  pde.EquationKind
	Dim int

	ICPath, GPath, GxPath, GyPath, OutPath string

	BCs1D grid.BCs1D[float64]
	BCs2D grid.BCs2D[float64]

	Solver pde.SolverType
	Space  pde.SpaceDiscretizerType

	Diffusion            float64
	Velocity             float64
	VelocityX, VelocityY float64
	Dt                   float64

	MicroSteps int // -n
	Snapshots  int // -N

	Debug bool
}

// Build validates and defaults a parsed Flags into a Config, per spec §6's
// table and §7's "configuration ... errors are detected at construction".
func Build(f *Flags) (*Config, error) {
	f.boundaryDefaults()

	md, err := parseMathDomain(f.MathDomain)
	if err != nil {
		return nil, err
	}
	eq, err := parseEquationKind(f.PdeKind)
	if err != nil {
		return nil, err
	}
	if f.Dim != 1 && f.Dim != 2 {
		return nil, pdeerr.NewConfigError("unsupported -dim value %d, must be 1 or 2", f.Dim)
	}
	st, err := parseSolverType(f.SolverType)
	if err != nil {
		return nil, err
	}
	sdt, err := parseSpaceDiscretizerType(f.SpaceDiscretizer)
	if err != nil {
		return nil, err
	}
	if !st.SupportsEquation(eq) {
		return nil, pdeerr.NewConfigError("solver type %s is not supported for %s", st, eq)
	}

	bc1D := grid.BCs1D[float64]{}
	bc2D := grid.BCs2D[float64]{}
	if f.Dim == 1 {
		lk, ok := grid.ParseBCKind(f.Lbct)
		if !ok {
			return nil, pdeerr.NewConfigError("unknown -lbct value %q", f.Lbct)
		}
		rk, ok := grid.ParseBCKind(f.Rbct)
		if !ok {
			return nil, pdeerr.NewConfigError("unknown -rbct value %q", f.Rbct)
		}
		bc1D = grid.BCs1D[float64]{
			Left:  grid.BC[float64]{Kind: lk, V: f.Lbc},
			Right: grid.BC[float64]{Kind: rk, V: f.Rbc},
		}
		if err := bc1D.Validate(); err != nil {
			return nil, err
		}
	} else {
		lk, ok := grid.ParseBCKind(f.Lbct)
		if !ok {
			return nil, pdeerr.NewConfigError("unknown -lbct value %q", f.Lbct)
		}
		rk, ok := grid.ParseBCKind(f.Rbct)
		if !ok {
			return nil, pdeerr.NewConfigError("unknown -rbct value %q", f.Rbct)
		}
		dk, ok := grid.ParseBCKind(f.Dbct)
		if !ok {
			return nil, pdeerr.NewConfigError("unknown -dbct value %q", f.Dbct)
		}
		uk, ok := grid.ParseBCKind(f.Ubct)
		if !ok {
			return nil, pdeerr.NewConfigError("unknown -ubct value %q", f.Ubct)
		}
		bc2D = grid.BCs2D[float64]{
			Left:  grid.BC[float64]{Kind: lk, V: f.Lbc},
			Right: grid.BC[float64]{Kind: rk, V: f.Rbc},
			Down:  grid.BC[float64]{Kind: dk, V: f.Dbc},
			Up:    grid.BC[float64]{Kind: uk, V: f.Ubc},
		}
		if err := bc2D.Validate(); err != nil {
			return nil, err
		}
	}

	if f.Dt <= 0 {
		return nil, pdeerr.NewConfigError("missing or invalid required flag -dt (must be > 0)")
	}
	if f.N <= 0 {
		return nil, pdeerr.NewConfigError("missing or invalid required flag -n (must be > 0)")
	}
	if f.NN <= 0 {
		return nil, pdeerr.NewConfigError("missing or invalid required flag -N (must be > 0)")
	}

	return &Config{
		MD: md, Eq: eq, Dim: f.Dim,
		ICPath: f.IC, GPath: f.G, GxPath: f.Gx, GyPath: f.Gy, OutPath: f.Of,
		BCs1D: bc1D, BCs2D: bc2D,
		Solver: st, Space: sdt,
		Diffusion: f.Diffusion, Velocity: f.Velocity, VelocityX: f.VelocityX, VelocityY: f.VelocityY,
		Dt:         f.Dt,
		MicroSteps: f.N, Snapshots: f.NN,
		Debug: f.Debug,
	}, nil
}

