// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the command-line surface of spec §6: flag
// definitions, defaulting chains (e.g. -rbct falls back to -lbct only when
// -rbct itself is absent), enum parsing, and the assembly of a pde input
// bundle ready for solver.New. cmd/pdefd is a thin wrapper around this
// package, in the teacher's "parse -> build -> run -> report" main.go
// shape.
package cli

import (
	"flag"
	"strconv"

	"github.com/cpmech/pdefd/pde"
	"github.com/cpmech/pdefd/pdeerr"
	"github.com/cpmech/pdefd/scalar"
)

// Flags holds the raw, unvalidated text/value form of every flag in spec
// §6's table. FlagSet.Parse populates it; cli.Build validates and
// defaults it.
type Flags struct {
	MathDomain string
	PdeKind    string
	Dim        int

	IC string
	G  string
	Gx string
	Gy string
	Of string

	Lbct, Rbct, Dbct, Ubct string
	Lbc, Rbc, Dbc, Ubc     float64
	rbctSet, dbctSet, ubctSet bool
	rbcSet, dbcSet, ubcSet    bool

	SolverType          string
	SpaceDiscretizer    string
	Diffusion           float64
	Velocity            float64
	VelocityX, VelocityY float64
	Dt                  float64

	N  int // micro-steps between snapshots
	NN int // number of snapshots

	Debug bool
}

// NewFlagSet builds a flag.FlagSet bound to f, with the defaults spec §6's
// table lists (e.g. -md defaults to "Float", -st to "CrankNicolson"). args
// is the program name used in error/usage messages.
func NewFlagSet(args string, f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet(args, flag.ContinueOnError)
	fs.StringVar(&f.MathDomain, "md", "Float", "scalar domain: Float|Double")
	fs.StringVar(&f.PdeKind, "pde", "AdvectionDiffusion", "AdvectionDiffusion|WaveEquation")
	fs.IntVar(&f.Dim, "dim", 1, "spatial dimension: 1 or 2")

	fs.StringVar(&f.IC, "ic", "", "initial-condition file path")
	fs.StringVar(&f.G, "g", "", "1D grid file path")
	fs.StringVar(&f.Gx, "gx", "", "2D x-grid file path")
	fs.StringVar(&f.Gy, "gy", "", "2D y-grid file path")
	fs.StringVar(&f.Of, "of", "sol.cl", "output file")

	fs.StringVar(&f.Lbct, "lbct", "Dirichlet", "left/1D boundary condition kind")
	fs.Func("rbct", "right boundary condition kind (default: -lbct)", func(s string) error { f.Rbct = s; f.rbctSet = true; return nil })
	fs.Func("dbct", "down boundary condition kind (default: -lbct)", func(s string) error { f.Dbct = s; f.dbctSet = true; return nil })
	fs.Func("ubct", "up boundary condition kind (default: -lbct)", func(s string) error { f.Ubct = s; f.ubctSet = true; return nil })

	fs.Float64Var(&f.Lbc, "lbc", 0, "left/1D boundary condition value")
	fs.Func("rbc", "right boundary condition value (default: -lbc)", func(s string) error { return setFloat(&f.Rbc, &f.rbcSet, s) })
	fs.Func("dbc", "down boundary condition value (default: -lbc)", func(s string) error { return setFloat(&f.Dbc, &f.dbcSet, s) })
	fs.Func("ubc", "up boundary condition value (default: -lbc)", func(s string) error { return setFloat(&f.Ubc, &f.ubcSet, s) })

	fs.StringVar(&f.SolverType, "st", "CrankNicolson", "time-integration scheme")
	fs.StringVar(&f.SpaceDiscretizer, "sdt", "Upwind", "spatial discretization")
	fs.Float64Var(&f.Diffusion, "d", 0, "diffusion coefficient (required)")
	fs.Float64Var(&f.Velocity, "v", 0, "1D velocity (required for -dim 1)")
	fs.Float64Var(&f.VelocityX, "vx", 0, "2D x-velocity (required for -dim 2)")
	fs.Float64Var(&f.VelocityY, "vy", 0, "2D y-velocity (required for -dim 2)")
	fs.Float64Var(&f.Dt, "dt", 0, "time step (required)")

	fs.IntVar(&f.N, "n", 0, "micro-steps between snapshots (required)")
	fs.IntVar(&f.NN, "N", 0, "number of snapshots (required)")

	fs.BoolVar(&f.Debug, "dbg", false, "debug/timing output")
	return fs
}

func setFloat(dst *float64, set *bool, s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*dst = v
	*set = true
	return nil
}

// boundaryDefaults applies spec §6's defaulting chain: -rbct/-dbct/-ubct
// default to -lbct's text, and -rbc/-dbc/-ubc default to -lbc's value,
// exactly when the dependent flag is absent (mirroring the original's
// GetArgumentValue(opt, fallback), not the buggy hard-wired reuse spec §9
// documents as Open Question (i); cli.Build then parses each face's own
// kind text).
func (f *Flags) boundaryDefaults() {
	if !f.rbctSet {
		f.Rbct = f.Lbct
	}
	if !f.dbctSet {
		f.Dbct = f.Lbct
	}
	if !f.ubctSet {
		f.Ubct = f.Lbct
	}
	if !f.rbcSet {
		f.Rbc = f.Lbc
	}
	if !f.dbcSet {
		f.Dbc = f.Lbc
	}
	if !f.ubcSet {
		f.Ubc = f.Lbc
	}
}

// ParseMathDomain, ParseEquationKind etc. are the enum parsers this
// package calls; kept thin wrappers so cli's own error messages stay
// uniform (spec §7: "unknown enum text" is a ConfigError).
func parseMathDomain(text string) (scalar.MathDomain, error) {
	md, ok := scalar.ParseMathDomain(text)
	if !ok {
		return 0, pdeerr.NewConfigError("unknown -md value %q", text)
	}
	return md, nil
}

func parseEquationKind(text string) (pde.EquationKind, error) {
	ek, ok := pde.ParseEquationKind(text)
	if !ok {
		return 0, pdeerr.NewConfigError("unknown -pde value %q", text)
	}
	return ek, nil
}

func parseSolverType(text string) (pde.SolverType, error) {
	st, ok := pde.ParseSolverType(text)
	if !ok {
		return 0, pdeerr.NewConfigError("unknown -st value %q", text)
	}
	return st, nil
}

func parseSpaceDiscretizerType(text string) (pde.SpaceDiscretizerType, error) {
	sdt, ok := pde.ParseSpaceDiscretizerType(text)
	if !ok {
		return 0, pdeerr.NewConfigError("unknown -sdt value %q", text)
	}
	return sdt, nil
}
