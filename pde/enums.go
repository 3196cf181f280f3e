// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pde holds the immutable PDE input bundle (spec §3: PdeInputData)
// together with the two closed-sum-type enums that select its numerical
// behavior: SolverType (time integrator) and SpaceDiscretizerType (spatial
// stencil). Both are parsed by name; unknown text is a ConfigError.
package pde

// SolverType selects one of the twelve time-integration schemes of spec §4.3.
type SolverType int

const (
	ExplicitEuler SolverType = iota
	ImplicitEuler
	CrankNicolson
	RungeKuttaRalston
	RungeKutta3
	RungeKutta4
	RungeKuttaThreeEight
	RungeKuttaGaussLegendre4
	RichardsonExtrapolation2
	RichardsonExtrapolation3
	AdamsBashforth2
	AdamsMouldon2
)

var solverTypeNames = map[SolverType]string{
	ExplicitEuler:            "ExplicitEuler",
	ImplicitEuler:            "ImplicitEuler",
	CrankNicolson:            "CrankNicolson",
	RungeKuttaRalston:        "RungeKuttaRalston",
	RungeKutta3:              "RungeKutta3",
	RungeKutta4:              "RungeKutta4",
	RungeKuttaThreeEight:     "RungeKuttaThreeEight",
	RungeKuttaGaussLegendre4: "RungeKuttaGaussLegendre4",
	RichardsonExtrapolation2: "RichardsonExtrapolation2",
	RichardsonExtrapolation3: "RichardsonExtrapolation3",
	AdamsBashforth2:          "AdamsBashforth2",
	AdamsMouldon2:            "AdamsMouldon2",
}

func (s SolverType) String() string {
	if name, ok := solverTypeNames[s]; ok {
		return name
	}
	return "Null"
}

// ParseSolverType converts CLI/config text into a SolverType.
func ParseSolverType(text string) (SolverType, bool) {
	for k, v := range solverTypeNames {
		if v == text {
			return k, true
		}
	}
	return 0, false
}

// Steps reports k, the number of past states the scheme needs (spec §4.3's
// table). Richardson variants use k=1 (their internal half/third steps are
// an implementation detail of Build, not extra history).
func (s SolverType) Steps() int {
	switch s {
	case AdamsBashforth2, AdamsMouldon2:
		return 2
	default:
		return 1
	}
}

// SpaceDiscretizerType selects one of the three spatial stencils of spec §4.2.
type SpaceDiscretizerType int

const (
	Centered SpaceDiscretizerType = iota
	Upwind
	LaxWendroff
)

var spaceDiscretizerTypeNames = map[SpaceDiscretizerType]string{
	Centered:    "Centered",
	Upwind:      "Upwind",
	LaxWendroff: "LaxWendroff",
}

func (s SpaceDiscretizerType) String() string {
	if name, ok := spaceDiscretizerTypeNames[s]; ok {
		return name
	}
	return "Null"
}

// ParseSpaceDiscretizerType converts CLI/config text into a SpaceDiscretizerType.
func ParseSpaceDiscretizerType(text string) (SpaceDiscretizerType, bool) {
	for k, v := range spaceDiscretizerTypeNames {
		if v == text {
			return k, true
		}
	}
	return 0, false
}

// EquationKind selects which PDE specialization (spec §4.3, §4.4's "PDE
// specializations") a Solver is built for.
type EquationKind int

const (
	AdvectionDiffusion EquationKind = iota
	WaveEquation
)

func (e EquationKind) String() string {
	if e == WaveEquation {
		return "WaveEquation"
	}
	return "AdvectionDiffusion"
}

// ParseEquationKind converts CLI/config text into an EquationKind.
func ParseEquationKind(text string) (EquationKind, bool) {
	switch text {
	case "AdvectionDiffusion":
		return AdvectionDiffusion, true
	case "WaveEquation":
		return WaveEquation, true
	default:
		return 0, false
	}
}

// SupportsEquation reports whether a SolverType may be paired with an
// EquationKind. Only ExplicitEuler and ImplicitEuler are valid for
// WaveEquation (spec §4.3).
func (s SolverType) SupportsEquation(e EquationKind) bool {
	if e == AdvectionDiffusion {
		return true
	}
	return s == ExplicitEuler || s == ImplicitEuler
}
