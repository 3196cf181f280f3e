// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the generic advance-step state machine of spec
// §4.4: build L and T once, then repeatedly roll a k-deep history buffer S
// forward through T, detecting non-finite results as a Fault rather than
// letting them propagate silently (spec §7's NumericFault).
package solver

import (
	"math"

	"github.com/cpmech/pdefd/linalg"
	"github.com/cpmech/pdefd/pde"
	"github.com/cpmech/pdefd/pdeerr"
	"github.com/cpmech/pdefd/scalar"
	"github.com/cpmech/pdefd/tint"
)

// State is the solver's lifecycle (spec §4.4).
type State int

const (
	Uninitialized State = iota
	Ready
	Advancing
	Faulted
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	case Advancing:
		return "Advancing"
	default:
		return "Faulted"
	}
}

// Equation supplies the two pure builder operations a PDE specialization
// contributes to the generic solver (spec §9: "each equation supplying two
// pure builder operations; no runtime dispatch required"). Built once at
// construction, never again.
type Equation[T scalar.Real] interface {
	// BuildL returns the dense spatial operator for this equation.
	BuildL(ops linalg.Ops[T]) linalg.Matrix[T]
	// BuildB returns the current inhomogeneous boundary term. Recomputed
	// every micro-step (spec §4.4's "compute inhomogeneous b from current
	// BCs"), even though every BC this module supports is time-invariant.
	BuildB() []T
	// InitialHistory returns the k initial state vectors s_0..s_{k-1}
	// (outermost index 0 is "most recent"); for k>1, earlier history is
	// approximated by U0 (spec §4.4).
	InitialHistory(k int) [][]T
	// DirichletMask reports which entries of the state vector are pinned by
	// a Dirichlet BC; New zeroes their row in L before building T and in
	// every T_j afterwards, so the advance rule reduces to
	// u^{n+1}_idx = b_idx there (see spatial.DirichletMask1D).
	DirichletMask() []bool
	// Solver/Space report the chosen scheme, needed to call tint.Build.
	Solver() pde.SolverType
	Space() pde.SpaceDiscretizerType
	Dt() T
	// Size is M, the state vector length.
	Size() int
}

// Solver is the generic advance-step engine of spec §4.4, parameterized by
// scalar T and PDE specialization E.
type Solver[T scalar.Real, E Equation[T]] struct {
	ops   linalg.Ops[T]
	eq    E
	state State

	l linalg.Matrix[T]
	t tint.Tensor[T]
	s [][]T // k history slots, s[0] most recent

	// preallocated scratch (spec §4.4: "intermediate buffers are
	// preallocated"; spec §5: "peak working memory is O(k*M^2)").
	y    []T
	tmp  []T
	fault error
}

// New validates nothing itself (the Input*/WaveInput* constructors already
// did, per spec §7's "configuration and shape errors are detected at
// construction"); it builds L and T once and seeds S with k copies per
// spec §4.4, then transitions straight to Ready. Dirichlet-pinned rows of L
// are zeroed before T is built, so an implicit scheme's inverse does not
// carry the boundary row's own dynamics into the interior rows.
func New[T scalar.Real, E Equation[T]](ops linalg.Ops[T], eq E) (*Solver[T, E], error) {
	l := eq.BuildL(ops)
	mask := eq.DirichletMask()
	for idx, pinned := range mask {
		if pinned {
			for j := range l[idx] {
				l[idx][j] = 0
			}
		}
	}
	k := eq.Solver().Steps()
	tensor, err := tint.Build[T](ops, l, eq.Dt(), eq.Solver())
	if err != nil {
		if _, ok := err.(*pdeerr.ConfigError); ok {
			return nil, err
		}
		return nil, pdeerr.NewNumericFault(-1, "singular factorization building time-integration tensor: %v", err)
	}
	hist := eq.InitialHistory(k)
	if len(hist) != k {
		return nil, pdeerr.NewShapeError("solver: InitialHistory returned %d slots, want %d", len(hist), k)
	}
	m := eq.Size()
	pinBoundaryRows(tensor, mask)
	return &Solver[T, E]{
		ops:   ops,
		eq:    eq,
		state: Ready,
		l:     l,
		t:     tensor,
		s:     hist,
		y:     make([]T, m),
		tmp:   make([]T, m),
	}, nil
}

// State reports the current lifecycle state.
func (sv *Solver[T, E]) State() State { return sv.state }

// Solution returns column 0 of S (spec §4.4: "legal in Ready and Faulted").
func (sv *Solver[T, E]) Solution() ([]T, error) {
	if sv.state != Ready && sv.state != Faulted {
		return nil, pdeerr.NewConfigError("solver: Solution() illegal in state %s", sv.state)
	}
	out := make([]T, len(sv.s[0]))
	copy(out, sv.s[0])
	return out, nil
}

// Advance performs n micro-steps (spec §4.4's micro-step algorithm): for
// each step, compute b, accumulate y = sum_j T_j*s_j + b, then rotate S. A
// non-finite y aborts the current call and transitions to Faulted; the
// partial history already committed (spec §7) is retained.
func (sv *Solver[T, E]) Advance(n int) error {
	if sv.state != Ready {
		return pdeerr.NewConfigError("solver: Advance() illegal in state %s", sv.state)
	}
	sv.state = Advancing
	for step := 0; step < n; step++ {
		if err := sv.microStep(step); err != nil {
			sv.state = Faulted
			sv.fault = err
			return err
		}
	}
	sv.state = Ready
	return nil
}

// Fault returns the error that transitioned the solver to Faulted, or nil.
func (sv *Solver[T, E]) Fault() error { return sv.fault }

func (sv *Solver[T, E]) microStep(step int) error {
	m := sv.eq.Size()
	for i := 0; i < m; i++ {
		sv.y[i] = 0
	}
	for j, tj := range sv.t {
		sv.ops.MatVec(sv.tmp, tj, sv.s[j])
		sv.ops.Axpy(sv.y, 1, sv.tmp, sv.y)
	}
	b := sv.eq.BuildB()
	sv.ops.Axpy(sv.y, 1, b, sv.y)

	if err := checkFinite(step, sv.y); err != nil {
		return err
	}

	k := len(sv.s)
	for j := k - 1; j > 0; j-- {
		sv.ops.Copy(sv.s[j], sv.s[j-1])
	}
	sv.ops.Copy(sv.s[0], sv.y)
	return nil
}

// pinBoundaryRows zeroes every T_j's row at each masked index in place.
func pinBoundaryRows[T scalar.Real](tensor tint.Tensor[T], mask []bool) {
	for _, tj := range tensor {
		for idx, pinned := range mask {
			if !pinned {
				continue
			}
			row := tj[idx]
			for i := range row {
				row[i] = 0
			}
		}
	}
}

func checkFinite[T scalar.Real](step int, v []T) error {
	for _, x := range v {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return pdeerr.NewNumericFault(step, "non-finite value encountered during advance")
		}
	}
	return nil
}
