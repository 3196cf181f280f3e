// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"testing"

	"github.com/cpmech/pdefd/grid"
)

func parseArgs(t *testing.T, args []string) *Flags {
	t.Helper()
	f := &Flags{}
	fs := NewFlagSet("pdefd", f)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return f
}

// TestBoundaryDefaultsChain checks spec §6: -rbct/-dbct/-ubct default to
// -lbct's text, and -rbc/-dbc/-ubc default to -lbc's value, only when the
// dependent flag itself is absent.
func TestBoundaryDefaultsChain(t *testing.T) {
	f := parseArgs(t, []string{
		"-lbct", "Neumann", "-lbc", "2.5",
		"-d", "1", "-v", "0", "-dt", "1e-3", "-n", "1", "-N", "1",
	})
	cfg, err := Build(f)
	if err != nil {
		t.Fatal(err)
	}
	want := grid.BCs1D[float64]{
		Left:  grid.BC[float64]{Kind: grid.Neumann, V: 2.5},
		Right: grid.BC[float64]{Kind: grid.Neumann, V: 2.5},
	}
	if cfg.BCs1D != want {
		t.Fatalf("got %+v, want %+v", cfg.BCs1D, want)
	}
}

// TestBoundaryOverrideNotDefaulted checks that an explicitly supplied
// -rbct/-rbc is not overwritten by the -lbct/-lbc default.
func TestBoundaryOverrideNotDefaulted(t *testing.T) {
	f := parseArgs(t, []string{
		"-lbct", "Dirichlet", "-lbc", "0", "-rbct", "Neumann", "-rbc", "1",
		"-d", "1", "-v", "0", "-dt", "1e-3", "-n", "1", "-N", "1",
	})
	cfg, err := Build(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BCs1D.Right.Kind != grid.Neumann || cfg.BCs1D.Right.V != 1 {
		t.Fatalf("right BC was defaulted despite explicit flags: %+v", cfg.BCs1D.Right)
	}
}

func TestBuildRejectsUnknownEnum(t *testing.T) {
	f := parseArgs(t, []string{
		"-st", "NotAScheme", "-d", "1", "-v", "0", "-dt", "1e-3", "-n", "1", "-N", "1",
	})
	if _, err := Build(f); err == nil {
		t.Fatal("expected a ConfigError for an unknown -st value")
	}
}

func TestBuildRejectsMissingRequired(t *testing.T) {
	f := parseArgs(t, []string{"-d", "1", "-v", "0"})
	if _, err := Build(f); err == nil {
		t.Fatal("expected a ConfigError for missing -dt/-n/-N")
	}
}

func TestBuildRejectsWaveWithUnsupportedIntegrator(t *testing.T) {
	f := parseArgs(t, []string{
		"-pde", "WaveEquation", "-st", "RungeKutta4",
		"-d", "1", "-v", "0", "-dt", "1e-3", "-n", "1", "-N", "1",
	})
	if _, err := Build(f); err == nil {
		t.Fatal("expected a ConfigError for WaveEquation + RungeKutta4")
	}
}

func TestBuildDefaultsMathDomainAndPde(t *testing.T) {
	f := parseArgs(t, []string{"-d", "1", "-v", "0", "-dt", "1e-3", "-n", "1", "-N", "1"})
	cfg, err := Build(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MD.String() != "Float" {
		t.Fatalf("got MD=%s, want Float", cfg.MD)
	}
	if cfg.Eq.String() != "AdvectionDiffusion" {
		t.Fatalf("got Eq=%s, want AdvectionDiffusion", cfg.Eq)
	}
}
