// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestLinspace(t *testing.T) {
	g, err := Linspace(0.0, 1.0, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Array(t, "x", 1e-15, g.Coords(), []float64{0, 0.25, 0.5, 0.75, 1.0})
}

func TestLinspaceRejectsTooFewPoints(t *testing.T) {
	_, err := Linspace(0.0, 1.0, 2)
	if err == nil {
		t.Fatal("expected a ShapeError for n < 3")
	}
}

func TestNewGrid1DRejectsNonIncreasing(t *testing.T) {
	_, err := NewGrid1D([]float64{0, 1, 1, 2})
	if err == nil {
		t.Fatal("expected a ShapeError for non-strictly-increasing coordinates")
	}
}

func TestGrid2DIndex(t *testing.T) {
	gx, _ := Linspace(0.0, 1.0, 3)
	gy, _ := Linspace(0.0, 1.0, 4)
	g := NewGrid2D(gx, gy)
	if g.M() != 12 {
		t.Fatalf("expected M=12, got %d", g.M())
	}
	if g.Index(2, 3) != 2+3*3 {
		t.Fatalf("unexpected flat index: %d", g.Index(2, 3))
	}
}
