// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar carries the compile-time scalar trait threaded through
// every entity of the finite-difference engine: the choice between
// single- and double-precision arithmetic.
package scalar

// Real is the scalar type every grid, operator and buffer in this module
// is generic over. Only float32 and float64 are meaningful finite-difference
// scalar types; MathDomain (below) is the string-keyed selector used at the
// CLI boundary to instantiate one or the other.
type Real interface {
	~float32 | ~float64
}

// MathDomain selects the Real instantiation for a solver built from the CLI
// or from an embedder's configuration. It is a closed sum type, parsed by
// name and never constructed from a raw int by calling code.
type MathDomain int

const (
	// Float instantiates the engine with float32.
	Float MathDomain = iota
	// Double instantiates the engine with float64.
	Double
)

func (m MathDomain) String() string {
	switch m {
	case Float:
		return "Float"
	case Double:
		return "Double"
	default:
		return "Null"
	}
}

// ParseMathDomain converts CLI/config text into a MathDomain. Unknown text
// is reported by the caller as a ConfigError; this function only reports
// whether the text was recognised.
func ParseMathDomain(text string) (MathDomain, bool) {
	switch text {
	case "Float":
		return Float, true
	case "Double":
		return Double, true
	default:
		return 0, false
	}
}
