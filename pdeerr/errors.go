// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdeerr defines the typed error taxonomy surfaced across the
// finite-difference engine: ConfigError, ShapeError, NumericFault and
// IOError. Kinds carry a message and, where useful, the offending step or
// value; they are returned, never panicked, from engine packages (gosl's
// chk.Panic is reserved for the cmd/pdefd entry point, see DESIGN.md).
package pdeerr

import "fmt"

// ConfigError reports an unknown enum value, a missing required CLI value,
// or an incompatible combination of configuration choices (e.g. the wave
// equation paired with an unsupported integrator).
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config error: " + e.Msg }

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// ShapeError reports that an initial condition's dimensions disagree with
// its grid, or that a grid's coordinates are not strictly increasing.
type ShapeError struct {
	Msg string
}

func (e *ShapeError) Error() string { return "shape error: " + e.Msg }

// NewShapeError builds a ShapeError with a formatted message.
func NewShapeError(format string, args ...interface{}) *ShapeError {
	return &ShapeError{Msg: fmt.Sprintf(format, args...)}
}

// NumericFault reports a non-finite value encountered during advance, or a
// singular factorization reported by the dense solve.
type NumericFault struct {
	Step int // micro-step index (within the failing Advance call) at which the fault was detected
	Msg  string
}

func (e *NumericFault) Error() string {
	return fmt.Sprintf("numeric fault at step %d: %s", e.Step, e.Msg)
}

// NewNumericFault builds a NumericFault with a formatted message.
func NewNumericFault(step int, format string, args ...interface{}) *NumericFault {
	return &NumericFault{Step: step, Msg: fmt.Sprintf(format, args...)}
}

// IOError wraps a failure surfaced from an external collaborator: grid/IC
// file reading or solution-matrix writing.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("io error (%s): %v", e.Path, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }

// NewIOError wraps err with the path that was being read or written.
func NewIOError(path string, err error) *IOError {
	return &IOError{Path: path, Err: err}
}
