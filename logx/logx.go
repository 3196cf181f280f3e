// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx is the engine's single logging seam: a thin wrapper over
// github.com/cpmech/gosl/io's color-coded Printf family, the same one
// gofem's main.go and fem/s_richardson.go print progress and warnings
// with. Every non-error message the module prints goes through here so a
// silent embedder (e.g. a test) can turn it off with one call.
package logx

import "github.com/cpmech/gosl/io"

// Enabled controls whether Warn and Info produce output; it defaults to on,
// matching the teacher's unconditional "WARNING: ..." messages. Debug is
// gated separately by DebugEnabled, which cli.Run sets from -dbg.
var Enabled = true

// Warn prints a compatibility fix-up or recoverable-condition message in
// yellow, matching the original's
// "WARNING: Lax-Wendroff scheme can be applied only with ExplicitEuler"
// console message.
func Warn(format string, args ...interface{}) {
	if !Enabled {
		return
	}
	io.Pfyel("WARNING: "+format+"\n", args...)
}

// Info prints a progress message in the default color.
func Info(format string, args ...interface{}) {
	if !Enabled {
		return
	}
	io.Pf(format+"\n", args...)
}

// Debug prints a timing/diagnostic message, gated separately so -dbg can
// turn it on without enabling Warn/Info (which are always shown).
var DebugEnabled = false

// Debug prints a -dbg-gated diagnostic message in grey, mirroring the
// original's DEBUG_PRINT_START/DEBUG_PRINT_END console trace.
func Debug(format string, args ...interface{}) {
	if !DebugEnabled {
		return
	}
	io.Pfgrey(format+"\n", args...)
}
