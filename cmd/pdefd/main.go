// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pdefd is the executable entry point of spec §6's CLI surface: it
// parses flags, builds the PDE input bundle, drives the solver, and writes
// the snapshot matrix. Follows the teacher's main.go "parse -> build -> run
// -> report" shape, with chk.Panic/recover reserved for unrecoverable
// top-level failures (spec §7; recoverable per-package errors are the
// typed pdeerr hierarchy cli.Run already returns).
package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/pdefd/cli"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	defer utl.DoProf(false)()

	f := &cli.Flags{}
	fs := cli.NewFlagSet("pdefd", f)
	if err := fs.Parse(os.Args[1:]); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(2)
	}

	cfg, err := cli.Build(f)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(2)
	}

	if err := cli.Run(cfg); err != nil {
		chk.Panic("run failed:\n%v", err)
	}
}
