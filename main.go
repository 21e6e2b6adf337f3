// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/Ans3rgus/separator/sim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nSeparator Version 1.0 -- Transient Gas/Liquid Separation Vessel\n")
		io.Pf("Copyright 2026 The Separator Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"draw figure", "doplot", doplot,
		))
	}

	// simulation
	analysis := sim.NewMain(fnamepath, verbose)
	err := analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// figure
	if doplot {
		analysis.Res.Draw(analysis.Sim.DirOut, analysis.Sim.FnkOut)
		if verbose {
			io.Pf("> Figure saved in %s\n", analysis.Sim.DirOut)
		}
	}
}
