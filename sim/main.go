// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the transient simulation runner: the stage and time
// loops driving the separator network model
package sim

import (
	"time"

	"github.com/Ans3rgus/separator/inp"
	"github.com/Ans3rgus/separator/mdl/netsep"
	"github.com/Ans3rgus/separator/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a transient separation simulation
type Main struct {
	Sim     *inp.Simulation // simulation data
	Net     *netsep.Model   // network model: vessel and valves
	Res     *out.Results    // collected time series
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main) {

	// new Main object
	o = new(Main)

	// read input data
	sim, err := inp.ReadSim(simfilepath)
	if err != nil {
		chk.Panic("cannot read simulation input data:\n%v", err)
	}
	o.Sim = sim
	o.Net = sim.Net
	o.Res = new(out.Results)
	o.ShowMsg = verbose

	// message and flow tracing
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
		o.Net.DebugFlows = func(s *netsep.State) {
			io.PfWhite("gin=%13.6e  ggas=%13.6e  gliq=%13.6e\r", s.Gin, s.Ggas, s.Gliq)
		}
	}
	return
}

// Run runs the transient simulation over all stages. Time accumulates across
// stages: each stage integrates its own duration Tf on top of the time
// reached by the previous one.
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Solving stages\n")
	}

	// record initial state
	t := 0.0
	o.Res.Append(t, o.Net.GetState())

	// loop over stages
	for stgidx, stg := range o.Sim.Stages {

		// message
		if o.ShowMsg {
			io.Pf("> Running stage %d\n", stgidx)
		}

		// stage control and time limits
		ctl := stg.Control.ToControl()
		tf := t + stg.Tf
		tout := t + stg.DtOut

		// time loop
		istep := 0
		var Δt float64
		var lasttimestep bool
		for t < tf {

			// time increment
			Δt = stg.Dt
			if t+Δt >= tf {
				Δt = tf - t
				lasttimestep = true
			}

			// time update
			t += Δt
			istep++

			// perform step
			_, err = o.Net.Step(Δt, ctl)
			if err != nil {
				return chk.Err("stage %d: step %d: t=%g: %v", stgidx, istep, t, err)
			}

			// perform output
			if t >= tout || lasttimestep {
				o.Res.Append(t, o.Net.GetState())
				tout += stg.DtOut
			}
		}
	}
	return
}

// onexit shows the final message
func (o *Main) onexit(cputime time.Time, prevErr error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
}
