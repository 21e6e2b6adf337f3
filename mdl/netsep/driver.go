// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netsep

import (
	"github.com/cpmech/gosl/chk"
)

// Driver runs transient simulations with the network model
type Driver struct {

	// input
	Mdl *Model // network model

	// results
	Res []*State // one snapshot per tick; Res[0] is the initial state
}

// Init initialises driver
func (o *Driver) Init(mdl *Model) error {
	if mdl == nil {
		return chk.Err("driver: network model must be non-nil\n")
	}
	o.Mdl = mdl
	return nil
}

// InitLevelPressure initialises the vessel from a liquid level and a gas pressure
func (o *Driver) InitLevelPressure(level, pgas float64) error {
	_, err := o.Mdl.InitLevelPressure(level, pgas)
	return err
}

// Run advances the network nsteps ticks of length dt under a fixed control,
// collecting one snapshot per tick
func (o *Driver) Run(dt float64, nsteps int, ctl *Control) (err error) {
	if nsteps < 1 {
		return chk.Err("driver: number of steps must be at least 1. nsteps=%d is invalid\n", nsteps)
	}
	o.Res = make([]*State, nsteps+1)
	o.Res[0] = o.Mdl.GetState()
	for i := 1; i <= nsteps; i++ {
		o.Res[i], err = o.Mdl.Step(dt, ctl)
		if err != nil {
			o.Res = o.Res[:i] // drop the nil tail; keep the snapshots taken so far
			return
		}
	}
	return
}
