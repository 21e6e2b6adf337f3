// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package netsep couples the gravity separation vessel with its three
// control valves: a mixture inlet valve and one outlet valve per phase.
// Each tick evaluates phase densities and valve mass flows from the
// previous tick's vessel pressures and only then advances the vessel
// (staggered coupling, one pass, no in-tick iteration). The reference
// verification data was generated against this staggering; do not
// replace it with a simultaneous solve.
package netsep

import (
	"github.com/Ans3rgus/separator/mdl/fluid"
	"github.com/Ans3rgus/separator/mdl/separator"
	"github.com/Ans3rgus/separator/mdl/valve"
	"github.com/cpmech/gosl/chk"
)

// DebugFlowsFn is called after the valve flows of a tick are evaluated,
// before the vessel advances. The state argument is a snapshot: the vessel
// part still holds the previous tick, the densities and flows are current.
type DebugFlowsFn func(s *State)

// Model is the composition root of the vessel-and-valves network
type Model struct {

	// auxiliary models
	Flu  *fluid.Model     // gas and liquid properties
	Sep  *separator.Model // the vessel
	Vin  *valve.Model     // inlet mixture valve
	Vgas *valve.Model     // gas outlet valve
	Vliq *valve.Model     // liquid outlet valve

	// trace
	DebugFlows DebugFlowsFn // flow trace hook; nil means off

	// state
	state State
}

// Init initialises this structure
func (o *Model) Init(flu *fluid.Model, sep *separator.Model, vin, vgas, vliq *valve.Model) error {
	if flu == nil || sep == nil || vin == nil || vgas == nil || vliq == nil {
		return chk.Err("netsep: Flu, Sep, Vin, Vgas and Vliq models must be all non-nil\n")
	}
	if vin.Char == nil || vgas.Char == nil || vliq.Char == nil {
		return chk.Err("netsep: valve models must be initialised before use\n")
	}
	o.Flu = flu
	o.Sep = sep
	o.Vin = vin
	o.Vgas = vgas
	o.Vliq = vliq
	o.state = State{Sep: sep.GetState()}
	return nil
}

// GetState returns a copy of the current state
func (o Model) GetState() *State {
	return o.state.GetCopy()
}

// InitLevelPressure initialises the vessel from a liquid level and a gas
// pressure, refreshes the published densities and zeroes the flows
func (o *Model) InitLevelPressure(level, pgas float64) (*State, error) {
	sta, err := o.Sep.InitLevelPressure(level, pgas)
	if err != nil {
		return nil, err
	}
	o.state.Sep = sta
	if err := o.calcDensities(); err != nil {
		return nil, err
	}
	o.state.Gin, o.state.Ggas, o.state.Gliq = 0, 0, 0
	return o.state.GetCopy(), nil
}

// Step advances the network by one tick of length dt under the given
// control. Returns a copy of the updated state.
func (o *Model) Step(dt float64, ctl *Control) (*State, error) {
	if ctl == nil {
		return nil, chk.Err("netsep: control must be non-nil\n")
	}
	if err := ctl.Validate(); err != nil {
		return nil, err
	}
	if err := o.calcDensities(); err != nil {
		return nil, err
	}
	if err := o.calcFlows(ctl); err != nil {
		return nil, err
	}
	if o.DebugFlows != nil {
		o.DebugFlows(o.state.GetCopy())
	}
	sta, err := o.Sep.Step(dt, ctl.Omega, o.state.Gin, o.state.Ggas, o.state.Gliq)
	if err != nil {
		return nil, err
	}
	o.state.Sep = sta
	return o.state.GetCopy(), nil
}

// calcDensities computes the phase densities from the previous-tick vessel
// state. The liquid density is constant; the gas density follows the
// ideal-gas law at the previous gas pressure and vanishes with the gas phase.
func (o *Model) calcDensities() error {
	o.state.RhoLiq = o.Flu.RhoL
	o.state.RhoGas = 0
	if o.state.Sep.Vgas > 0 && o.state.Sep.Pgas > 0 {
		ρg, err := o.Flu.GasDensity(o.state.Sep.Pgas)
		if err != nil {
			return err
		}
		o.state.RhoGas = ρg
	}
	return nil
}

// calcFlows evaluates the three valves with the previous-tick vessel
// pressures as boundaries
func (o *Model) calcFlows(ctl *Control) error {

	pg := o.state.Sep.Pgas
	pl := o.state.Sep.Pliq

	// gas outlet valve: vessel gas blanket to the outlet header
	ggas, err := o.Vgas.G(ctl.OpenGas, o.state.RhoGas, pg, ctl.Pout)
	if err != nil {
		return chk.Err("netsep: gas outlet valve failed: %v", err)
	}

	// liquid outlet valve: vessel bottom to the outlet header
	gliq, err := o.Vliq.G(ctl.OpenLiq, o.state.RhoLiq, pl, ctl.Pout)
	if err != nil {
		return chk.Err("netsep: liquid outlet valve failed: %v", err)
	}

	// inlet mixture valve: feed header to the vessel gas blanket
	gin, err := o.Vin.G(ctl.OpenIn, o.mixDensity(ctl.Omega), ctl.Pin, pg)
	if err != nil {
		return chk.Err("netsep: inlet valve failed: %v", err)
	}

	o.state.Ggas = ggas
	o.state.Gliq = gliq
	o.state.Gin = gin
	return nil
}

// mixDensity returns the harmonic two-phase density of the inlet stream:
// 1/ρmix = ω/ρgas + (1−ω)/ρliq. Pure-phase fractions return the phase
// density directly and a degenerate (non-positive) phase density falls
// back to the liquid density.
func (o *Model) mixDensity(ω float64) float64 {
	if ω == 0 {
		return o.state.RhoLiq
	}
	if ω == 1 {
		return o.state.RhoGas
	}
	if o.state.RhoGas > 0 && o.state.RhoLiq > 0 {
		return 1.0 / (ω/o.state.RhoGas + (1.0-ω)/o.state.RhoLiq)
	}
	return o.state.RhoLiq
}
