// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package separator implements a transient model of a two-phase gravity
// separation vessel. The vessel holds a liquid pool under a gas blanket;
// one explicit Euler tick updates the phase masses from the inlet and
// outlet mass flows and recomputes volumes, pressures and level.
package separator

import (
	"github.com/Ans3rgus/separator/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Grav is the gravitational acceleration entering the hydrostatic liquid
// pressure [m/s²]. The rounded value matches the reference data the model
// is verified against; do not change it to 9.81.
const Grav = 10.0

// Model implements the vessel state machine. The state is owned exclusively
// by the model: Step and InitLevelPressure mutate it and callers receive
// copies only.
type Model struct {

	// parameters
	Vol  float64 // total volume of the vessel [m³]
	Area float64 // cross-sectional area of the vessel [m²]

	// auxiliary models
	Flu *fluid.Model // gas and liquid properties

	// state
	state State
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params, flu *fluid.Model) error {

	// parameters
	for _, p := range prms {
		switch p.N {
		case "vol":
			o.Vol = p.V
		case "area":
			o.Area = p.V
		default:
			return chk.Err("separator: parameter named %q is incorrect\n", p.N)
		}
	}
	_, found := prms.GetValues([]string{"vol", "area"})
	if !utl.AllTrue(found) {
		return chk.Err("separator: parameters 'vol' and 'area' must be given\n")
	}

	// check
	if o.Vol <= 0 {
		return chk.Err("separator: volume of vessel vol=%g is invalid\n", o.Vol)
	}
	if o.Area <= 0 {
		return chk.Err("separator: cross-sectional area area=%g is invalid\n", o.Area)
	}

	// auxiliary models
	if flu == nil {
		return chk.Err("separator: fluid model must be non-nil\n")
	}
	o.Flu = flu

	// start empty
	o.state = State{}
	return nil
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "vol", V: 100}, // [m³]
			&dbf.P{N: "area", V: 10}, // [m²]
		}
	}
	return dbf.Params{
		&dbf.P{N: "vol", V: o.Vol},
		&dbf.P{N: "area", V: o.Area},
	}
}

// Height returns the internal height of the vessel
func (o Model) Height() float64 {
	return o.Vol / o.Area
}

// GetState returns a copy of the current state
func (o Model) GetState() *State {
	return o.state.GetCopy()
}

// SetState replaces the current state with a copy of s
func (o *Model) SetState(s *State) {
	o.state.Set(s)
}

// InitLevelPressure initialises the state from a liquid level and a gas
// pressure. The masses are back-solved: liquid from the incompressible
// column, gas from the ideal-gas law inverted at pgas over the headspace.
// A vessel filled to the brim has no headspace and thus holds no gas,
// whatever pgas says; the stored gas pressure is then zero.
func (o *Model) InitLevelPressure(level, pgas float64) (*State, error) {
	if level < 0 || level > o.Height() {
		return nil, chk.Err("separator: level must be within [0, %g]. level=%g is invalid\n", o.Height(), level)
	}
	if pgas < 0 {
		return nil, chk.Err("separator: gas pressure must be non-negative. pgas=%g is invalid\n", pgas)
	}
	vliq := level * o.Area
	vgas := o.Vol - vliq
	if vgas < 0 {
		vgas = 0
	}
	var mgas, pg float64
	if vgas > 0 {
		ρg, err := o.Flu.GasDensity(pgas)
		if err != nil {
			return nil, err
		}
		mgas = ρg * vgas
		pg = pgas
	}
	o.state = State{
		Mgas:  mgas,
		Mliq:  vliq * o.Flu.RhoL,
		Vliq:  vliq,
		Vgas:  vgas,
		Pgas:  pg,
		Pliq:  pg + o.Flu.RhoL*level*Grav,
		Level: level,
	}
	return o.state.GetCopy(), nil
}

// Step advances the state by one explicit Euler tick of length dt. The inlet
// mixture mass flow ginMix splits by the gas fraction ωin; ggasOut and
// gliqOut drain the two phases. Outflow in excess of the available inventory
// clamps the mass at zero rather than being back-calculated. Liquid volume
// beyond the vessel volume is clipped, the excess liquid mass discarded and
// the gas phase expelled entirely (overflow approximation). Returns a copy
// of the updated state.
func (o *Model) Step(dt, ωin, ginMix, ggasOut, gliqOut float64) (*State, error) {

	// preconditions
	if dt < 0 {
		return nil, chk.Err("separator: time increment must be non-negative. dt=%g is invalid\n", dt)
	}
	if ωin < 0 || ωin > 1 {
		return nil, chk.Err("separator: inlet gas fraction must be within [0, 1]. ωin=%g is invalid\n", ωin)
	}
	if ginMix < 0 || ggasOut < 0 || gliqOut < 0 {
		return nil, chk.Err("separator: mass flows must be non-negative. gin=%g ggas=%g gliq=%g\n", ginMix, ggasOut, gliqOut)
	}

	// split inlet stream
	ginGas := ginMix * ωin
	ginLiq := ginMix * (1 - ωin)

	// mass balance, floored at zero
	o.state.Mgas = utl.Max(0, o.state.Mgas+(ginGas-ggasOut)*dt)
	o.state.Mliq = utl.Max(0, o.state.Mliq+(ginLiq-gliqOut)*dt)

	// liquid volume (incompressible)
	o.state.Vliq = o.state.Mliq / o.Flu.RhoL

	// gas volume: without gas mass no headspace is tracked
	if o.state.Mgas > 0 {
		o.state.Vgas = utl.Max(0, o.Vol-o.state.Vliq)
	} else {
		o.state.Vgas = 0
	}

	// overflow: clip the liquid to the vessel, discard the excess mass
	// and expel the gas phase
	if o.state.Vliq > o.Vol {
		o.state.Vliq = o.Vol
		o.state.Vgas = 0
		o.state.Mliq = o.state.Vliq * o.Flu.RhoL
		o.state.Mgas = 0
		o.state.Pgas = 0
	}

	// gas pressure (ideal gas)
	if o.state.Vgas > 0 && o.state.Mgas > 0 {
		o.state.Pgas = (o.state.Mgas / (o.Flu.Molar * o.state.Vgas)) * (o.Flu.Rgas * o.Flu.Tref)
	} else {
		o.state.Pgas = 0
	}

	// liquid level
	if o.Area > 0 {
		o.state.Level = o.state.Vliq / o.Area
	} else {
		o.state.Level = 0
	}

	// liquid pressure: hydrostatic column under the gas blanket
	o.state.Pliq = o.state.Pgas + o.Flu.RhoL*o.state.Level*Grav

	return o.state.GetCopy(), nil
}
