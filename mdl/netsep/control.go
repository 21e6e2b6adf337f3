// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netsep

import "github.com/cpmech/gosl/chk"

// Control holds the external inputs applied during one tick. The network
// never mutates a control; the same value may drive any number of ticks.
type Control struct {
	OpenIn  float64 // opening of the inlet mixture valve [0,1]
	OpenGas float64 // opening of the gas outlet valve [0,1]
	OpenLiq float64 // opening of the liquid outlet valve [0,1]
	Omega   float64 // gas mass fraction of the inlet mixture [0,1]
	Pin     float64 // pressure upstream of the inlet valve [Pa]
	Pout    float64 // pressure downstream of both outlet valves [Pa]
}

// Validate checks the admissible ranges of all control inputs
func (o Control) Validate() error {
	if o.OpenIn < 0 || o.OpenIn > 1 {
		return chk.Err("netsep: inlet valve opening must be within [0, 1]. OpenIn=%g is invalid\n", o.OpenIn)
	}
	if o.OpenGas < 0 || o.OpenGas > 1 {
		return chk.Err("netsep: gas valve opening must be within [0, 1]. OpenGas=%g is invalid\n", o.OpenGas)
	}
	if o.OpenLiq < 0 || o.OpenLiq > 1 {
		return chk.Err("netsep: liquid valve opening must be within [0, 1]. OpenLiq=%g is invalid\n", o.OpenLiq)
	}
	if o.Omega < 0 || o.Omega > 1 {
		return chk.Err("netsep: inlet gas fraction must be within [0, 1]. Omega=%g is invalid\n", o.Omega)
	}
	if o.Pin < 0 || o.Pout < 0 {
		return chk.Err("netsep: boundary pressures must be non-negative. Pin=%g Pout=%g\n", o.Pin, o.Pout)
	}
	return nil
}
