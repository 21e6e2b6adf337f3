// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netsep

import (
	"github.com/Ans3rgus/separator/mdl/fluid"
	"github.com/Ans3rgus/separator/mdl/separator"
	"github.com/Ans3rgus/separator/mdl/valve"
	"github.com/cpmech/gosl/fun/dbf"
)

// DefaultModel returns a network model in the Simba reference configuration:
// methane over water at 20°C in a 100 m³ vessel, all three valves
// equal-percentage with cutoff and kv0 set to one percent of kv100
func DefaultModel() (*Model, error) {

	flu := new(fluid.Model)
	if err := flu.Init(flu.GetPrms(true)); err != nil {
		return nil, err
	}

	sep := new(separator.Model)
	if err := sep.Init(sep.GetPrms(true), flu); err != nil {
		return nil, err
	}

	vin := new(valve.Model)
	if err := vin.Init("eqp", dbf.Params{
		&dbf.P{N: "kv0", V: 1},
		&dbf.P{N: "kv100", V: 100},
		&dbf.P{N: "cutoff", V: 1},
	}); err != nil {
		return nil, err
	}

	vgas := new(valve.Model)
	if err := vgas.Init("eqp", dbf.Params{
		&dbf.P{N: "kv0", V: 2.48},
		&dbf.P{N: "kv100", V: 248},
		&dbf.P{N: "cutoff", V: 1},
	}); err != nil {
		return nil, err
	}

	vliq := new(valve.Model)
	if err := vliq.Init("eqp", dbf.Params{
		&dbf.P{N: "kv0", V: 1.93},
		&dbf.P{N: "kv100", V: 193},
		&dbf.P{N: "cutoff", V: 1},
	}); err != nil {
		return nil, err
	}

	mdl := new(Model)
	if err := mdl.Init(flu, sep, vin, vgas, vliq); err != nil {
		return nil, err
	}
	return mdl, nil
}

// DefaultControl returns the Simba reference control set: inlet valve fully
// open, both outlet valves at half travel, 6.15% gas at the inlet, 800 kPa
// feed header and 700 kPa outlet header
func DefaultControl() *Control {
	return &Control{
		OpenIn:  1.0,
		OpenGas: 0.5,
		OpenLiq: 0.5,
		Omega:   0.0615,
		Pin:     8e5,
		Pout:    7e5,
	}
}
