// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valve

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// RefCase holds one valve verification case with reference flow results
// produced by the Simba process simulator
type RefCase struct {
	Desc    string  // description
	Char    string  // characteristic name
	Kv0     float64 // flow coefficient at zero opening [m³/h]
	Kv100   float64 // flow coefficient at full opening [m³/h]
	Opening float64 // fractional valve opening
	Omega   float64 // gas mass fraction of the stream
	Rho     float64 // stream density from Simba [kg/m³]
	Pin     float64 // upstream pressure [Pa]
	Pout    float64 // downstream pressure [Pa]
	Qref    float64 // reference volumetric flow [m³/s]
	Gref    float64 // reference mass flow [kg/s]
}

// Build constructs and initialises the valve model of this case
func (o *RefCase) Build() (mdl *Model, err error) {
	mdl = new(Model)
	err = mdl.Init(o.Char, dbf.Params{
		&dbf.P{N: "kv0", V: o.Kv0},
		&dbf.P{N: "kv100", V: o.Kv100},
		&dbf.P{N: "cutoff", V: 1},
	})
	return
}

// RefCases returns the three verification cases: the two-phase mixture inlet
// valve, the gas outlet valve and the liquid outlet valve of the reference
// separator. kv0 is one percent of kv100 in all cases.
func RefCases() []*RefCase {
	return []*RefCase{
		&RefCase{
			Desc: "mixture inlet valve", Char: "eqp",
			Kv0: 1, Kv100: 100, Opening: 1.0,
			Omega: 0.061521056745191, Rho: 79.011004328319,
			Pin: 8e5, Pout: 7.5e5,
			Qref: 0.06984731668432, Gref: 5.5187066408666,
		},
		&RefCase{
			Desc: "gas outlet valve", Char: "eqp",
			Kv0: 2.48, Kv100: 248, Opening: 0.5,
			Omega: 1.0, Rho: 4.9383603347308,
			Pin: 7.5e5, Pout: 7e5,
			Qref: 0.06928815740051, Gref: 0.34216988817328,
		},
		&RefCase{
			Desc: "liquid outlet valve", Char: "eqp",
			Kv0: 1.925, Kv100: 192.5, Opening: 0.5,
			Omega: 0.0, Rho: 1000,
			Pin: 797231.92990662, Pout: 7e5,
			Qref: 0.005317003, Gref: 5.317003,
		},
	}
}
