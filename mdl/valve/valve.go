// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valve

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Model implements a control valve: one flow characteristic plus the
// IEC 60534 sizing equation
//
//	Q = Kv/35700 · √(Δp/ρ)
//
// with Q [m³/s], Kv [m³/h], Δp = pin − pout [Pa] and ρ [kg/m³]. The 35700
// factor folds the m³/h to m³/s conversion with the 10⁵ Pa reference pressure
// of the Kv definition.
type Model struct {

	// parameters
	Kv0    float64 // flow coefficient at zero opening [m³/h]
	Kv100  float64 // flow coefficient at full opening [m³/h]
	Cutoff bool    // flow is shut off completely at zero opening

	// derived
	Char Char // flow characteristic (travel curve)
}

// Init initialises the valve given a characteristic name and a database of
// parameters: 'kv0' and 'kv100' (required) and 'cutoff' (optional flag)
func (o *Model) Init(charName string, prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "kv0":
			o.Kv0 = p.V
		case "kv100":
			o.Kv100 = p.V
		case "cutoff":
			o.Cutoff = p.V > 0
		default:
			return chk.Err("valve: parameter named %q is incorrect\n", p.N)
		}
	}
	_, found := prms.GetValues([]string{"kv0", "kv100"})
	if !utl.AllTrue(found) {
		return chk.Err("valve: parameters 'kv0' and 'kv100' must be given\n")
	}
	o.Char, err = NewChar(charName)
	if err != nil {
		return
	}
	return o.Char.Init(o.Kv0, o.Kv100)
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "kv0", V: 1e-3},
			&dbf.P{N: "kv100", V: 10},
			&dbf.P{N: "cutoff", V: 1},
		}
	}
	cutoff := 0.0
	if o.Cutoff {
		cutoff = 1.0
	}
	return dbf.Params{
		&dbf.P{N: "kv0", V: o.Kv0},
		&dbf.P{N: "kv100", V: o.Kv100},
		&dbf.P{N: "cutoff", V: cutoff},
	}
}

// Kv computes the flow coefficient [m³/h] at the given fractional opening.
// With the cutoff flag enabled, an opening of exactly zero shuts the valve
// regardless of kv0.
func (o *Model) Kv(opening float64) (float64, error) {
	if opening < 0 || opening > 1 {
		return 0, chk.Err("valve: opening must be within [0, 1]. opening=%g is invalid\n", opening)
	}
	if opening == 0 && o.Cutoff {
		return 0, nil
	}
	return o.Char.Kv(opening), nil
}

// Q computes the volumetric flow rate [m³/s] through the valve. A reverse
// pressure gradient (pout > pin) gives zero flow.
func (o *Model) Q(opening, density, pin, pout float64) (float64, error) {
	if density <= 0 {
		return 0, chk.Err("valve: density must be positive. density=%g is invalid\n", density)
	}
	if pin < 0 || pout < 0 {
		return 0, chk.Err("valve: pressures cannot be negative. pin=%g, pout=%g are invalid\n", pin, pout)
	}
	Δp := pin - pout
	if Δp < 0 {
		return 0, nil
	}
	kv, err := o.Kv(opening)
	if err != nil {
		return 0, err
	}
	return kv / 35700.0 * math.Sqrt(Δp/density), nil
}

// G computes the mass flow rate [kg/s] through the valve: G = ρ·Q
func (o *Model) G(opening, density, pin, pout float64) (float64, error) {
	q, err := o.Q(opening, density, pin, pout)
	if err != nil {
		return 0, err
	}
	return density * q, nil
}
