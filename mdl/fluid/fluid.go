// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements properties of the gas and liquid phases processed
// by a gravity separation vessel. The liquid is treated as incompressible and
// the gas follows the ideal-gas law at a fixed reference temperature.
package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model holds the physical constants of one gas/liquid pair
type Model struct {
	Molar float64 // molar mass of the gas [kg/mol]
	RhoL  float64 // density of the liquid [kg/m³]
	Tref  float64 // reference temperature [K]
	Rgas  float64 // universal gas constant [J/(mol·K)]
}

// Init initialises the model from a database of parameters
func (o *Model) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "molar":
			o.Molar = p.V
		case "rhol":
			o.RhoL = p.V
		case "tref":
			o.Tref = p.V
		case "rgas":
			o.Rgas = p.V
		default:
			return chk.Err("fluid: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Molar <= 0 {
		return chk.Err("fluid: molar mass must be positive. molar=%g is invalid\n", o.Molar)
	}
	if o.RhoL <= 0 {
		return chk.Err("fluid: liquid density must be positive. rhol=%g is invalid\n", o.RhoL)
	}
	if o.Tref <= 0 {
		return chk.Err("fluid: temperature must be positive. tref=%g is invalid\n", o.Tref)
	}
	if o.Rgas <= 0 {
		return chk.Err("fluid: gas constant must be positive. rgas=%g is invalid\n", o.Rgas)
	}
	return
}

// GetPrms gets (an example of) parameters. The example set corresponds to
// methane over water at 20°C.
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "molar", V: 16e-3},
			&dbf.P{N: "rhol", V: 1000},
			&dbf.P{N: "tref", V: 293},
			&dbf.P{N: "rgas", V: 8.314},
		}
	}
	return dbf.Params{
		&dbf.P{N: "molar", V: o.Molar},
		&dbf.P{N: "rhol", V: o.RhoL},
		&dbf.P{N: "tref", V: o.Tref},
		&dbf.P{N: "rgas", V: o.Rgas},
	}
}

// GasDensity computes the density of the gas phase [kg/m³] at absolute
// pressure p [Pa] and the reference temperature
func (o Model) GasDensity(p float64) (float64, error) {
	return DensityGas(p, o.Tref, o.Molar, o.Rgas)
}

// DensityGas computes the density of an ideal gas [kg/m³]
//
//	ρ = p·M / (R·T)
//
// with absolute pressure p [Pa], temperature tref [K], molar mass
// molar [kg/mol] and universal gas constant rgas [J/(mol·K)]
func DensityGas(p, tref, molar, rgas float64) (float64, error) {
	if tref <= 0 {
		return 0, chk.Err("gas density: temperature must be positive. tref=%g is invalid\n", tref)
	}
	if rgas <= 0 {
		return 0, chk.Err("gas density: gas constant must be positive. rgas=%g is invalid\n", rgas)
	}
	if molar <= 0 {
		return 0, chk.Err("gas density: molar mass must be positive. molar=%g is invalid\n", molar)
	}
	if p < 0 {
		return 0, chk.Err("gas density: pressure cannot be negative. p=%g is invalid\n", p)
	}
	return p * molar / (rgas * tref), nil
}

// DensityMix computes the density of a stream [kg/m³] combining two mass
// flows g1 and g2 [kg/s] with densities rho1 and rho2 [kg/m³]
//
//	ρ_mix = (g1 + g2) / (g1/ρ1 + g2/ρ2)
//
// A stream with zero total mass flow has zero density.
func DensityMix(g1, g2, rho1, rho2 float64) (float64, error) {
	if g1+g2 == 0 {
		return 0, nil
	}
	if rho1 <= 0 || rho2 <= 0 {
		return 0, chk.Err("mixture density: phase densities must be positive. rho1=%g, rho2=%g are invalid\n", rho1, rho2)
	}
	if g1 < 0 || g2 < 0 {
		return 0, chk.Err("mixture density: mass flows cannot be negative. g1=%g, g2=%g are invalid\n", g1, g2)
	}
	return (g1 + g2) / (g1/rho1 + g2/rho2), nil
}
