// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/Ans3rgus/separator/mdl/separator"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// ConstFlowFill is the closed-form state of a vessel driven by constant mass
// flows. With the inlet split fixed by the gas fraction ω, both phase masses
// are linear in time until an inventory is exhausted; the flooring at zero
// makes them piecewise linear:
//
//    mg(t) = max{0, mg0 + (gin·ω − ggas)·t}
//    ml(t) = max{0, ml0 + (gin·(1−ω) − gliq)·t}
//
// and the volumes, pressures and level follow algebraically. The explicit
// Euler stepper reproduces this solution exactly at step boundaries, also
// through the clamp at zero. The solution is valid strictly below the
// overflow region; i.e. while ml(t) < vol·ρl.
type ConstFlowFill struct {
	Mdl   *separator.Model // vessel geometry and fluid
	Mg0   float64          // initial mass of gas [kg]
	Ml0   float64          // initial mass of liquid [kg]
	Gin   float64          // inlet mixture mass flow [kg/s]
	Omega float64          // gas mass fraction of the inlet [0,1]
	Ggas  float64          // gas outlet mass flow [kg/s]
	Gliq  float64          // liquid outlet mass flow [kg/s]
}

// Init initialises this structure taking the initial masses from sta
func (o *ConstFlowFill) Init(mdl *separator.Model, sta *separator.State, gin, ω, ggas, gliq float64) {
	o.Mdl = mdl
	o.Mg0 = sta.Mgas
	o.Ml0 = sta.Mliq
	o.Gin = gin
	o.Omega = ω
	o.Ggas = ggas
	o.Gliq = gliq
}

// Calc computes the state at time t
func (o ConstFlowFill) Calc(t float64) *separator.State {
	mg := utl.Max(0, o.Mg0+(o.Gin*o.Omega-o.Ggas)*t)
	ml := utl.Max(0, o.Ml0+(o.Gin*(1.0-o.Omega)-o.Gliq)*t)
	vl := ml / o.Mdl.Flu.RhoL
	var vg float64
	if mg > 0 {
		vg = utl.Max(0, o.Mdl.Vol-vl)
	}
	var pg float64
	if vg > 0 && mg > 0 {
		pg = (mg / (o.Mdl.Flu.Molar * vg)) * (o.Mdl.Flu.Rgas * o.Mdl.Flu.Tref)
	}
	lev := vl / o.Mdl.Area
	return &separator.State{
		Mgas:  mg,
		Mliq:  ml,
		Vliq:  vl,
		Vgas:  vg,
		Pgas:  pg,
		Pliq:  pg + o.Mdl.Flu.RhoL*lev*separator.Grav,
		Level: lev,
	}
}

// CompareStates checks a stepped state against the solution at time t
func (o ConstFlowFill) CompareStates(tst *testing.T, lbl string, tolM, tolP, t float64, sta *separator.State) {
	ref := o.Calc(t)
	chk.Float64(tst, lbl+": mgas ", tolM, sta.Mgas, ref.Mgas)
	chk.Float64(tst, lbl+": mliq ", tolM, sta.Mliq, ref.Mliq)
	chk.Float64(tst, lbl+": vliq ", tolM, sta.Vliq, ref.Vliq)
	chk.Float64(tst, lbl+": vgas ", tolM, sta.Vgas, ref.Vgas)
	chk.Float64(tst, lbl+": pgas ", tolP, sta.Pgas, ref.Pgas)
	chk.Float64(tst, lbl+": level", tolM, sta.Level, ref.Level)
	chk.Float64(tst, lbl+": pliq ", tolP, sta.Pliq, ref.Pliq)
}

// Plot draws masses and pressures over 0 ≤ t ≤ tmax
func (o ConstFlowFill) Plot(dirout, fnkey string, tmax float64, np int) {

	Tt := utl.LinSpace(0, tmax, np)
	Mg := make([]float64, np)
	Ml := make([]float64, np)
	Pg := make([]float64, np)
	Pl := make([]float64, np)
	for i, t := range Tt {
		s := o.Calc(t)
		Mg[i], Ml[i] = s.Mgas, s.Mliq
		Pg[i], Pl[i] = s.Pgas, s.Pliq
	}

	plt.Reset(false, nil)

	plt.Subplot(2, 1, 1)
	plt.Plot(Tt, Mg, &plt.A{C: "r", L: "$m_{gas}$"})
	plt.Plot(Tt, Ml, &plt.A{C: "b", L: "$m_{liq}$"})
	plt.Gll("$t\\;[s]$", "$m\\;[kg]$", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(Tt, Pg, &plt.A{C: "r", L: "$p_{gas}$"})
	plt.Plot(Tt, Pl, &plt.A{C: "b", L: "$p_{liq}$"})
	plt.Gll("$t\\;[s]$", "$p\\;[Pa]$", nil)

	plt.Save(dirout, fnkey)
}
